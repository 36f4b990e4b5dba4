// Package dis renders parsed methods as readable disassembly tables.
package dis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/Pfoerd/pitest/op"
)

// Instruction is one rendered row of a method disassembly.
type Instruction struct {
	Line     string
	Offset   string
	Opcode   string
	Operands string
	Info     string
}

// Disassemble renders a method's records as display rows. The LINE
// column is filled on the first instruction of each source line.
func Disassemble(method *bytecode.Method) []Instruction {
	var rows []Instruction
	pendingLine := ""
	for i := 0; i < method.RecordCount(); i++ {
		var row Instruction
		switch record := method.RecordAt(i).(type) {
		case bytecode.LineNumber:
			pendingLine = strconv.Itoa(record.Line)
			continue
		case bytecode.VarInsn:
			row = Instruction{
				Offset:   strconv.Itoa(record.Offset),
				Opcode:   opcodeName(record.Op),
				Operands: slotOperand(record),
			}
		case bytecode.JumpInsn:
			row = Instruction{
				Offset:   strconv.Itoa(record.Offset),
				Opcode:   opcodeName(record.Op),
				Operands: strconv.Itoa(record.Target),
			}
		case bytecode.CallInsn:
			row = Instruction{
				Offset: strconv.Itoa(record.Offset),
				Opcode: opcodeName(record.Op),
				Info:   callInfo(record),
			}
		case bytecode.Insn:
			row = Instruction{
				Offset: strconv.Itoa(record.Offset),
				Opcode: opcodeName(record.Op),
			}
		default:
			continue
		}
		row.Line = pendingLine
		pendingLine = ""
		rows = append(rows, row)
	}
	return rows
}

func opcodeName(code op.Code) string {
	return strings.ToUpper(code.String())
}

// slotOperand returns the variable slot, or nothing for the compact
// forms that encode the slot in the mnemonic.
func slotOperand(record bytecode.VarInsn) string {
	if op.GetInfo(record.Op).OperandBytes == 0 {
		return ""
	}
	return strconv.Itoa(record.Slot)
}

func callInfo(record bytecode.CallInsn) string {
	if record.Owner == "" && record.Name == "" {
		return ""
	}
	if record.Owner == "" {
		return record.Name + ":" + record.Descriptor
	}
	return record.Owner + "." + record.Name + ":" + record.Descriptor
}

var headers = []string{"LINE", "OFFSET", "OPCODE", "OPERANDS", "INFO"}

// rightAligned marks the numeric columns.
var rightAligned = []bool{true, true, false, true, false}

// Print writes the instructions to w as a bordered table.
func Print(instructions []Instruction, w io.Writer) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	rows := make([][]string, len(instructions))
	for r, inst := range instructions {
		row := []string{inst.Line, inst.Offset, inst.Opcode, inst.Operands, inst.Info}
		rows[r] = row
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	border := buildBorder(widths)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, buildHeader(widths))
	fmt.Fprintln(w, border)
	for _, row := range rows {
		fmt.Fprintln(w, buildRow(row, widths))
	}
	fmt.Fprintln(w, border)
}

func buildBorder(widths []int) string {
	var b strings.Builder
	for _, width := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", width+2))
	}
	b.WriteString("+")
	return b.String()
}

func buildHeader(widths []int) string {
	var b strings.Builder
	for i, h := range headers {
		pad := widths[i] - len(h)
		left := pad / 2
		b.WriteString("| ")
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(h)
		b.WriteString(strings.Repeat(" ", pad-left))
		b.WriteString(" ")
	}
	b.WriteString("|")
	return b.String()
}

func buildRow(row []string, widths []int) string {
	var b strings.Builder
	for i, cell := range row {
		b.WriteString("| ")
		if rightAligned[i] {
			fmt.Fprintf(&b, "%*s", widths[i], cell)
		} else {
			fmt.Fprintf(&b, "%-*s", widths[i], cell)
		}
		b.WriteString(" ")
	}
	b.WriteString("|")
	return b.String()
}
