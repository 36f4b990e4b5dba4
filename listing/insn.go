package listing

import (
	"strconv"
	"strings"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/Pfoerd/pitest/op"
)

// handleCodeLine parses one line of a Code section, such as
//
//	13: invokevirtual #6     // Method java/io/FileReader.read:()I
func (p *Parser) handleCodeLine(text string) {
	// javap -v prints a frame summary as the first line of the section.
	if strings.HasPrefix(text, "stack=") {
		return
	}
	offsetText, rest, ok := strings.Cut(text, ":")
	offsetText = strings.TrimSpace(offsetText)
	rest = strings.TrimSpace(rest)
	if !ok || !isDigits(offsetText) || rest == "" {
		p.errorf(text, "expected an instruction")
		return
	}
	offset, err := strconv.Atoi(offsetText)
	if err != nil {
		p.errorf(text, "malformed instruction offset %q", offsetText)
		return
	}
	p.parseInstruction(offset, rest, text)
}

func (p *Parser) parseInstruction(offset int, rest, full string) {
	mnemonic := rest
	operands := ""
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		mnemonic, operands = rest[:i], strings.TrimSpace(rest[i+1:])
	}
	code, ok := op.FromMnemonic(mnemonic)
	if !ok {
		p.errorf(full, "unknown mnemonic %q", mnemonic)
		return
	}

	// Jump tables continue on the following lines. Switch into the
	// table-skipping state until the closing brace.
	if code == op.Tableswitch || code == op.Lookupswitch {
		p.insns = append(p.insns, bytecode.Insn{Offset: offset, Op: code})
		if strings.Contains(operands, "{") {
			p.section = sectionSwitch
		}
		return
	}

	comment := ""
	if i := strings.Index(operands, "//"); i >= 0 {
		operands, comment = strings.TrimSpace(operands[:i]), strings.TrimSpace(operands[i+2:])
	}

	switch {
	case code.IsVarInsn():
		p.insns = append(p.insns, bytecode.VarInsn{
			Offset: offset,
			Op:     code,
			Slot:   p.varSlot(code, operands, full),
		})
	case code.IsJumpInsn():
		target, err := strconv.Atoi(operands)
		if err != nil {
			p.errorf(full, "malformed branch target %q", operands)
			return
		}
		p.insns = append(p.insns, bytecode.JumpInsn{
			Offset: offset,
			Op:     code,
			Target: target,
		})
	case code.IsCallInsn():
		p.insns = append(p.insns, parseCall(offset, code, comment))
	default:
		p.insns = append(p.insns, bytecode.Insn{Offset: offset, Op: code})
	}
}

// varSlot returns the local variable slot of a load, store, or ret
// instruction. The compact forms encode the slot in the mnemonic
// itself and print without an operand.
func (p *Parser) varSlot(code op.Code, operands, full string) int {
	if op.GetInfo(code).OperandBytes == 0 {
		mnemonic := code.String()
		return int(mnemonic[len(mnemonic)-1] - '0')
	}
	slot, err := strconv.Atoi(strings.TrimSpace(operands))
	if err != nil {
		p.errorf(full, "malformed variable slot %q", operands)
		return 0
	}
	return slot
}

// parseCall builds a call record from javap's constant pool comment,
// for example
//
//	Method java/io/FileReader.close:()V
//	InterfaceMethod java/lang/AutoCloseable.close:()V
//	Method java/lang/Object."<init>":()V
//	InvokeDynamic #0:run:()Ljava/lang/Runnable;
func parseCall(offset int, code op.Code, comment string) bytecode.CallInsn {
	call := bytecode.CallInsn{
		Offset:    offset,
		Op:        code,
		Interface: code == op.Invokeinterface,
	}
	ref := comment
	switch {
	case strings.HasPrefix(comment, "InterfaceMethod "):
		call.Interface = true
		ref = strings.TrimPrefix(comment, "InterfaceMethod ")
	case strings.HasPrefix(comment, "Method "):
		ref = strings.TrimPrefix(comment, "Method ")
	case strings.HasPrefix(comment, "InvokeDynamic "):
		ref = strings.TrimPrefix(comment, "InvokeDynamic ")
		if i := strings.IndexByte(ref, ':'); i >= 0 {
			ref = ref[i+1:] // drop the bootstrap method index
		}
	case comment == "":
		return call
	}
	if i := strings.LastIndexByte(ref, ':'); i >= 0 {
		call.Descriptor = ref[i+1:]
		ref = ref[:i]
	}
	if i := strings.LastIndexByte(ref, '.'); i >= 0 {
		call.Owner = unquote(ref[:i])
		call.Name = unquote(ref[i+1:])
	} else {
		call.Name = unquote(ref)
	}
	return call
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
