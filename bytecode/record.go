package bytecode

import (
	"fmt"

	"github.com/Pfoerd/pitest/op"
)

// Record is a single entry in a method body, in program order. Records are
// small value types; copying them is cheap.
type Record interface {
	// Pos returns the bytecode offset at which the record applies.
	Pos() int
}

// LineNumber marks the start of a new source line at a bytecode offset.
// Entries come from the LineNumberTable attribute of the method.
type LineNumber struct {
	Offset int
	Line   int // 1-based source line number
}

// Pos returns the bytecode offset of the first instruction on the line.
func (r LineNumber) Pos() int { return r.Offset }

// String returns the entry formatted the way javap prints it.
func (r LineNumber) String() string {
	return fmt.Sprintf("line %d: %d", r.Line, r.Offset)
}

// VarInsn is an instruction that reads or writes a local variable slot:
// the loads, the stores, and ret. For the compact forms (aload_0 and
// friends) the slot is implied by the opcode and Slot holds the implied
// value.
type VarInsn struct {
	Offset int
	Op     op.Code
	Slot   int
}

// Pos returns the bytecode offset of the instruction.
func (r VarInsn) Pos() int { return r.Offset }

// String returns the instruction formatted the way javap prints it.
func (r VarInsn) String() string {
	if op.GetInfo(r.Op).OperandBytes == 0 {
		return r.Op.String()
	}
	return fmt.Sprintf("%s %d", r.Op, r.Slot)
}

// JumpInsn is an instruction that branches to another bytecode offset.
type JumpInsn struct {
	Offset int
	Op     op.Code
	Target int
}

// Pos returns the bytecode offset of the instruction.
func (r JumpInsn) Pos() int { return r.Offset }

// String returns the instruction formatted the way javap prints it.
func (r JumpInsn) String() string {
	return fmt.Sprintf("%s %d", r.Op, r.Target)
}

// CallInsn is a method invocation instruction. Owner, Name, and Descriptor
// identify the callee when the listing includes a constant pool comment;
// they are empty otherwise. Interface reports whether the callee is
// dispatched through an interface.
type CallInsn struct {
	Offset     int
	Op         op.Code
	Owner      string
	Name       string
	Descriptor string
	Interface  bool
}

// Pos returns the bytecode offset of the instruction.
func (r CallInsn) Pos() int { return r.Offset }

// String returns the instruction with its callee when known.
func (r CallInsn) String() string {
	if r.Name == "" {
		return r.Op.String()
	}
	return fmt.Sprintf("%s %s.%s:%s", r.Op, r.Owner, r.Name, r.Descriptor)
}

// Insn is any instruction outside the variable, jump, and call categories.
// Operands are not retained; the scanner only needs the opcode.
type Insn struct {
	Offset int
	Op     op.Code
}

// Pos returns the bytecode offset of the instruction.
func (r Insn) Pos() int { return r.Offset }

// String returns the instruction mnemonic.
func (r Insn) String() string {
	return r.Op.String()
}
