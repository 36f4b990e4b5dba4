package bytecode

// MethodVisitor is an interface for observing the records of a method body
// in program order. Implementations can be used for scanning, disassembly,
// or statistics without holding the Method itself.
//
// All methods are optional in the sense that implementations can embed
// NoOpVisitor to provide default no-op implementations for record kinds
// they don't care about.
//
// Visitor methods are called synchronously during replay. A visitor
// instance observes one method body at a time; visiting a second method
// with the same instance requires whatever reset the implementation
// defines.
type MethodVisitor interface {
	// OnLineNumber is called when a new source line begins.
	OnLineNumber(event LineNumber)

	// OnVarInsn is called for local variable loads, stores, and ret.
	OnVarInsn(event VarInsn)

	// OnJumpInsn is called for single-target branch instructions.
	OnJumpInsn(event JumpInsn)

	// OnCallInsn is called for method invocation instructions.
	OnCallInsn(event CallInsn)

	// OnInsn is called for every other instruction.
	OnInsn(event Insn)
}

// NoOpVisitor is a MethodVisitor implementation that does nothing.
// Embed this in your visitor to provide default implementations for
// record kinds you don't need.
type NoOpVisitor struct{}

func (NoOpVisitor) OnLineNumber(LineNumber) {}
func (NoOpVisitor) OnVarInsn(VarInsn)       {}
func (NoOpVisitor) OnJumpInsn(JumpInsn)     {}
func (NoOpVisitor) OnCallInsn(CallInsn)     {}
func (NoOpVisitor) OnInsn(Insn)             {}

// Ensure NoOpVisitor implements MethodVisitor.
var _ MethodVisitor = NoOpVisitor{}
