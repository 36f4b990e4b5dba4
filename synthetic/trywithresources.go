package synthetic

import (
	"slices"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/Pfoerd/pitest/op"
)

// javacClassShape is the sequence javac emits for the generated finally
// block of a try-with-resources statement over a class-typed resource:
//
//	} finally {
//	    if (closeable != null) {                  // ifnull
//	        if (localThrowable2 != null) {        // ifnull
//	            try {
//	                closeable.close();            // invokevirtual
//	            } catch (Throwable x2) {
//	                localThrowable2.addSuppressed(x2); // invokevirtual
//	            }
//	        } else {
//	            closeable.close();                // invokevirtual
//	        }
//	    }
//	}                                             // athrow
//
// All of it is attributed to one source line; only generated code produces
// this whole sequence without a line change.
var javacClassShape = []Kind{
	StoreLocal, // store throwable
	LoadLocal,
	NullCheck, // closeable != null
	LoadLocal,
	NullCheck, // localThrowable2 != null
	LoadLocal,
	InvokeVirtual,
	Jump, // closeable.close()
	StoreLocal,
	LoadLocal,
	LoadLocal,
	InvokeVirtual,
	Jump, // localThrowable2.addSuppressed(x2)
	LoadLocal,
	InvokeVirtual, // closeable.close()
	LoadLocal,
	Throw, // throw throwable
}

// javacInterfaceShape is javacClassShape with the two close() calls
// dispatched through an interface. The addSuppressed call stays virtual
// because Throwable is a class.
var javacInterfaceShape = []Kind{
	StoreLocal, // store throwable
	LoadLocal,
	NullCheck, // closeable != null
	LoadLocal,
	NullCheck, // localThrowable2 != null
	LoadLocal,
	InvokeInterface,
	Jump, // closeable.close()
	StoreLocal,
	LoadLocal,
	LoadLocal,
	InvokeVirtual,
	Jump, // localThrowable2.addSuppressed(x2)
	LoadLocal,
	InvokeInterface, // closeable.close()
	LoadLocal,
	Throw, // throw throwable
}

// ecjShape is the sequence the Eclipse compiler and aspectj emit for the
// same construct. They merge the suppressed-exception bookkeeping into a
// shorter two-branch form:
//
//	} finally {
//	    if (throwable1 == null) {                 // ifnonnull
//	        throwable1 = throwable2;
//	    } else {
//	        if (throwable1 != throwable2) {       // if_acmpeq
//	            throwable1.addSuppressed(throwable2); // invokevirtual
//	        }
//	    }
//	}                                             // athrow
var ecjShape = []Kind{
	StoreLocal, // store throwable2
	LoadLocal,
	NonNullCheck, // throwable1 == null
	LoadLocal,
	StoreLocal,
	Jump, // throwable1 = throwable2
	LoadLocal,
	LoadLocal,
	RefEqual, // throwable1 != throwable2
	LoadLocal,
	LoadLocal,
	InvokeVirtual, // throwable1.addSuppressed(throwable2)
	LoadLocal,
	Throw, // throw throwable1
}

// catalog lists every known generated shape. The shapes are mutually
// exclusive: no trace can equal more than one of them.
var catalog = [][]Kind{
	javacClassShape,
	javacInterfaceShape,
	ecjShape,
}

// TryWithResources is a [bytecode.MethodVisitor] that detects the finally
// blocks compilers generate for try-with-resources statements. Matched
// source lines are inserted into a shared LineSet.
//
// The tracker accumulates a trace of instruction categories for the
// current source line. A line marker discards any partial trace. An athrow
// completes the trace, compares it against the catalog, and discards it
// whether or not it matched. Instructions outside the tracked categories
// never enter the trace.
//
// One tracker observes one method body at a time. Create a fresh tracker
// per method, or call Reset between methods.
type TryWithResources struct {
	bytecode.NoOpVisitor
	lines *LineSet
	trace []Kind
	line  int
}

// NewTryWithResources creates a tracker that inserts the source lines of
// detected blocks into lines.
func NewTryWithResources(lines *LineSet) *TryWithResources {
	return &TryWithResources{lines: lines}
}

// OnLineNumber discards any partial trace and begins tracking a new line.
func (t *TryWithResources) OnLineNumber(event bytecode.LineNumber) {
	t.discard()
	t.line = event.Line
}

// OnVarInsn tracks local variable loads and stores. The slot number does
// not participate in matching; ret is not tracked.
func (t *TryWithResources) OnVarInsn(event bytecode.VarInsn) {
	switch {
	case event.Op.IsStore():
		t.trace = append(t.trace, StoreLocal)
	case event.Op.IsLoad():
		t.trace = append(t.trace, LoadLocal)
	}
}

// OnJumpInsn tracks ifnull, ifnonnull, if_acmpeq, and unconditional jumps.
// Other branch instructions never appear in the known shapes and are not
// tracked.
func (t *TryWithResources) OnJumpInsn(event bytecode.JumpInsn) {
	switch event.Op {
	case op.IfNull:
		t.trace = append(t.trace, NullCheck)
	case op.IfNonNull:
		t.trace = append(t.trace, NonNullCheck)
	case op.IfAcmpeq:
		t.trace = append(t.trace, RefEqual)
	case op.Goto, op.GotoW:
		t.trace = append(t.trace, Jump)
	}
}

// OnCallInsn tracks calls by dispatch kind. Direct invocations
// (invokespecial, invokestatic, invokedynamic) never appear in the known
// shapes and are not tracked.
func (t *TryWithResources) OnCallInsn(event bytecode.CallInsn) {
	switch event.Op {
	case op.Invokevirtual:
		t.trace = append(t.trace, InvokeVirtual)
	case op.Invokeinterface:
		t.trace = append(t.trace, InvokeInterface)
	}
}

// OnInsn completes the trace when the instruction is athrow. Every other
// plain instruction is ignored and does not disturb tracking.
func (t *TryWithResources) OnInsn(event bytecode.Insn) {
	if event.Op != op.Athrow {
		return
	}
	t.trace = append(t.trace, Throw)
	t.match()
	t.discard()
}

// Reset returns the tracker to its initial state so it can observe another
// method body. The LineSet keeps any lines recorded so far.
func (t *TryWithResources) Reset() {
	t.discard()
	t.line = 0
}

// match compares the trace, as a whole ordered sequence, for exact
// equality against each known shape. On the first match the current line
// is recorded. A single extra or missing instruction means no match and
// the line is treated as ordinary user code.
func (t *TryWithResources) match() {
	for _, shape := range catalog {
		if slices.Equal(t.trace, shape) {
			t.lines.Add(t.line)
			return
		}
	}
}

// discard drops the accumulated trace, keeping its capacity for reuse.
func (t *TryWithResources) discard() {
	if len(t.trace) > 0 {
		t.trace = t.trace[:0]
	}
}

// Ensure TryWithResources implements MethodVisitor.
var _ bytecode.MethodVisitor = (*TryWithResources)(nil)
