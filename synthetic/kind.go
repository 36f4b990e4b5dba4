package synthetic

// Kind is an instruction category tracked during sequence matching.
// Instructions outside these categories never enter a trace.
type Kind uint8

const (
	// KindNone marks instructions that are not tracked.
	KindNone Kind = iota

	// LoadLocal is a load of a local variable slot.
	LoadLocal

	// StoreLocal is a store to a local variable slot.
	StoreLocal

	// NullCheck is an ifnull conditional branch.
	NullCheck

	// NonNullCheck is an ifnonnull conditional branch.
	NonNullCheck

	// RefEqual is an if_acmpeq conditional branch.
	RefEqual

	// Jump is an unconditional goto or goto_w.
	Jump

	// InvokeVirtual is a method call dispatched through a class.
	InvokeVirtual

	// InvokeInterface is a method call dispatched through an interface.
	InvokeInterface

	// Throw is athrow.
	Throw
)

// String returns a short name for the kind, matching the vocabulary used
// in shape descriptions. For example "load" for LoadLocal.
func (k Kind) String() string {
	switch k {
	case LoadLocal:
		return "load"
	case StoreLocal:
		return "store"
	case NullCheck:
		return "ifnull"
	case NonNullCheck:
		return "ifnonnull"
	case RefEqual:
		return "if_acmpeq"
	case Jump:
		return "goto"
	case InvokeVirtual:
		return "invokevirtual"
	case InvokeInterface:
		return "invokeinterface"
	case Throw:
		return "athrow"
	default:
		return ""
	}
}
