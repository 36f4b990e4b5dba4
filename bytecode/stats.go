package bytecode

// Stats contains per-category record counts for a method body.
// This is useful for summarizing a listing without dumping it.
type Stats struct {
	// LineMarkers is the number of line number table entries.
	LineMarkers int

	// VarInsns is the number of local variable load, store, and ret
	// instructions.
	VarInsns int

	// JumpInsns is the number of single-target branch instructions.
	JumpInsns int

	// CallInsns is the number of method invocation instructions.
	CallInsns int

	// OtherInsns is the number of remaining instructions.
	OtherInsns int
}

// Insns returns the total instruction count, excluding line markers.
func (s Stats) Insns() int {
	return s.VarInsns + s.JumpInsns + s.CallInsns + s.OtherInsns
}
