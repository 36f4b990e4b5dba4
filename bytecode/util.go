package bytecode

// copyRecords returns a copy of the given record slice.
func copyRecords(src []Record) []Record {
	if src == nil {
		return nil
	}
	dst := make([]Record, len(src))
	copy(dst, src)
	return dst
}

// copyMethods returns a copy of the given method slice.
// The methods themselves are already immutable.
func copyMethods(src []*Method) []*Method {
	if src == nil {
		return nil
	}
	dst := make([]*Method, len(src))
	copy(dst, src)
	return dst
}
