// Package synthetic detects compiler-generated code in JVM method bodies.
//
// Compilers expand some source constructs into hidden control flow. The
// try-with-resources statement is the prominent case: javac and ECJ both
// emit a finally block that null-checks the resource, closes it, and
// records suppressed exceptions, all attributed to a single source line.
// Tools that work line by line (mutation testing, coverage) misreport
// these lines unless they are filtered out.
//
// Detection is purely sequential: a tracker implementing
// [bytecode.MethodVisitor] accumulates a per-line trace of instruction
// categories and, on athrow, compares the whole trace for exact equality
// against a catalog of known generated shapes. Matched line numbers are
// collected in a shared [LineSet].
//
// One tracker observes one method body at a time. Trackers for different
// methods may share a LineSet, which is safe for concurrent use.
package synthetic
