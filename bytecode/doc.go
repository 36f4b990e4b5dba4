// Package bytecode provides immutable representations of JVM method bodies.
//
// This package defines the input to scanning: pure data structures that
// represent the instructions of a compiled method together with its line
// number table, as printed by javap. These types are designed to be created
// once by a parser and shared safely across multiple goroutines.
//
// # Key Types
//
//   - [Class]: an immutable class with its parsed methods
//   - [Method]: an immutable method body as an ordered sequence of records
//   - [Record]: one line marker or instruction ([LineNumber], [VarInsn],
//     [JumpInsn], [CallInsn], [Insn])
//   - [MethodVisitor]: receives a method body replayed in program order
//
// # Immutability Guarantees
//
// Class and Method are immutable after construction:
//
//   - No mutation methods exist on either type
//   - All fields are unexported
//   - Constructors copy input slices to prevent caller mutation
//   - Accessors return values, never mutable slices
//
// Index-based access is used for all collections:
//
//	// Correct: index-based access
//	method.RecordAt(0)
//	class.MethodAt(i)
//
//	// NOT provided: methods that return slices
//	// method.Records() - does not exist
//
// # Usage
//
// A parsed method can be:
//
//   - Replayed to a [MethodVisitor] for scanning
//   - Disassembled for inspection
//   - Fingerprinted for change detection across scans
//
// Example:
//
//	method.Accept(visitor)
//	fmt.Printf("Records: %d\n", method.RecordCount())
//	fmt.Printf("Fingerprint: %s\n", method.Fingerprint())
package bytecode
