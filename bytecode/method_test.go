package bytecode

import (
	"fmt"
	"testing"

	"github.com/Pfoerd/pitest/op"
)

func TestNewMethodImmutability(t *testing.T) {
	records := []Record{
		LineNumber{Offset: 0, Line: 5},
		VarInsn{Offset: 0, Op: op.Aload0, Slot: 0},
		CallInsn{Offset: 1, Op: op.Invokevirtual, Owner: "java/io/Reader", Name: "close", Descriptor: "()V"},
	}

	method := NewMethod(MethodParams{
		ClassName:  "com.example.Widget",
		Name:       "run",
		Descriptor: "()V",
		Records:    records,
	})

	// Modify the original slice
	records[0] = LineNumber{Offset: 99, Line: 99}
	records[1] = Insn{Offset: 99, Op: op.Nop}

	// Verify the method was not affected by the modifications
	if rec, ok := method.RecordAt(0).(LineNumber); !ok || rec.Line != 5 {
		t.Errorf("expected record 0 to be line 5, got %v", method.RecordAt(0))
	}
	if rec, ok := method.RecordAt(1).(VarInsn); !ok || rec.Op != op.Aload0 {
		t.Errorf("expected record 1 to be aload_0, got %v", method.RecordAt(1))
	}
}

func TestMethodAccessors(t *testing.T) {
	method := NewMethod(MethodParams{
		ClassName:  "com.example.Widget",
		Name:       "copy",
		Descriptor: "(Ljava/io/Reader;Ljava/io/Writer;)V",
		Records: []Record{
			LineNumber{Offset: 0, Line: 12},
			VarInsn{Offset: 0, Op: op.Aload, Slot: 4},
			Insn{Offset: 2, Op: op.Return},
		},
	})

	if method.ClassName() != "com.example.Widget" {
		t.Errorf("unexpected class name: %v", method.ClassName())
	}
	if method.Name() != "copy" {
		t.Errorf("unexpected name: %v", method.Name())
	}
	if method.Descriptor() != "(Ljava/io/Reader;Ljava/io/Writer;)V" {
		t.Errorf("unexpected descriptor: %v", method.Descriptor())
	}
	want := "com.example.Widget.copy(Ljava/io/Reader;Ljava/io/Writer;)V"
	if method.FullName() != want {
		t.Errorf("expected full name %q, got %q", want, method.FullName())
	}
	if method.RecordCount() != 3 {
		t.Errorf("expected RecordCount 3, got %v", method.RecordCount())
	}
	if method.RecordAt(2).Pos() != 2 {
		t.Errorf("expected record 2 at offset 2, got %v", method.RecordAt(2).Pos())
	}
}

// orderVisitor records the order in which record callbacks fire.
type orderVisitor struct {
	NoOpVisitor
	seen []string
}

func (v *orderVisitor) OnLineNumber(event LineNumber) {
	v.seen = append(v.seen, fmt.Sprintf("line:%d", event.Line))
}

func (v *orderVisitor) OnVarInsn(event VarInsn) {
	v.seen = append(v.seen, "var:"+event.Op.String())
}

func (v *orderVisitor) OnJumpInsn(event JumpInsn) {
	v.seen = append(v.seen, "jump:"+event.Op.String())
}

func (v *orderVisitor) OnCallInsn(event CallInsn) {
	v.seen = append(v.seen, "call:"+event.Name)
}

func (v *orderVisitor) OnInsn(event Insn) {
	v.seen = append(v.seen, "insn:"+event.Op.String())
}

func TestMethodAccept(t *testing.T) {
	method := NewMethod(MethodParams{
		ClassName: "com.example.Widget",
		Name:      "run",
		Records: []Record{
			LineNumber{Offset: 0, Line: 7},
			VarInsn{Offset: 0, Op: op.Astore1, Slot: 1},
			JumpInsn{Offset: 1, Op: op.IfNull, Target: 12},
			CallInsn{Offset: 4, Op: op.Invokevirtual, Name: "close"},
			Insn{Offset: 7, Op: op.Athrow},
		},
	})

	visitor := &orderVisitor{}
	method.Accept(visitor)

	want := []string{"line:7", "var:astore_1", "jump:ifnull", "call:close", "insn:athrow"}
	if len(visitor.seen) != len(want) {
		t.Fatalf("expected %d callbacks, got %d: %v", len(want), len(visitor.seen), visitor.seen)
	}
	for i := range want {
		if visitor.seen[i] != want[i] {
			t.Errorf("callback %d: expected %q, got %q", i, want[i], visitor.seen[i])
		}
	}
}

func TestMethodAcceptNoOp(t *testing.T) {
	method := NewMethod(MethodParams{
		Name: "run",
		Records: []Record{
			LineNumber{Offset: 0, Line: 1},
			Insn{Offset: 0, Op: op.Return},
		},
	})
	// Must not panic
	method.Accept(NoOpVisitor{})
}

func TestMethodStats(t *testing.T) {
	method := NewMethod(MethodParams{
		Name: "run",
		Records: []Record{
			LineNumber{Offset: 0, Line: 3},
			VarInsn{Offset: 0, Op: op.Astore1, Slot: 1},
			VarInsn{Offset: 1, Op: op.Aload1, Slot: 1},
			JumpInsn{Offset: 2, Op: op.IfNull, Target: 10},
			CallInsn{Offset: 5, Op: op.Invokeinterface, Name: "close"},
			Insn{Offset: 10, Op: op.Athrow},
			Insn{Offset: 11, Op: op.Return},
		},
	})

	stats := method.Stats()
	if stats.LineMarkers != 1 {
		t.Errorf("expected LineMarkers 1, got %v", stats.LineMarkers)
	}
	if stats.VarInsns != 2 {
		t.Errorf("expected VarInsns 2, got %v", stats.VarInsns)
	}
	if stats.JumpInsns != 1 {
		t.Errorf("expected JumpInsns 1, got %v", stats.JumpInsns)
	}
	if stats.CallInsns != 1 {
		t.Errorf("expected CallInsns 1, got %v", stats.CallInsns)
	}
	if stats.OtherInsns != 2 {
		t.Errorf("expected OtherInsns 2, got %v", stats.OtherInsns)
	}
	if stats.Insns() != 6 {
		t.Errorf("expected Insns 6, got %v", stats.Insns())
	}
}

func TestMethodFingerprint(t *testing.T) {
	params := MethodParams{
		ClassName:  "com.example.Widget",
		Name:       "run",
		Descriptor: "()V",
		Records: []Record{
			LineNumber{Offset: 0, Line: 5},
			Insn{Offset: 0, Op: op.Return},
		},
	}

	a := NewMethod(params)
	b := NewMethod(params)
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("expected identical methods to share a fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a.Fingerprint()))
	}

	// A different line number must change the fingerprint
	params.Records = []Record{
		LineNumber{Offset: 0, Line: 6},
		Insn{Offset: 0, Op: op.Return},
	}
	c := NewMethod(params)
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("expected differing records to change the fingerprint")
	}

	// A different descriptor must change the fingerprint
	d := NewMethod(MethodParams{
		ClassName:  "com.example.Widget",
		Name:       "run",
		Descriptor: "(I)V",
		Records: []Record{
			LineNumber{Offset: 0, Line: 5},
			Insn{Offset: 0, Op: op.Return},
		},
	})
	if a.Fingerprint() == d.Fingerprint() {
		t.Error("expected differing descriptors to change the fingerprint")
	}
}

func TestClassAccessors(t *testing.T) {
	methods := []*Method{
		NewMethod(MethodParams{ClassName: "com.example.Widget", Name: "<init>"}),
		NewMethod(MethodParams{ClassName: "com.example.Widget", Name: "run"}),
	}

	class := NewClass(ClassParams{
		Name:       "com.example.Widget",
		SourceFile: "Widget.java",
		Methods:    methods,
	})

	// Modify the original slice
	methods[0] = NewMethod(MethodParams{Name: "bogus"})

	if class.Name() != "com.example.Widget" {
		t.Errorf("unexpected class name: %v", class.Name())
	}
	if class.SourceFile() != "Widget.java" {
		t.Errorf("unexpected source file: %v", class.SourceFile())
	}
	if class.MethodCount() != 2 {
		t.Errorf("expected MethodCount 2, got %v", class.MethodCount())
	}
	if class.MethodAt(0).Name() != "<init>" {
		t.Errorf("expected method 0 to be <init>, got %v", class.MethodAt(0).Name())
	}
	if class.MethodAt(1).Name() != "run" {
		t.Errorf("expected method 1 to be run, got %v", class.MethodAt(1).Name())
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		record   Record
		expected string
	}{
		{LineNumber{Offset: 4, Line: 17}, "line 17: 4"},
		{VarInsn{Offset: 0, Op: op.Aload0, Slot: 0}, "aload_0"},
		{VarInsn{Offset: 1, Op: op.Astore, Slot: 4}, "astore 4"},
		{JumpInsn{Offset: 9, Op: op.IfNull, Target: 22}, "ifnull 22"},
		{JumpInsn{Offset: 30, Op: op.Goto, Target: 38}, "goto 38"},
		{CallInsn{Offset: 13, Op: op.Invokevirtual, Owner: "java/io/Reader", Name: "close", Descriptor: "()V"}, "invokevirtual java/io/Reader.close:()V"},
		{CallInsn{Offset: 13, Op: op.Invokeinterface}, "invokeinterface"},
		{Insn{Offset: 21, Op: op.Athrow}, "athrow"},
	}

	for _, tt := range tests {
		result := fmt.Sprintf("%v", tt.record)
		if result != tt.expected {
			t.Errorf("String() = %q, expected %q", result, tt.expected)
		}
	}
}
