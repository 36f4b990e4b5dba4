// Package op defines the JVM instruction opcodes understood by the scanner.
package op

// Code is a JVM bytecode opcode. Values match the instruction set in the JVM
// specification; every opcode occupies a single byte in a class file.
type Code uint8

const (
	// Constants
	Nop        Code = 0
	AconstNull Code = 1
	IconstM1   Code = 2
	Iconst0    Code = 3
	Iconst1    Code = 4
	Iconst2    Code = 5
	Iconst3    Code = 6
	Iconst4    Code = 7
	Iconst5    Code = 8
	Lconst0    Code = 9
	Lconst1    Code = 10
	Fconst0    Code = 11
	Fconst1    Code = 12
	Fconst2    Code = 13
	Dconst0    Code = 14
	Dconst1    Code = 15
	Bipush     Code = 16
	Sipush     Code = 17
	Ldc        Code = 18
	LdcW       Code = 19
	Ldc2W      Code = 20

	// Loads
	Iload  Code = 21
	Lload  Code = 22
	Fload  Code = 23
	Dload  Code = 24
	Aload  Code = 25
	Iload0 Code = 26
	Iload1 Code = 27
	Iload2 Code = 28
	Iload3 Code = 29
	Lload0 Code = 30
	Lload1 Code = 31
	Lload2 Code = 32
	Lload3 Code = 33
	Fload0 Code = 34
	Fload1 Code = 35
	Fload2 Code = 36
	Fload3 Code = 37
	Dload0 Code = 38
	Dload1 Code = 39
	Dload2 Code = 40
	Dload3 Code = 41
	Aload0 Code = 42
	Aload1 Code = 43
	Aload2 Code = 44
	Aload3 Code = 45
	Iaload Code = 46
	Laload Code = 47
	Faload Code = 48
	Daload Code = 49
	Aaload Code = 50
	Baload Code = 51
	Caload Code = 52
	Saload Code = 53

	// Stores
	Istore  Code = 54
	Lstore  Code = 55
	Fstore  Code = 56
	Dstore  Code = 57
	Astore  Code = 58
	Istore0 Code = 59
	Istore1 Code = 60
	Istore2 Code = 61
	Istore3 Code = 62
	Lstore0 Code = 63
	Lstore1 Code = 64
	Lstore2 Code = 65
	Lstore3 Code = 66
	Fstore0 Code = 67
	Fstore1 Code = 68
	Fstore2 Code = 69
	Fstore3 Code = 70
	Dstore0 Code = 71
	Dstore1 Code = 72
	Dstore2 Code = 73
	Dstore3 Code = 74
	Astore0 Code = 75
	Astore1 Code = 76
	Astore2 Code = 77
	Astore3 Code = 78
	Iastore Code = 79
	Lastore Code = 80
	Fastore Code = 81
	Dastore Code = 82
	Aastore Code = 83
	Bastore Code = 84
	Castore Code = 85
	Sastore Code = 86

	// Stack
	Pop    Code = 87
	Pop2   Code = 88
	Dup    Code = 89
	DupX1  Code = 90
	DupX2  Code = 91
	Dup2   Code = 92
	Dup2X1 Code = 93
	Dup2X2 Code = 94
	Swap   Code = 95

	// Math
	Iadd  Code = 96
	Ladd  Code = 97
	Fadd  Code = 98
	Dadd  Code = 99
	Isub  Code = 100
	Lsub  Code = 101
	Fsub  Code = 102
	Dsub  Code = 103
	Imul  Code = 104
	Lmul  Code = 105
	Fmul  Code = 106
	Dmul  Code = 107
	Idiv  Code = 108
	Ldiv  Code = 109
	Fdiv  Code = 110
	Ddiv  Code = 111
	Irem  Code = 112
	Lrem  Code = 113
	Frem  Code = 114
	Drem  Code = 115
	Ineg  Code = 116
	Lneg  Code = 117
	Fneg  Code = 118
	Dneg  Code = 119
	Ishl  Code = 120
	Lshl  Code = 121
	Ishr  Code = 122
	Lshr  Code = 123
	Iushr Code = 124
	Lushr Code = 125
	Iand  Code = 126
	Land  Code = 127
	Ior   Code = 128
	Lor   Code = 129
	Ixor  Code = 130
	Lxor  Code = 131
	Iinc  Code = 132

	// Conversions
	I2L Code = 133
	I2F Code = 134
	I2D Code = 135
	L2I Code = 136
	L2F Code = 137
	L2D Code = 138
	F2I Code = 139
	F2L Code = 140
	F2D Code = 141
	D2I Code = 142
	D2L Code = 143
	D2F Code = 144
	I2B Code = 145
	I2C Code = 146
	I2S Code = 147

	// Comparisons
	Lcmp  Code = 148
	Fcmpl Code = 149
	Fcmpg Code = 150
	Dcmpl Code = 151
	Dcmpg Code = 152
	Ifeq  Code = 153
	Ifne  Code = 154
	Iflt  Code = 155
	Ifge  Code = 156
	Ifgt  Code = 157
	Ifle  Code = 158

	// Branches
	IfIcmpeq Code = 159
	IfIcmpne Code = 160
	IfIcmplt Code = 161
	IfIcmpge Code = 162
	IfIcmpgt Code = 163
	IfIcmple Code = 164
	IfAcmpeq Code = 165
	IfAcmpne Code = 166
	Goto     Code = 167
	Jsr      Code = 168
	Ret      Code = 169

	// Switches
	Tableswitch  Code = 170
	Lookupswitch Code = 171

	// Returns
	Ireturn Code = 172
	Lreturn Code = 173
	Freturn Code = 174
	Dreturn Code = 175
	Areturn Code = 176
	Return  Code = 177

	// Fields and invocations
	Getstatic       Code = 178
	Putstatic       Code = 179
	Getfield        Code = 180
	Putfield        Code = 181
	Invokevirtual   Code = 182
	Invokespecial   Code = 183
	Invokestatic    Code = 184
	Invokeinterface Code = 185
	Invokedynamic   Code = 186

	// Objects and arrays
	New            Code = 187
	Newarray       Code = 188
	Anewarray      Code = 189
	Arraylength    Code = 190
	Athrow         Code = 191
	Checkcast      Code = 192
	Instanceof     Code = 193
	Monitorenter   Code = 194
	Monitorexit    Code = 195
	Wide           Code = 196
	Multianewarray Code = 197

	// Extended branches
	IfNull    Code = 198
	IfNonNull Code = 199
	GotoW     Code = 200
	JsrW      Code = 201
)

// Info contains information about an opcode.
type Info struct {
	Code     Code
	Mnemonic string

	// OperandBytes is the number of operand bytes that follow the opcode in
	// a class file, or -1 for variable-length instructions.
	OperandBytes int
}

var (
	infos     = make([]Info, 256)
	mnemonics = make(map[string]Code, 206)
)

func init() {
	type opInfo struct {
		op       Code
		mnemonic string
		operands int
	}
	ops := []opInfo{
		{Nop, "nop", 0},
		{AconstNull, "aconst_null", 0},
		{IconstM1, "iconst_m1", 0},
		{Iconst0, "iconst_0", 0},
		{Iconst1, "iconst_1", 0},
		{Iconst2, "iconst_2", 0},
		{Iconst3, "iconst_3", 0},
		{Iconst4, "iconst_4", 0},
		{Iconst5, "iconst_5", 0},
		{Lconst0, "lconst_0", 0},
		{Lconst1, "lconst_1", 0},
		{Fconst0, "fconst_0", 0},
		{Fconst1, "fconst_1", 0},
		{Fconst2, "fconst_2", 0},
		{Dconst0, "dconst_0", 0},
		{Dconst1, "dconst_1", 0},
		{Bipush, "bipush", 1},
		{Sipush, "sipush", 2},
		{Ldc, "ldc", 1},
		{LdcW, "ldc_w", 2},
		{Ldc2W, "ldc2_w", 2},
		{Iload, "iload", 1},
		{Lload, "lload", 1},
		{Fload, "fload", 1},
		{Dload, "dload", 1},
		{Aload, "aload", 1},
		{Iload0, "iload_0", 0},
		{Iload1, "iload_1", 0},
		{Iload2, "iload_2", 0},
		{Iload3, "iload_3", 0},
		{Lload0, "lload_0", 0},
		{Lload1, "lload_1", 0},
		{Lload2, "lload_2", 0},
		{Lload3, "lload_3", 0},
		{Fload0, "fload_0", 0},
		{Fload1, "fload_1", 0},
		{Fload2, "fload_2", 0},
		{Fload3, "fload_3", 0},
		{Dload0, "dload_0", 0},
		{Dload1, "dload_1", 0},
		{Dload2, "dload_2", 0},
		{Dload3, "dload_3", 0},
		{Aload0, "aload_0", 0},
		{Aload1, "aload_1", 0},
		{Aload2, "aload_2", 0},
		{Aload3, "aload_3", 0},
		{Iaload, "iaload", 0},
		{Laload, "laload", 0},
		{Faload, "faload", 0},
		{Daload, "daload", 0},
		{Aaload, "aaload", 0},
		{Baload, "baload", 0},
		{Caload, "caload", 0},
		{Saload, "saload", 0},
		{Istore, "istore", 1},
		{Lstore, "lstore", 1},
		{Fstore, "fstore", 1},
		{Dstore, "dstore", 1},
		{Astore, "astore", 1},
		{Istore0, "istore_0", 0},
		{Istore1, "istore_1", 0},
		{Istore2, "istore_2", 0},
		{Istore3, "istore_3", 0},
		{Lstore0, "lstore_0", 0},
		{Lstore1, "lstore_1", 0},
		{Lstore2, "lstore_2", 0},
		{Lstore3, "lstore_3", 0},
		{Fstore0, "fstore_0", 0},
		{Fstore1, "fstore_1", 0},
		{Fstore2, "fstore_2", 0},
		{Fstore3, "fstore_3", 0},
		{Dstore0, "dstore_0", 0},
		{Dstore1, "dstore_1", 0},
		{Dstore2, "dstore_2", 0},
		{Dstore3, "dstore_3", 0},
		{Astore0, "astore_0", 0},
		{Astore1, "astore_1", 0},
		{Astore2, "astore_2", 0},
		{Astore3, "astore_3", 0},
		{Iastore, "iastore", 0},
		{Lastore, "lastore", 0},
		{Fastore, "fastore", 0},
		{Dastore, "dastore", 0},
		{Aastore, "aastore", 0},
		{Bastore, "bastore", 0},
		{Castore, "castore", 0},
		{Sastore, "sastore", 0},
		{Pop, "pop", 0},
		{Pop2, "pop2", 0},
		{Dup, "dup", 0},
		{DupX1, "dup_x1", 0},
		{DupX2, "dup_x2", 0},
		{Dup2, "dup2", 0},
		{Dup2X1, "dup2_x1", 0},
		{Dup2X2, "dup2_x2", 0},
		{Swap, "swap", 0},
		{Iadd, "iadd", 0},
		{Ladd, "ladd", 0},
		{Fadd, "fadd", 0},
		{Dadd, "dadd", 0},
		{Isub, "isub", 0},
		{Lsub, "lsub", 0},
		{Fsub, "fsub", 0},
		{Dsub, "dsub", 0},
		{Imul, "imul", 0},
		{Lmul, "lmul", 0},
		{Fmul, "fmul", 0},
		{Dmul, "dmul", 0},
		{Idiv, "idiv", 0},
		{Ldiv, "ldiv", 0},
		{Fdiv, "fdiv", 0},
		{Ddiv, "ddiv", 0},
		{Irem, "irem", 0},
		{Lrem, "lrem", 0},
		{Frem, "frem", 0},
		{Drem, "drem", 0},
		{Ineg, "ineg", 0},
		{Lneg, "lneg", 0},
		{Fneg, "fneg", 0},
		{Dneg, "dneg", 0},
		{Ishl, "ishl", 0},
		{Lshl, "lshl", 0},
		{Ishr, "ishr", 0},
		{Lshr, "lshr", 0},
		{Iushr, "iushr", 0},
		{Lushr, "lushr", 0},
		{Iand, "iand", 0},
		{Land, "land", 0},
		{Ior, "ior", 0},
		{Lor, "lor", 0},
		{Ixor, "ixor", 0},
		{Lxor, "lxor", 0},
		{Iinc, "iinc", 2},
		{I2L, "i2l", 0},
		{I2F, "i2f", 0},
		{I2D, "i2d", 0},
		{L2I, "l2i", 0},
		{L2F, "l2f", 0},
		{L2D, "l2d", 0},
		{F2I, "f2i", 0},
		{F2L, "f2l", 0},
		{F2D, "f2d", 0},
		{D2I, "d2i", 0},
		{D2L, "d2l", 0},
		{D2F, "d2f", 0},
		{I2B, "i2b", 0},
		{I2C, "i2c", 0},
		{I2S, "i2s", 0},
		{Lcmp, "lcmp", 0},
		{Fcmpl, "fcmpl", 0},
		{Fcmpg, "fcmpg", 0},
		{Dcmpl, "dcmpl", 0},
		{Dcmpg, "dcmpg", 0},
		{Ifeq, "ifeq", 2},
		{Ifne, "ifne", 2},
		{Iflt, "iflt", 2},
		{Ifge, "ifge", 2},
		{Ifgt, "ifgt", 2},
		{Ifle, "ifle", 2},
		{IfIcmpeq, "if_icmpeq", 2},
		{IfIcmpne, "if_icmpne", 2},
		{IfIcmplt, "if_icmplt", 2},
		{IfIcmpge, "if_icmpge", 2},
		{IfIcmpgt, "if_icmpgt", 2},
		{IfIcmple, "if_icmple", 2},
		{IfAcmpeq, "if_acmpeq", 2},
		{IfAcmpne, "if_acmpne", 2},
		{Goto, "goto", 2},
		{Jsr, "jsr", 2},
		{Ret, "ret", 1},
		{Tableswitch, "tableswitch", -1},
		{Lookupswitch, "lookupswitch", -1},
		{Ireturn, "ireturn", 0},
		{Lreturn, "lreturn", 0},
		{Freturn, "freturn", 0},
		{Dreturn, "dreturn", 0},
		{Areturn, "areturn", 0},
		{Return, "return", 0},
		{Getstatic, "getstatic", 2},
		{Putstatic, "putstatic", 2},
		{Getfield, "getfield", 2},
		{Putfield, "putfield", 2},
		{Invokevirtual, "invokevirtual", 2},
		{Invokespecial, "invokespecial", 2},
		{Invokestatic, "invokestatic", 2},
		{Invokeinterface, "invokeinterface", 4},
		{Invokedynamic, "invokedynamic", 4},
		{New, "new", 2},
		{Newarray, "newarray", 1},
		{Anewarray, "anewarray", 2},
		{Arraylength, "arraylength", 0},
		{Athrow, "athrow", 0},
		{Checkcast, "checkcast", 2},
		{Instanceof, "instanceof", 2},
		{Monitorenter, "monitorenter", 0},
		{Monitorexit, "monitorexit", 0},
		{Wide, "wide", -1},
		{Multianewarray, "multianewarray", 3},
		{IfNull, "ifnull", 2},
		{IfNonNull, "ifnonnull", 2},
		{GotoW, "goto_w", 4},
		{JsrW, "jsr_w", 4},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:         o.op,
			Mnemonic:     o.mnemonic,
			OperandBytes: o.operands,
		}
		mnemonics[o.mnemonic] = o.op
	}
}

// GetInfo returns information about the given opcode. Opcodes that are not
// defined by the JVM specification return a zero Info with an empty mnemonic.
func GetInfo(c Code) Info {
	return infos[c]
}

// String returns the JVM mnemonic for the opcode, or an empty string for
// undefined opcodes.
func (c Code) String() string {
	return infos[c].Mnemonic
}

// FromMnemonic returns the opcode for a JVM mnemonic as printed by javap.
func FromMnemonic(mnemonic string) (Code, bool) {
	c, ok := mnemonics[mnemonic]
	return c, ok
}

// IsLoad returns true for instructions that load a local variable onto the
// operand stack, including the compact _n forms.
func (c Code) IsLoad() bool {
	return c >= Iload && c <= Aload3
}

// IsStore returns true for instructions that store the top of the operand
// stack into a local variable, including the compact _n forms.
func (c Code) IsStore() bool {
	return c >= Istore && c <= Astore3
}

// IsVarInsn returns true for instructions that operate on a local variable
// slot: loads, stores, and ret.
func (c Code) IsVarInsn() bool {
	return c.IsLoad() || c.IsStore() || c == Ret
}

// IsJumpInsn returns true for instructions that transfer control to a single
// bytecode offset: the conditional branches, goto, jsr, and their wide forms.
// The switch instructions carry jump tables and are not included.
func (c Code) IsJumpInsn() bool {
	return (c >= Ifeq && c <= Jsr) || (c >= IfNull && c <= JsrW)
}

// IsCallInsn returns true for the five method invocation instructions.
func (c Code) IsCallInsn() bool {
	return c >= Invokevirtual && c <= Invokedynamic
}
