package isa

// Demo returns a small RISC-style catalog used by the samples and tests.
// Encodings don't matter to the layout core; only the arity, the rendering
// and the load/store classification do.
func Demo() *Catalog {
	cat := NewCatalog("rig demo ISA")
	x := Reg("x")

	cat.Register(DescBuilder{}.
		WithOperand("grd", x).
		WithOperand("grs1", x).
		WithOperand("imm", nil).
		WithSyntax("<grd>, <grs1>, <imm>").
		Build("addi"))

	cat.Register(DescBuilder{}.
		WithOperand("grd", x).
		WithOperand("grs1", x).
		WithOperand("grs2", x).
		WithSyntax("<grd>, <grs1>, <grs2>").
		Build("add"))

	cat.Register(DescBuilder{}.
		WithOperand("grd", x).
		WithOperand("grs1", x).
		WithOperand("grs2", x).
		WithSyntax("<grd>, <grs1>, <grs2>").
		Build("sub"))

	cat.Register(DescBuilder{}.
		WithOperand("grs1", x).
		WithOperand("grs2", x).
		WithOperand("offset", nil).
		WithSyntax("<grs1>, <grs2>, <offset>").
		Build("bne"))

	cat.Register(DescBuilder{}.
		WithOperand("grs1", x).
		WithOperand("grs2", x).
		WithOperand("offset", nil).
		WithSyntax("<grs1>, <grs2>, <offset>").
		Build("beq"))

	cat.Register(DescBuilder{}.
		WithOperand("grd", x).
		WithOperand("offset", nil).
		WithSyntax("<grd>, <offset>").
		Build("jal"))

	cat.Register(DescBuilder{}.
		WithOperand("grd", x).
		WithOperand("offset", nil).
		WithOperand("grs1", x).
		WithSyntax("<grd>, <offset>(<grs1>)").
		WithLSU().
		Build("lw"))

	cat.Register(DescBuilder{}.
		WithOperand("grs2", x).
		WithOperand("offset", nil).
		WithOperand("grs1", x).
		WithSyntax("<grs2>, <offset>(<grs1>)").
		WithLSU().
		Build("sw"))

	// Accumulator multiply with an optional ".z" zeroing suffix glued onto
	// the mnemonic, in the style of wide-math DSP instructions.
	cat.Register(DescBuilder{}.
		WithOperand("zero_acc", zeroSuffix).
		WithOperand("wrs1", Reg("w")).
		WithOperand("wrs2", Reg("w")).
		WithOperand("shift", nil).
		WithSyntax("<zero_acc>, <wrs1>, <wrs2>, <shift>").
		WithGluedOps().
		Build("mulqacc"))

	cat.Register(DescBuilder{}.Build("ecall"))

	return cat
}

func zeroSuffix(val uint32) string {
	if val != 0 {
		return ".z"
	}
	return ""
}
