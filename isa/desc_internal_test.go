package isa

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Catalog", func() {
	It("registers and looks up descriptors", func() {
		cat := NewCatalog("test")
		d := DescBuilder{}.
			WithOperand("grd", Reg("x")).
			WithSyntax("<grd>").
			Build("nop")
		cat.Register(d)

		got, ok := cat.Lookup("nop")
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(d))

		_, ok = cat.Lookup("missing")
		Expect(ok).To(BeFalse())
	})

	It("panics on a duplicate mnemonic", func() {
		cat := NewCatalog("test")
		cat.Register(DescBuilder{}.Build("nop"))

		Expect(func() {
			cat.Register(DescBuilder{}.Build("nop"))
		}).To(Panic())
	})

	It("lists mnemonics in sorted order", func() {
		names := Demo().Mnemonics()
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
		Expect(names).To(ContainElements("addi", "lw", "sw", "mulqacc"))
	})
})

var _ = Describe("Desc", func() {
	It("renders decimal and register operands", func() {
		addi, _ := Demo().Lookup("addi")

		Expect(addi.OperandNames()).To(Equal([]string{"grd", "grs1", "imm"}))
		Expect(addi.RenderOperands(map[string]uint32{
			"grd": 1, "grs1": 2, "imm": 3,
		})).To(Equal([]string{"x1", "x2", "3"}))
	})

	It("renders tokens that combine several operands", func() {
		lw, _ := Demo().Lookup("lw")

		Expect(lw.RenderOperands(map[string]uint32{
			"grd": 5, "offset": 8, "grs1": 2,
		})).To(Equal([]string{"x5", "8(x2)"}))
	})

	It("renders nothing for a zero-operand descriptor", func() {
		ecall, _ := Demo().Lookup("ecall")

		Expect(ecall.OperandNames()).To(BeEmpty())
		Expect(ecall.RenderOperands(nil)).To(BeEmpty())
	})

	It("carries the glued and load/store classifications", func() {
		lw, _ := Demo().Lookup("lw")
		mulqacc, _ := Demo().Lookup("mulqacc")
		addi, _ := Demo().Lookup("addi")

		Expect(lw.IsLSU()).To(BeTrue())
		Expect(addi.IsLSU()).To(BeFalse())
		Expect(mulqacc.GluedOps()).To(BeTrue())
		Expect(addi.GluedOps()).To(BeFalse())
	})

	It("panics when syntax references an unknown operand", func() {
		Expect(func() {
			DescBuilder{}.WithSyntax("<nope>").Build("bad")
		}).To(Panic())
	})
})
