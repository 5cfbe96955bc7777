package program

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProgInsn", func() {
	var (
		mockCtrl *gomock.Controller
		in       *MockInsn
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		in = NewMockInsn(mockCtrl)
		in.EXPECT().Mnemonic().Return("fake").AnyTimes()
		in.EXPECT().OperandNames().Return([]string{"a", "b"}).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("accepts a matching operand list", func() {
		in.EXPECT().IsLSU().Return(false).AnyTimes()

		pi := NewProgInsn(in, []uint32{1, 2}, nil)
		Expect(pi.Operands()).To(Equal([]uint32{1, 2}))
		Expect(pi.Insn()).To(BeIdenticalTo(in))

		_, ok := pi.MemAccess()
		Expect(ok).To(BeFalse())
	})

	It("copies the operand values", func() {
		in.EXPECT().IsLSU().Return(false).AnyTimes()

		ops := []uint32{1, 2}
		pi := NewProgInsn(in, ops, nil)
		ops[0] = 99

		Expect(pi.Operands()).To(Equal([]uint32{1, 2}))
	})

	It("panics on an arity mismatch", func() {
		in.EXPECT().IsLSU().Return(false).AnyTimes()

		Expect(func() { NewProgInsn(in, []uint32{1}, nil) }).To(Panic())
	})

	It("panics when a load/store has no memory access", func() {
		in.EXPECT().IsLSU().Return(true).AnyTimes()

		Expect(func() { NewProgInsn(in, []uint32{1, 2}, nil) }).To(Panic())
	})

	It("panics when a non-load/store carries a memory access", func() {
		in.EXPECT().IsLSU().Return(false).AnyTimes()

		Expect(func() {
			NewProgInsn(in, []uint32{1, 2}, &MemAccess{MemType: "dmem", Addr: 4})
		}).To(Panic())
	})

	It("reports the memory access of a load/store", func() {
		in.EXPECT().IsLSU().Return(true).AnyTimes()

		pi := NewProgInsn(in, []uint32{1, 2}, &MemAccess{MemType: "dmem", Addr: 4})

		ma, ok := pi.MemAccess()
		Expect(ok).To(BeTrue())
		Expect(ma.MemType).To(Equal("dmem"))
		Expect(ma.Addr).To(Equal(uint32(4)))
	})
})
