// Package program tracks the layout of a randomly generated instruction
// program inside a fixed-size instruction memory: which address ranges are
// occupied, where new instruction sequences may be appended, and where
// branch targets can land in free space.
package program

import (
	"fmt"

	"github.com/sarchlab/rig/isa"
)

// MemAccess records the memory region kind and the target address of a load
// or store instruction. Storing the address here is much easier than
// recovering it later from register values.
type MemAccess struct {
	MemType string
	Addr    uint32
}

// ProgInsn is a single placed instruction: a descriptor, one value per
// declared operand, and, for loads and stores only, the memory access it
// performs. Register operands hold the register index; immediate operands
// hold the bit pattern of the immediate, so an 8-bit signed immediate with
// value -1 is stored as 0xff.
type ProgInsn struct {
	insn      isa.Insn
	operands  []uint32
	memAccess *MemAccess
}

// NewProgInsn creates a placed instruction. It panics if the operand count
// doesn't match the descriptor arity, or if the memory access annotation is
// not present exactly for load/store instructions.
func NewProgInsn(insn isa.Insn, operands []uint32, memAccess *MemAccess) *ProgInsn {
	if len(operands) != len(insn.OperandNames()) {
		panic(fmt.Sprintf("program: %s takes %d operands, got %d",
			insn.Mnemonic(), len(insn.OperandNames()), len(operands)))
	}
	if (memAccess != nil) != insn.IsLSU() {
		panic(fmt.Sprintf(
			"program: %s: memory access info must be present exactly for load/store instructions",
			insn.Mnemonic()))
	}

	ops := make([]uint32, len(operands))
	copy(ops, operands)

	var mem *MemAccess
	if memAccess != nil {
		m := *memAccess
		mem = &m
	}

	return &ProgInsn{insn: insn, operands: ops, memAccess: mem}
}

// Insn returns the instruction descriptor.
func (p *ProgInsn) Insn() isa.Insn {
	return p.insn
}

// Operands returns a copy of the operand values, in descriptor order.
func (p *ProgInsn) Operands() []uint32 {
	ops := make([]uint32, len(p.operands))
	copy(ops, p.operands)
	return ops
}

// MemAccess returns the memory access annotation. The second return value is
// true exactly when the instruction is a load or store.
func (p *ProgInsn) MemAccess() (MemAccess, bool) {
	if p.memAccess == nil {
		return MemAccess{}, false
	}
	return *p.memAccess, true
}
