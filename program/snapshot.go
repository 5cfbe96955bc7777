package program

import (
	"encoding/json"
	"fmt"

	"github.com/sarchlab/rig/isa"
)

// Snapshot is the portable form of a placed instruction: the mnemonic paired
// with the raw operand values. Together with the descriptor catalog it is
// enough to reproduce the assembly text.
type Snapshot struct {
	Mnemonic string
	Operands []uint32
}

// Snapshot returns the portable form of the instruction.
func (p *ProgInsn) Snapshot() Snapshot {
	return Snapshot{Mnemonic: p.insn.Mnemonic(), Operands: p.Operands()}
}

// MarshalJSON encodes the snapshot as the two-element array
// ["mnemonic",[operands...]].
func (s Snapshot) MarshalJSON() ([]byte, error) {
	ops := s.Operands
	if ops == nil {
		ops = []uint32{}
	}
	return json.Marshal([2]interface{}{s.Mnemonic, ops})
}

// UnmarshalJSON decodes the two-element array form.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("program: snapshot must be a (mnemonic, operands) pair, got %d elements",
			len(raw))
	}
	if err := json.Unmarshal(raw[0], &s.Mnemonic); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &s.Operands)
}

// Render reconstructs the assembly line for the snapshot by looking the
// mnemonic up in cat. The result matches what DumpAsm emits for the live
// instruction.
func (s Snapshot) Render(cat *isa.Catalog) (string, error) {
	desc, ok := cat.Lookup(s.Mnemonic)
	if !ok {
		return "", fmt.Errorf("program: catalog %s has no mnemonic %q",
			cat.Name(), s.Mnemonic)
	}
	if len(s.Operands) != len(desc.OperandNames()) {
		return "", fmt.Errorf("program: %s takes %d operands, snapshot has %d",
			s.Mnemonic, len(desc.OperandNames()), len(s.Operands))
	}
	return renderLine(desc, s.Operands), nil
}

// SectionSnapshot is the portable form of one committed section.
type SectionSnapshot struct {
	Base  int        `json:"base"`
	Insns []Snapshot `json:"insns"`
}

// Snapshot returns the portable form of the whole program in ascending base
// address order. Any open section is closed first.
func (p *Program) Snapshot() []SectionSnapshot {
	p.CloseSection()

	secs := make([]SectionSnapshot, len(p.sections))
	for i, sec := range p.sections {
		insns := make([]Snapshot, len(sec.insns))
		for j, pi := range sec.insns {
			insns[j] = pi.Snapshot()
		}
		secs[i] = SectionSnapshot{Base: sec.base, Insns: insns}
	}
	return secs
}
