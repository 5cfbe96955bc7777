// Package isa defines the instruction-descriptor surface consumed by the
// layout core: what an instruction is called, how many operands it takes and
// how they render, plus the load/store classification. The package never
// encodes or executes anything.
package isa

import "sort"

// Insn describes one instruction of the target instruction set. The layout
// core treats values of this type as opaque and immutable.
type Insn interface {
	// Mnemonic returns the instruction name as it appears in assembly text.
	Mnemonic() string

	// OperandNames returns the declared operand names. The order is fixed
	// and defines how positional operand values map onto names.
	OperandNames() []string

	// RenderOperands maps operand values (keyed by name) to the rendered
	// operand tokens. Tokens are joined with ", " in the operand column of
	// the assembly text. A single token may combine several operands, such
	// as "-16(x2)" for an offset and a base register.
	RenderOperands(vals map[string]uint32) []string

	// GluedOps reports whether the first rendered token attaches directly
	// to the mnemonic with no separator, like a suffix or a post-increment
	// marker.
	GluedOps() bool

	// IsLSU reports whether the instruction is a load or store. Placed
	// load/store instructions must carry a memory-access annotation.
	IsLSU() bool
}

// Catalog is a named registry of instruction descriptors, keyed by mnemonic.
type Catalog struct {
	name       string
	byMnemonic map[string]*Desc
}

// NewCatalog creates an empty catalog.
func NewCatalog(name string) *Catalog {
	return &Catalog{
		name:       name,
		byMnemonic: make(map[string]*Desc),
	}
}

// Name returns the name of the catalog.
func (c *Catalog) Name() string {
	return c.name
}

// Register adds a descriptor to the catalog.
func (c *Catalog) Register(d *Desc) {
	if _, ok := c.byMnemonic[d.mnemonic]; ok {
		panic("isa: duplicate mnemonic " + d.mnemonic)
	}
	c.byMnemonic[d.mnemonic] = d
}

// Lookup returns the descriptor registered under mnemonic, if any.
func (c *Catalog) Lookup(mnemonic string) (*Desc, bool) {
	d, ok := c.byMnemonic[mnemonic]
	return d, ok
}

// Mnemonics returns the registered mnemonics in sorted order.
func (c *Catalog) Mnemonics() []string {
	names := make([]string, 0, len(c.byMnemonic))
	for name := range c.byMnemonic {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
