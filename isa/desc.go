package isa

import (
	"strconv"
	"strings"
)

// Operand describes one operand slot of a descriptor: its name and how a raw
// value renders in assembly text. A nil Fmt renders the value in decimal.
type Operand struct {
	Name string
	Fmt  func(val uint32) string
}

// Reg returns a formatter that renders a register index with the given file
// prefix, so Reg("x") renders 3 as "x3".
func Reg(prefix string) func(uint32) string {
	return func(val uint32) string {
		return prefix + strconv.FormatUint(uint64(val), 10)
	}
}

// Desc is a concrete instruction descriptor. It implements Insn.
type Desc struct {
	mnemonic string
	operands []Operand
	tokens   []string
	glued    bool
	lsu      bool
}

// DescBuilder builds instruction descriptors.
type DescBuilder struct {
	operands []Operand
	syntax   string
	glued    bool
	lsu      bool
}

// WithOperand appends an operand slot. Operand order is significant: it
// defines how positional values map onto names.
func (b DescBuilder) WithOperand(name string, format func(uint32) string) DescBuilder {
	b.operands = append(b.operands, Operand{Name: name, Fmt: format})
	return b
}

// WithSyntax sets the operand syntax. Tokens are separated by ", " and refer
// to operands as <name>.
func (b DescBuilder) WithSyntax(syntax string) DescBuilder {
	b.syntax = syntax
	return b
}

// WithGluedOps marks the first rendered token as glued to the mnemonic.
func (b DescBuilder) WithGluedOps() DescBuilder {
	b.glued = true
	return b
}

// WithLSU classifies the instruction as a load or store.
func (b DescBuilder) WithLSU() DescBuilder {
	b.lsu = true
	return b
}

// Build creates the descriptor. It panics if the syntax references an
// operand that was not declared.
func (b DescBuilder) Build(mnemonic string) *Desc {
	d := &Desc{
		mnemonic: mnemonic,
		operands: b.operands,
		glued:    b.glued,
		lsu:      b.lsu,
	}
	if b.syntax != "" {
		d.tokens = strings.Split(b.syntax, ", ")
	}

	vals := make(map[string]uint32, len(d.operands))
	for _, op := range d.operands {
		vals[op.Name] = 0
	}
	for _, tok := range d.RenderOperands(vals) {
		if strings.ContainsAny(tok, "<>") {
			panic("isa: syntax for " + mnemonic +
				" references an unknown operand: " + tok)
		}
	}

	return d
}

// Mnemonic returns the instruction name.
func (d *Desc) Mnemonic() string {
	return d.mnemonic
}

// OperandNames returns the declared operand names in order.
func (d *Desc) OperandNames() []string {
	names := make([]string, len(d.operands))
	for i, op := range d.operands {
		names[i] = op.Name
	}
	return names
}

// GluedOps reports whether the first rendered token glues to the mnemonic.
func (d *Desc) GluedOps() bool {
	return d.glued
}

// IsLSU reports whether the instruction is a load or store.
func (d *Desc) IsLSU() bool {
	return d.lsu
}

// RenderOperands substitutes operand values into the syntax tokens.
func (d *Desc) RenderOperands(vals map[string]uint32) []string {
	toks := make([]string, len(d.tokens))
	for i, tmpl := range d.tokens {
		tok := tmpl
		for _, op := range d.operands {
			placeholder := "<" + op.Name + ">"
			if !strings.Contains(tok, placeholder) {
				continue
			}
			tok = strings.ReplaceAll(tok, placeholder, formatOperand(op, vals[op.Name]))
		}
		toks[i] = tok
	}
	return toks
}

func formatOperand(op Operand, val uint32) string {
	if op.Fmt != nil {
		return op.Fmt(val)
	}
	return strconv.FormatUint(uint64(val), 10)
}
