package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/rig/isa"
)

// Width of the mnemonic column in the assembly dump.
const mnemonicWidth = 14

// DumpAsm writes an assembly representation of the program to w. Any open
// section is closed first so the dump sees a consistent set of committed
// sections.
func (p *Program) DumpAsm(w io.Writer) error {
	p.CloseSection()

	for idx, sec := range p.sections {
		sep := ""
		if idx > 0 {
			sep = "\n"
		}
		_, err := fmt.Fprintf(w, "%s/* Section %d (%d instructions) */\n",
			sep, idx, len(sec.insns))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, ".offset %#x\n", sec.base); err != nil {
			return err
		}

		for _, pi := range sec.insns {
			if _, err := fmt.Fprintln(w, renderLine(pi.insn, pi.operands)); err != nil {
				return err
			}
		}
	}

	return nil
}

// renderLine renders one instruction as assembly text: the mnemonic padded
// to a fixed column, then the rendered operand tokens. A glued first token
// attaches directly to the mnemonic instead.
func renderLine(in isa.Insn, operands []uint32) string {
	names := in.OperandNames()
	vals := make(map[string]uint32, len(names))
	for i, name := range names {
		vals[name] = operands[i]
	}

	toks := in.RenderOperands(vals)
	mnem := in.Mnemonic()
	if in.GluedOps() && len(toks) > 0 {
		mnem += toks[0]
		toks = toks[1:]
	}

	return fmt.Sprintf("%-*s%s", mnemonicWidth, mnem, strings.Join(toks, ", "))
}
