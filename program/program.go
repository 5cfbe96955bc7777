package program

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
)

// section is a committed run of instructions at a fixed base address. It
// occupies the half-open byte range [base, base+4*len(insns)).
type section struct {
	base  int
	insns []*ProgInsn
}

func (s section) top() int {
	return s.base + 4*len(s.insns)
}

// Program tracks the sections of the program being generated. Committed
// sections never overlap, and at most one section is open for appending at
// any time. All randomness flows through the Program's own source, so a
// fixed seed reproduces the exact same placement decisions.
//
// A Program is meant to be owned by a single generation run; it is not safe
// for concurrent use.
type Program struct {
	imemSize int

	// Committed sections in ascending base-address order, bases unique.
	sections []section

	// The section currently being appended to, if any.
	curBase int
	cur     *OpenSection

	rng *rand.Rand
}

// Builder creates Programs.
type Builder struct {
	imemSize int
	rng      *rand.Rand
}

// WithImemSize sets the instruction memory size in bytes. The size must be
// positive and 4-byte aligned.
func (b Builder) WithImemSize(size int) Builder {
	b.imemSize = size
	return b
}

// WithSeed seeds the Program's random source. Identical seeds and call
// sequences produce identical programs.
func (b Builder) WithSeed(seed int64) Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// WithRand sets the random source directly. The Program takes ownership of
// the source; sharing it with another Program breaks reproducibility.
func (b Builder) WithRand(rng *rand.Rand) Builder {
	b.rng = rng
	return b
}

// Build creates the Program.
func (b Builder) Build() *Program {
	if b.imemSize <= 0 || b.imemSize&3 != 0 {
		panic("program: imem size must be positive and 4-byte aligned")
	}
	rng := b.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Program{imemSize: b.imemSize, rng: rng}
}

// ImemSize returns the instruction memory size in bytes.
func (p *Program) ImemSize() int {
	return p.imemSize
}

// secSearch returns the index of the first committed section whose base
// address is >= addr.
func (p *Program) secSearch(addr int) int {
	return sort.Search(len(p.sections), func(i int) bool {
		return p.sections[i].base >= addr
	})
}

// OpenSection starts a new section at addr, closing any section that is
// currently open. If the new section starts exactly where a committed
// section ends, the two are merged: the committed content becomes the
// initial content of the open section. It panics if addr is misaligned,
// beyond the memory, or inside an existing section.
func (p *Program) OpenSection(addr int) {
	if addr&3 != 0 {
		panic(fmt.Sprintf("program: section address %#x is not 4-byte aligned", addr))
	}
	if addr < 0 || addr > p.imemSize {
		panic(fmt.Sprintf("program: section address %#x is outside the %d-byte memory",
			addr, p.imemSize))
	}

	p.CloseSection()

	idx := p.secSearch(addr)
	nextAbove := p.imemSize
	if idx < len(p.sections) {
		nextAbove = p.sections[idx].base
	}
	if addr >= nextAbove {
		panic(fmt.Sprintf("program: no room to open a section at %#x", addr))
	}
	insnsLeft := (nextAbove - addr) / 4

	if idx > 0 {
		prev := p.sections[idx-1]
		if prev.top() > addr {
			panic(fmt.Sprintf("program: address %#x lies inside the section at %#x",
				addr, prev.base))
		}

		// The previous section ends exactly at addr: continue it instead of
		// generating two adjacent sections.
		if prev.top() == addr {
			p.sections = append(p.sections[:idx-1], p.sections[idx:]...)
			p.curBase = prev.base
			p.cur = NewOpenSection(insnsLeft, prev.insns)
			slog.Debug("SectionMerged", "base", prev.base, "at", addr)
			return
		}
	}

	p.curBase = addr
	p.cur = NewOpenSection(insnsLeft, nil)
}

// CloseSection commits the open section, if there is one.
func (p *Program) CloseSection() {
	if p.cur == nil {
		return
	}

	// Capacity tracking in OpenSection should already prevent collisions.
	// Checking that the base isn't duplicated is a cheap sanity check on
	// top of that.
	idx := p.secSearch(p.curBase)
	if idx < len(p.sections) && p.sections[idx].base == p.curBase {
		panic(fmt.Sprintf("program: duplicate section base %#x", p.curBase))
	}

	p.sections = append(p.sections, section{})
	copy(p.sections[idx+1:], p.sections[idx:])
	p.sections[idx] = section{base: p.curBase, insns: p.cur.insns}

	slog.Debug("SectionClosed", "base", p.curBase, "insns", len(p.cur.insns))
	p.cur = nil
}

// CurSection returns the open section, or nil if there isn't one.
func (p *Program) CurSection() *OpenSection {
	return p.cur
}

// AddInsns opens a section at addr (closing and possibly merging, exactly
// like OpenSection) and appends the instructions to it.
func (p *Program) AddInsns(addr int, insns []*ProgInsn) {
	p.OpenSection(addr)
	p.cur.AddInsns(insns)
}

// InsnSpaceAt returns how many whole instructions fit starting at addr
// before hitting the end of memory or any committed or open section.
func (p *Program) InsnSpaceAt(addr int) int {
	space := p.imemSize - addr
	if space <= 0 {
		return 0
	}

	for _, sec := range p.sections {
		if addr < sec.top() {
			if sec.base-addr < space {
				space = sec.base - addr
			}
			if space <= 0 {
				return 0
			}
		}
	}

	if p.cur != nil {
		top := p.curBase + 4*len(p.cur.insns)
		if addr < top && p.curBase-addr < space {
			space = p.curBase - addr
		}
	}

	if space <= 0 {
		return 0
	}
	return space / 4
}
