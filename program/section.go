package program

// OpenSection is a section of instructions that are currently being added
// to. Capacity is tracked in instructions, not bytes.
type OpenSection struct {
	insnsLeft int
	insns     []*ProgInsn
}

// NewOpenSection creates an open section with room for insnsLeft more
// instructions on top of the given initial content.
func NewOpenSection(insnsLeft int, insns []*ProgInsn) *OpenSection {
	if insnsLeft <= 0 {
		panic("program: an open section needs room for at least one instruction")
	}
	return &OpenSection{insnsLeft: insnsLeft, insns: insns}
}

// InsnsLeft returns how many instructions still fit in the section. Callers
// must check this before adding.
func (s *OpenSection) InsnsLeft() int {
	return s.insnsLeft
}

// Insns returns the instructions added so far. The returned slice is owned
// by the section and must not be modified.
func (s *OpenSection) Insns() []*ProgInsn {
	return s.insns
}

// AddInsns appends instructions to the section. It panics if the remaining
// capacity is exceeded.
func (s *OpenSection) AddInsns(insns []*ProgInsn) {
	if len(insns) > s.insnsLeft {
		panic("program: open section capacity exceeded")
	}
	s.insns = append(s.insns, insns...)
	s.insnsLeft -= len(insns)
}
