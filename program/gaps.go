package program

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	// Gap selection weights the free length beyond the minimum requirement,
	// raised to this power, so one roomy gap is strongly favoured over
	// several cramped ones.
	gapWeightPow = 2.0

	// Share of the in-gap offset distribution assigned to the two 10% edge
	// bands. Picking near the edges splits gaps less often.
	edgeBias = 0.5
)

// gap is a free byte range [lo, lo+length). Every 4-byte aligned address in
// [lo, lo+length-4*minLen] is a valid target start, so length is always at
// least 4*minLen.
type gap struct {
	lo     int
	length int
}

func (g gap) top() int {
	return g.lo + g.length
}

// PickBranchTargets picks count random addresses for branch destinations.
//
// Each returned address is 4-byte aligned, has space for at least minLen
// instructions at the time of the call, and lies within [tgtMin, tgtMax]
// where the bounds are given (nil means unbounded). Targets from the same
// call keep at least minLen instructions of distance from each other and
// from the section each follows. The guarantee is evaluated against the
// current layout only; callers must place before mutating further.
//
// The second return value is false if there is not enough free space to
// satisfy the request.
func (p *Program) PickBranchTargets(minLen, count int, tgtMin, tgtMax *int) ([]int, bool) {
	if minLen <= 0 {
		panic(fmt.Sprintf("program: branch targets need a positive minimum length, got %d",
			minLen))
	}

	gaps := p.buildGapList(minLen, tgtMin, tgtMax)

	tgts := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if len(gaps) == 0 {
			return nil, false
		}

		weights := make([]float64, len(gaps))
		for j, g := range gaps {
			extra := float64(g.length - 4*minLen)
			weights[j] = 1 + math.Pow(extra, gapWeightPow)
		}
		g := gaps[weightedIndex(p.rng, weights)]

		maxInsnOff := g.length/4 - minLen
		tgt := g.lo + 4*p.pickInsnOff(maxInsnOff)
		tgts = append(tgts, tgt)

		// Reserve minLen instructions on both sides of the pick so later
		// picks in the same call keep their distance.
		gaps = removeReserved(gaps, tgt-4*minLen, tgt+4*minLen, minLen)
	}

	return tgts, true
}

// PickBranchTarget picks a single branch destination. It is a wrapper around
// PickBranchTargets.
func (p *Program) PickBranchTarget(minLen int, tgtMin, tgtMax *int) (int, bool) {
	tgts, ok := p.PickBranchTargets(minLen, 1, tgtMin, tgtMax)
	if !ok {
		return 0, false
	}
	return tgts[0], true
}

// buildGapList collects the free ranges between, below and above the
// occupied ranges (committed sections plus the open one) that can hold a
// target, respecting the optional bounds.
func (p *Program) buildGapList(minLen int, tgtMin, tgtMax *int) []gap {
	type occupied struct {
		base, top int
	}

	occs := make([]occupied, 0, len(p.sections)+1)
	for _, sec := range p.sections {
		occs = append(occs, occupied{base: sec.base, top: sec.top()})
	}
	if p.cur != nil {
		occs = append(occs, occupied{
			base: p.curBase,
			top:  p.curBase + 4*len(p.cur.insns),
		})
		sort.Slice(occs, func(i, j int) bool { return occs[i].base < occs[j].base })
	}

	var gaps []gap
	gapVma := 0
	for _, o := range occs {
		// Skip gaps that lie completely below tgtMin or completely above
		// tgtMax. The test is deliberately asymmetric: strict against the
		// section base, inclusive against the gap start.
		if (tgtMin == nil || *tgtMin < o.base) && (tgtMax == nil || gapVma <= *tgtMax) {
			if g, ok := clampGap(gapVma, o.base, minLen, tgtMin, tgtMax); ok {
				gaps = append(gaps, g)
			}
		}
		gapVma = o.top
	}

	// The gap above all sections, up to the top of memory.
	if g, ok := clampGap(gapVma, p.imemSize, minLen, tgtMin, tgtMax); ok {
		gaps = append(gaps, g)
	}

	return gaps
}

// clampGap bounds the free range [gapVma, limit) against the optional
// tgtMin/tgtMax and the requirement to leave room for minLen instructions
// before limit. The second return value is false if nothing is left.
func clampGap(gapVma, limit, minLen int, tgtMin, tgtMax *int) (gap, bool) {
	gapLo := gapVma
	if tgtMin != nil && *tgtMin > gapLo {
		gapLo = alignUp(*tgtMin)
	}

	// gapHi is the highest address that still has room for minLen
	// instructions before limit.
	gapHi := limit - 4*minLen
	if tgtMax != nil && *tgtMax < gapHi {
		gapHi = alignDown(*tgtMax)
	}

	if gapLo > gapHi {
		return gap{}, false
	}
	return gap{lo: gapLo, length: gapHi - gapLo + 4*minLen}, true
}

// pickInsnOff chooses an instruction offset in [0, maxInsnOff], biased
// towards the two edges: the bottom and top 10% of the range each get
// edgeBias/2 of the probability mass, the middle 80% gets the rest.
func (p *Program) pickInsnOff(maxInsnOff int) int {
	type band struct {
		lo, hi int
	}
	bands := [3]band{
		{0, maxInsnOff / 10},
		{maxInsnOff / 10, maxInsnOff * 9 / 10},
		{maxInsnOff * 9 / 10, maxInsnOff},
	}

	b := bands[weightedIndex(p.rng, []float64{edgeBias / 2, 1 - edgeBias, edgeBias / 2})]
	return b.lo + int(0.5+p.rng.Float64()*float64(b.hi-b.lo))
}

// removeReserved cuts the byte range [lo, hi) out of every gap, splitting
// gaps where needed. Remainders too small to hold minLen instructions are
// dropped: they contain no valid start address.
func removeReserved(gaps []gap, lo, hi, minLen int) []gap {
	out := make([]gap, 0, len(gaps)+1)
	for _, g := range gaps {
		if leftTop := min(g.top(), lo); leftTop-g.lo >= 4*minLen {
			out = append(out, gap{lo: g.lo, length: leftTop - g.lo})
		}
		if rightLo := max(g.lo, hi); g.top()-rightLo >= 4*minLen {
			out = append(out, gap{lo: rightLo, length: g.top() - rightLo})
		}
	}
	return out
}

// weightedIndex picks an index with probability proportional to its weight,
// consuming exactly one draw from rng.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

func alignUp(addr int) int {
	return (addr + 3) &^ 3
}

func alignDown(addr int) int {
	return addr &^ 3
}
