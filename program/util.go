package program

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

const LevelTrace slog.Level = slog.LevelInfo + 1

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LayoutTable renders the committed and open sections, and the free gaps
// between them, as a table for debugging.
func (p *Program) LayoutTable() string {
	type occupied struct {
		base, top int
		kind      string
	}

	occs := make([]occupied, 0, len(p.sections)+1)
	for _, sec := range p.sections {
		occs = append(occs, occupied{base: sec.base, top: sec.top(), kind: "section"})
	}
	if p.cur != nil {
		occs = append(occs, occupied{
			base: p.curBase,
			top:  p.curBase + 4*len(p.cur.insns),
			kind: "open",
		})
		sort.Slice(occs, func(i, j int) bool { return occs[i].base < occs[j].base })
	}

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Program layout (%d bytes)", p.imemSize))
	t.AppendHeader(table.Row{"#", "Range", "Kind", "Insns"})

	idx := 0
	prevTop := 0
	appendGap := func(lo, hi int) {
		if lo >= hi {
			return
		}
		t.AppendRow(table.Row{"", rangeStr(lo, hi), "gap", (hi - lo) / 4})
	}
	for _, o := range occs {
		appendGap(prevTop, o.base)
		t.AppendRow(table.Row{idx, rangeStr(o.base, o.top), o.kind, (o.top - o.base) / 4})
		idx++
		prevTop = o.top
	}
	appendGap(prevTop, p.imemSize)

	return t.Render()
}

func rangeStr(lo, hi int) string {
	return fmt.Sprintf("[%#x, %#x)", lo, hi)
}
