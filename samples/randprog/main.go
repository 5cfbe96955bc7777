// Sample generator: places random instruction sequences from the demo ISA
// into a fresh instruction memory and dumps the resulting assembly.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/sarchlab/rig/isa"
	"github.com/sarchlab/rig/program"
	"github.com/tebeka/atexit"
)

var (
	size   = flag.Int("size", 4096, "instruction memory size in bytes")
	seed   = flag.Int64("seed", 0, "random seed")
	count  = flag.Int("count", 12, "number of instruction sequences to place")
	debug  = flag.Bool("debug", false, "enable debug logging")
	layout = flag.Bool("layout", false, "print the section layout table to stderr")
)

// minSeqLen is the smallest instruction sequence we ask for space for.
const minSeqLen = 4

func main() {
	flag.Parse()

	if *debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rng := rand.New(rand.NewSource(*seed))
	prog := program.Builder{}.
		WithImemSize(*size).
		WithRand(rng).
		Build()
	cat := isa.Demo()

	// The entry sequence always sits at address 0.
	prog.AddInsns(0, randomSequence(cat, rng, minSeqLen))

	for i := 0; i < *count; i++ {
		tgt, ok := prog.PickBranchTarget(minSeqLen, nil, nil)
		if !ok {
			slog.Warn("OutOfSpace", "placed", i, "requested", *count)
			break
		}

		n := 1 + rng.Intn(minSeqLen)
		prog.AddInsns(tgt, randomSequence(cat, rng, n))
	}
	prog.CloseSection()

	if *layout {
		fmt.Fprintln(os.Stderr, prog.LayoutTable())
	}

	if err := prog.DumpAsm(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// randomSequence builds n placed instructions with random operand values.
func randomSequence(cat *isa.Catalog, rng *rand.Rand, n int) []*program.ProgInsn {
	insns := make([]*program.ProgInsn, n)
	for i := range insns {
		insns[i] = randomInsn(cat, rng)
	}
	return insns
}

func randomInsn(cat *isa.Catalog, rng *rand.Rand) *program.ProgInsn {
	reg := func() uint32 { return uint32(rng.Intn(32)) }

	switch rng.Intn(5) {
	case 0:
		addi, _ := cat.Lookup("addi")
		return program.NewProgInsn(addi,
			[]uint32{reg(), reg(), uint32(rng.Intn(1 << 12))}, nil)
	case 1:
		add, _ := cat.Lookup("add")
		return program.NewProgInsn(add, []uint32{reg(), reg(), reg()}, nil)
	case 2:
		sub, _ := cat.Lookup("sub")
		return program.NewProgInsn(sub, []uint32{reg(), reg(), reg()}, nil)
	case 3:
		lw, _ := cat.Lookup("lw")
		addr := uint32(rng.Intn(256)) * 4
		return program.NewProgInsn(lw, []uint32{reg(), addr, 2},
			&program.MemAccess{MemType: "dmem", Addr: addr})
	default:
		sw, _ := cat.Lookup("sw")
		addr := uint32(rng.Intn(256)) * 4
		return program.NewProgInsn(sw, []uint32{reg(), addr, 2},
			&program.MemAccess{MemType: "dmem", Addr: addr})
	}
}
