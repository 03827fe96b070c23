// Command logiksimfuzz drives random sequences of editing operations
// against a fresh circuit.CircuitData with the message validator
// enabled, printing a summary table of per-operation run and failure
// counts. Grounded on the teacher's sample command style
// (samples/relu/main.go: build a device/driver, run it, atexit.Exit)
// adapted to this module's domain: build a CircuitData, run a random
// workload against it, flush a report on exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/google/pprof/profile"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/logiksim/circuitcore/circuit"
	"github.com/logiksim/circuitcore/layout"
	"github.com/logiksim/circuitcore/layoutinfo"
	"github.com/logiksim/circuitcore/vocabulary"
)

var (
	seed        = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	iterations  = flag.Int("iterations", 2000, "number of random operations to attempt")
	profilePath = flag.String("pprof", "", "if set, capture a CPU profile of the run to this path and print its top functions at exit, using google/pprof/profile")
)

type stats struct {
	attempted   int
	succeeded   int
	byOperation map[string]int
	byFailure   map[string]int
}

func newStats() *stats {
	return &stats{byOperation: make(map[string]int), byFailure: make(map[string]int)}
}

func (s *stats) record(op string, err error) {
	s.attempted++
	s.byOperation[op]++
	if err == nil {
		s.succeeded++
		return
	}
	s.byFailure[op]++
}

func (s *stats) render() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"operation", "attempts", "failures"})
	for op, n := range s.byOperation {
		t.AppendRow(table.Row{op, n, s.byFailure[op]})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"total", s.attempted, s.attempted - s.succeeded})
	return t.Render()
}

func main() {
	flag.Parse()

	if *profilePath != "" {
		f, err := os.Create(*profilePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logiksimfuzz: cannot create profile file: %v\n", err)
		} else if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "logiksimfuzz: cannot start CPU profile: %v\n", err)
		} else {
			path := *profilePath
			atexit.Register(func() {
				pprof.StopCPUProfile()
				f.Close()
				printTopFunctions(path)
			})
		}
	}

	s := newStats()
	atexit.Register(func() {
		fmt.Println(s.render())
	})

	rng := rand.New(rand.NewSource(*seed))
	fmt.Fprintf(os.Stderr, "logiksimfuzz: seed=%d iterations=%d\n", *seed, *iterations)

	ctx := context.Background()
	c := circuit.New(circuit.WithValidator())

	run(ctx, c, rng, s, *iterations)

	atexit.Exit(0)
}

// printTopFunctions loads the CPU profile just written at path with
// google/pprof/profile and prints its ten hottest functions by flat
// sample count, grounded on the teacher's verify.WriteReport style of
// a plain tabulated summary over raw measurement data.
func printTopFunctions(path string) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logiksimfuzz: cannot reopen profile: %v\n", err)
		return
	}
	defer f.Close()

	prof, err := profile.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logiksimfuzz: cannot parse profile: %v\n", err)
		return
	}

	type sample struct {
		name string
		flat int64
	}
	totals := make(map[string]int64)
	for _, s := range prof.Sample {
		if len(s.Value) == 0 || len(s.Location) == 0 {
			continue
		}
		loc := s.Location[0]
		for _, line := range loc.Line {
			if line.Function != nil {
				totals[line.Function.Name] += s.Value[0]
			}
		}
	}

	samples := make([]sample, 0, len(totals))
	for name, flat := range totals {
		samples = append(samples, sample{name: name, flat: flat})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].flat > samples[j].flat })
	if len(samples) > 10 {
		samples = samples[:10]
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"function", "flat samples"})
	for _, s := range samples {
		t.AppendRow(table.Row{s.name, s.flat})
	}
	fmt.Printf("CPU profile written to %s\n%s\n", path, t.Render())
}

// run attempts a random sequence of editing operations, each one a
// single-operation history group, against c.
func run(ctx context.Context, c *circuit.CircuitData, rng *rand.Rand, s *stats, iterations int) {
	var placed []vocabulary.LogicItemID

	gateTypes := []layoutinfo.LogicItemType{layoutinfo.TypeAnd, layoutinfo.TypeOr, layoutinfo.TypeXor}

	for i := 0; i < iterations; i++ {
		switch rng.Intn(3) {
		case 0:
			def := layout.LogicItemDefinition{
				Type:        gateTypes[rng.Intn(len(gateTypes))],
				InputCount:  2,
				OutputCount: 1,
				Orientation: vocabulary.OrientationRight,
			}
			pos := vocabulary.Grid{X: int16(rng.Intn(200)), Y: int16(rng.Intn(200))}
			id, err := c.AddLogicItem(ctx, def, pos, layout.ModeInsertOrDiscard)
			s.record("add_logic_item", err)
			if err == nil {
				placed = append(placed, id)
			}

		case 1:
			if len(placed) == 0 {
				continue
			}
			idx := rng.Intn(len(placed))
			err := c.DeleteLogicItem(ctx, placed[idx])
			s.record("delete_logic_item", err)
			if err == nil {
				placed = append(placed[:idx], placed[idx+1:]...)
			}

		case 2:
			c.Undo(ctx)
			s.record("undo", nil)
		}
		c.BeginGroup()
	}
}
