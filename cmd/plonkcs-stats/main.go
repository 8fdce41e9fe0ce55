// Command plonkcs-stats builds a synthetic constraint system and reports its
// shape: constraint count, gate count, and circuit digest. With -cpuprofile
// it wraps the build in a CPU profile and prints the hottest functions via
// google/pprof's profile parser, mirroring the profiling entry points gnark
// itself exposes around compiler work.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/google/pprof/profile"

	"github.com/BaoNinh2808/plonk-cs/constraint/gatevector"
	"github.com/BaoNinh2808/plonk-cs/field"
	"github.com/BaoNinh2808/plonk-cs/internal/logger"
	"github.com/BaoNinh2808/plonk-cs/system"
	"github.com/BaoNinh2808/plonk-cs/variable"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	fs := flag.NewFlagSet("plonkcs-stats", flag.ContinueOnError)
	size := fs.Int("size", 1000, "number of Equal+R1CS constraint pairs to build")
	cpuprofile := fs.String("cpuprofile", "", "write a CPU profile to this path and summarize it")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *size <= 0 {
		fmt.Fprintln(os.Stderr, "plonkcs-stats: -size must be positive")
		return 2
	}

	log := logger.Logger()

	var prof *os.File
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Error().Err(err).Str("path", *cpuprofile).Msg("create cpu profile")
			return 1
		}
		prof = f
		if err := pprof.StartCPUProfile(prof); err != nil {
			log.Error().Err(err).Msg("start cpu profile")
			return 1
		}
	}

	start := time.Now()
	s, sink := buildSampleCircuit(*size)
	elapsed := time.Since(start)

	if prof != nil {
		pprof.StopCPUProfile()
		if err := prof.Close(); err != nil {
			log.Error().Err(err).Msg("close cpu profile")
			return 1
		}
		if err := summarizeProfile(*cpuprofile); err != nil {
			log.Error().Err(err).Msg("summarize cpu profile")
			return 1
		}
	}

	digest := s.Digest()
	fmt.Printf("constraints:  %d\n", s.NumConstraints())
	fmt.Printf("gates:        %d\n", len(sink.Gates))
	fmt.Printf("digest:       %x\n", digest)
	fmt.Printf("build time:   %s\n", elapsed)
	return 0
}

// buildSampleCircuit wires -size chained Equal and R1CS constraints over
// fresh external variables, so the reported gate count grows linearly and
// predictably with -size.
func buildSampleCircuit(size int) (*system.System, *gatevector.Slice) {
	s := system.New()
	nextID := uint32(1)
	alloc := func() variable.Expr {
		v := variable.Ext(nextID)
		nextID++
		return v
	}

	for i := 0; i < size; i++ {
		a, b, c := alloc(), alloc(), alloc()
		_ = s.AddConstraint(system.R1CSConstraint{A: a, B: b, C: c})
		_ = s.AddConstraint(system.EqualConstraint{A: c, B: variable.Scale(field.One(), c)})
	}

	s.SetPublicInputSize(uint32(nextID - 1))
	sink := &gatevector.Slice{}
	s.FinalizeAndEmit(sink)
	return s, sink
}

// summarizeProfile loads the profile just captured and prints the top five
// sampled functions by flat CPU time, using google/pprof's own profile
// representation rather than re-deriving it from runtime/pprof's raw output.
func summarizeProfile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := profile.Parse(f)
	if err != nil {
		return err
	}

	type sample struct {
		name string
		flat int64
	}
	totals := make(map[string]int64)
	for _, s := range p.Sample {
		if len(s.Value) == 0 || len(s.Location) == 0 {
			continue
		}
		loc := s.Location[0]
		if len(loc.Line) == 0 {
			continue
		}
		totals[loc.Line[0].Function.Name] += s.Value[0]
	}

	samples := make([]sample, 0, len(totals))
	for name, flat := range totals {
		samples = append(samples, sample{name, flat})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].flat > samples[j].flat })

	fmt.Println("top functions by sample count:")
	for i, s := range samples {
		if i >= 5 {
			break
		}
		fmt.Printf("  %8d  %s\n", s.flat, s.name)
	}
	return nil
}
