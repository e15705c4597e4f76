// Command fidctl drives construction and measurement of pkg/fid
// BitVectors from the command line: size reports compressed footprint
// across a density matrix, bench additionally times rank/select.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oisee/fid/pkg/bench"
)

// defaultScenarios mirrors the (n, p) matrix from the original
// benches/lib.rs and examples/size.rs: three densities at two scales.
var defaultScenarios = []bench.Trial{
	{N: 1_000_000, P: 0.99},
	{N: 1_000_000, P: 0.5},
	{N: 1_000_000, P: 0.01},
	{N: 100_000_000, P: 0.99},
	{N: 100_000_000, P: 0.5},
	{N: 100_000_000, P: 0.01},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fidctl",
		Short: "fidctl — build and measure Fully Indexable Dictionaries",
	}

	var seed int64
	var nStr string
	var pStr string
	var workers int
	var verbose bool

	sizeCmd := &cobra.Command{
		Use:   "size",
		Short: "Report compressed size across a density matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := resolveScenarios(nStr, pStr, seed)
			if err != nil {
				return err
			}
			fmt.Println("n: # of bits, p: density of ones")
			fmt.Println()
			for _, sc := range scenarios {
				res := bench.RunTrial(sc)
				fmt.Printf("n = %d, p = %g: %d bytes (%.4f bit / orig bit)\n",
					res.N, res.P, res.SizeBytes, res.BitsPerBit)
			}
			return nil
		},
	}
	sizeCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed")
	sizeCmd.Flags().StringVar(&nStr, "n", "", "Comma-separated bit counts (default: built-in matrix)")
	sizeCmd.Flags().StringVar(&pStr, "p", "", "Comma-separated densities (paired positionally with -n)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time construction, rank, and select across a density matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := resolveScenarios(nStr, pStr, seed)
			if err != nil {
				return err
			}
			wp := bench.NewWorkerPool(workers)
			wp.RunTrials(scenarios, verbose)

			fmt.Printf("\n%-12s %-6s %10s %8s %10s %12s %12s\n",
				"n", "p", "bytes", "bit/bit", "build", "ns/rank", "ns/select")
			for _, r := range wp.Results.Rows() {
				fmt.Printf("%-12d %-6g %10d %8.4f %10s %12.1f %12.1f\n",
					r.N, r.P, r.SizeBytes, r.BitsPerBit, r.BuildDuration.Round(1e6), r.RankNsPerOp, r.SelectNsPerOp)
			}
			return nil
		},
	}
	benchCmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed")
	benchCmd.Flags().StringVar(&nStr, "n", "", "Comma-separated bit counts (default: built-in matrix)")
	benchCmd.Flags().StringVar(&pStr, "p", "", "Comma-separated densities (paired positionally with -n)")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")
	benchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print progress while running")

	rootCmd.AddCommand(sizeCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveScenarios builds the trial matrix from --n/--p overrides, or
// falls back to defaultScenarios when neither is given.
func resolveScenarios(nStr, pStr string, seed int64) ([]bench.Trial, error) {
	if nStr == "" && pStr == "" {
		out := make([]bench.Trial, len(defaultScenarios))
		copy(out, defaultScenarios)
		for i := range out {
			out[i].Seed = seed
		}
		return out, nil
	}

	ns, err := parseUint64List(nStr)
	if err != nil {
		return nil, fmt.Errorf("--n: %w", err)
	}
	ps, err := parseFloatList(pStr)
	if err != nil {
		return nil, fmt.Errorf("--p: %w", err)
	}
	if len(ns) != len(ps) {
		return nil, fmt.Errorf("--n and --p must list the same number of values (%d vs %d)", len(ns), len(ps))
	}

	scenarios := make([]bench.Trial, len(ns))
	for i := range ns {
		scenarios[i] = bench.Trial{N: ns[i], P: ps[i], Seed: seed}
	}
	return scenarios, nil
}

func parseUint64List(s string) ([]uint64, error) {
	var out []uint64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bit count %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloatList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid density %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
