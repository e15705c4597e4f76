// Package bench runs randomized construction and query benchmarks against
// pkg/fid.BitVector, mirroring the scenario matrix of the original Rust
// benches/lib.rs and examples/size.rs: vary the bit count n and the
// density p of set bits, measure in-memory footprint and per-operation
// rank/select latency.
package bench

import (
	"math/rand"
	"time"

	"github.com/oisee/fid/pkg/fid"
)

// trialOps is the number of rank/select calls timed per trial, matching
// the TRIALS constant the original benchmarks used.
const trialOps = 10_000

// Trial describes one (n, p) construction scenario: n bits pushed, each
// independently set with probability p.
type Trial struct {
	N    uint64
	P    float64
	Seed int64
}

// Result is the measured outcome of running a Trial.
type Result struct {
	Trial

	SizeBytes     int
	BitsPerBit    float64
	BuildDuration time.Duration
	RankNsPerOp   float64
	SelectNsPerOp float64
}

// RunTrial builds a BitVector for t and measures its footprint and
// rank/select latency. It is safe to call concurrently across distinct
// trials since each call owns its own BitVector and *rand.Rand.
func RunTrial(t Trial) Result {
	rng := rand.New(rand.NewSource(t.Seed))

	start := time.Now()
	var bv fid.BitVector
	ones := uint64(0)
	for i := uint64(0); i < t.N; i++ {
		b := rng.Float64() < t.P
		bv.Push(b)
		if b {
			ones++
		}
	}
	buildDuration := time.Since(start)

	size := bv.SizeBytes()
	bitsPerBit := 0.0
	if t.N > 0 {
		bitsPerBit = float64(size*8) / float64(t.N)
	}

	res := Result{
		Trial:         t,
		SizeBytes:     size,
		BitsPerBit:    bitsPerBit,
		BuildDuration: buildDuration,
	}

	if t.N > 0 {
		rankStart := time.Now()
		for i := 0; i < trialOps; i++ {
			bv.Rank1(uint64(rng.Int63n(int64(t.N) + 1)))
		}
		res.RankNsPerOp = float64(time.Since(rankStart).Nanoseconds()) / trialOps
	}

	if ones > 0 {
		selectStart := time.Now()
		for i := 0; i < trialOps; i++ {
			bv.Select1(uint64(rng.Int63n(int64(ones))))
		}
		res.SelectNsPerOp = float64(time.Since(selectStart).Nanoseconds()) / trialOps
	}

	return res
}
