package fid

import (
	"math/rand"
	"testing"
)

var _ FID = (*BitVector)(nil)

func TestSelectByRankMatchesDirectorySelect(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	var bv BitVector
	const n = 3000
	for i := 0; i < n; i++ {
		bv.Push(rng.Float64() < 0.37)
	}

	ones := bv.Rank1(bv.Len())
	for r := uint64(0); r < ones; r += 7 {
		want := bv.Select1(r)
		if got := SelectByRank(&bv, true, r); got != want {
			t.Fatalf("SelectByRank(true,%d) = %d, want %d", r, got, want)
		}
	}

	zeros := bv.Len() - ones
	for r := uint64(0); r < zeros; r += 7 {
		want := bv.Select0(r)
		if got := SelectByRank(&bv, false, r); got != want {
			t.Fatalf("SelectByRank(false,%d) = %d, want %d", r, got, want)
		}
	}
}
