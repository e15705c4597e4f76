package fid

import "github.com/oisee/fid/pkg/combin"

// Rank returns the count of bits equal to b in the prefix [0, i).
func (bv *BitVector) Rank(b bool, i uint64) uint64 {
	if b {
		return bv.Rank1(i)
	}
	return bv.Rank0(i)
}

// Rank0 returns the count of zero bits in the prefix [0, i).
func (bv *BitVector) Rank0(i uint64) uint64 {
	return i - bv.Rank1(i)
}

// Rank1 returns the count of one bits in the prefix [0, i).
func (bv *BitVector) Rank1(i uint64) uint64 {
	if i > bv.n {
		panic("fid: rank index out of range")
	}
	if i == 0 {
		return 0
	}

	committed := bv.committedBits()
	if i > committed {
		extra := i - committed
		return bv.rankCommitted(committed) + uint64(popcountMasked(bv.stagingWord, int(extra)))
	}
	return bv.rankCommitted(i)
}

// rankCommitted answers rank1 for an index within the flushed prefix.
func (bv *BitVector) rankCommitted(i uint64) uint64 {
	if i == 0 {
		return 0
	}

	s := (i - 1) / smallBlockBits
	l := s / largeBlockFactor
	p := int(i - s*smallBlockBits) // 1..64

	base := bv.popLarge[l] + bv.popSmall.GetWord(s, popSmallWidth)
	k, code := bv.blockAt(s)

	if p == smallBlockBits {
		return base + uint64(k)
	}
	return base + uint64(combin.PartialRank(k, code, p))
}

// Get returns the bit at position i. Precondition: i < Len().
func (bv *BitVector) Get(i uint64) bool {
	if i >= bv.n {
		panic("fid: get index out of range")
	}
	return bv.Rank1(i+1) > bv.Rank1(i)
}
