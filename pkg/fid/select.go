package fid

import (
	"math/bits"
	"sort"

	"github.com/oisee/fid/pkg/combin"
)

// Select returns the 0-based position of the (r+1)-th bit equal to b.
func (bv *BitVector) Select(b bool, r uint64) uint64 {
	if b {
		return bv.Select1(r)
	}
	return bv.Select0(r)
}

// Select1 returns the position of the (r+1)-th one bit.
// Precondition: r < number of one bits.
func (bv *BitVector) Select1(r uint64) uint64 {
	if r >= bv.ones {
		panic("fid: select1 ordinal out of range")
	}

	stagingOnes := uint64(bits.OnesCount64(bv.stagingWord))
	committedOnes := bv.ones - stagingOnes
	if r < committedOnes {
		return bv.select1Committed(r)
	}

	local := selectInWord(bv.stagingWord, true, int(r-committedOnes), int(bv.stagingLen))
	return bv.committedBits() + uint64(local)
}

// select1Committed answers select1 for an ordinal within the flushed
// prefix.
func (bv *BitVector) select1Committed(r uint64) uint64 {
	numLarge := len(bv.popLarge)
	l := sort.Search(numLarge, func(i int) bool {
		return bv.popLarge[i] > r
	}) - 1
	r1 := r - bv.popLarge[l]

	lo := uint64(l) * largeBlockFactor
	hi := lo + largeBlockFactor
	if hi > bv.numSmall {
		hi = bv.numSmall
	}
	count := int(hi - lo)
	idx := sort.Search(count, func(i int) bool {
		return bv.popSmall.GetWord(lo+uint64(i), popSmallWidth) > r1
	})
	s := lo + uint64(idx) - 1
	r2 := r1 - bv.popSmall.GetWord(s, popSmallWidth)

	k, code := bv.blockAt(s)
	q := combin.PartialSelect(k, code, int(r2), true)
	return s*smallBlockBits + uint64(q)
}

// Select0 returns the position of the (r+1)-th zero bit.
// Precondition: r < number of zero bits.
func (bv *BitVector) Select0(r uint64) uint64 {
	zeros := bv.n - bv.ones
	if r >= zeros {
		panic("fid: select0 ordinal out of range")
	}

	stagingOnes := uint64(bits.OnesCount64(bv.stagingWord))
	stagingZeros := uint64(bv.stagingLen) - stagingOnes
	committedZeros := zeros - stagingZeros
	if r < committedZeros {
		return bv.select0Committed(r)
	}

	local := selectInWord(bv.stagingWord, false, int(r-committedZeros), int(bv.stagingLen))
	return bv.committedBits() + uint64(local)
}

// select0Committed answers select0 for an ordinal within the flushed
// prefix. There is no separate zero directory: the zero count at any
// boundary is the boundary's bit index minus its (stored) one count.
func (bv *BitVector) select0Committed(r uint64) uint64 {
	numLarge := len(bv.popLarge)
	zerosBeforeLarge := func(l int) uint64 {
		return uint64(l)*largeBlockBits - bv.popLarge[l]
	}
	l := sort.Search(numLarge, func(i int) bool {
		return zerosBeforeLarge(i) > r
	}) - 1
	r1 := r - zerosBeforeLarge(l)

	lo := uint64(l) * largeBlockFactor
	hi := lo + largeBlockFactor
	if hi > bv.numSmall {
		hi = bv.numSmall
	}
	count := int(hi - lo)
	zerosBeforeSmall := func(s uint64) uint64 {
		return (s-lo)*smallBlockBits - bv.popSmall.GetWord(s, popSmallWidth)
	}
	idx := sort.Search(count, func(i int) bool {
		return zerosBeforeSmall(lo+uint64(i)) > r1
	})
	s := lo + uint64(idx) - 1
	r2 := r1 - zerosBeforeSmall(s)

	k, code := bv.blockAt(s)
	q := combin.PartialSelect(k, code, int(r2), false)
	return s*smallBlockBits + uint64(q)
}

// selectInWord finds the block-local position of the (r+1)-th bit equal
// to bit among the top limit bits (in block order) of w.
func selectInWord(w uint64, bit bool, r int, limit int) int {
	count := -1
	for idx := 0; idx < limit; idx++ {
		j := smallBlockBits - 1 - idx
		v := (w>>uint(j))&1 == 1
		if v == bit {
			count++
			if count == r {
				return idx
			}
		}
	}
	panic("fid: select ordinal not found in staging tail")
}
