// Package fid implements a compressed, append-only Fully Indexable
// Dictionary: BitVector stores an arbitrarily long bit sequence as a
// two-level directory (large blocks of small blocks) over an
// enumeratively-coded payload, answering rank in (amortized) constant
// time and select by binary search over the directories, without ever
// materializing the uncompressed sequence.
//
// Construction is sequential (Push); once built, queries are read-only
// and safe for concurrent use by multiple goroutines, since no query
// path mutates state.
package fid

import (
	"math/bits"

	"github.com/oisee/fid/pkg/bitpack"
	"github.com/oisee/fid/pkg/combin"
)

const (
	// smallBlockBits is S: the width of one small block.
	smallBlockBits = 64
	// largeBlockFactor is K: small blocks per large block.
	largeBlockFactor = 64
	// largeBlockBits is L = S*K.
	largeBlockBits = smallBlockBits * largeBlockFactor

	// popSmallWidth/ptrSmallWidth hold values in [0, (K-1)*S], which for
	// K=S=64 tops out at 4032 — 12 bits suffice.
	popSmallWidth = 12
	ptrSmallWidth = 12
	classWidth    = 7
)

// BitVector is an append-only compressed bit sequence with a rank/select
// index. The zero value is ready to use.
type BitVector struct {
	n    uint64 // logical length
	ones uint64 // total set bits pushed, including the staging tail

	popLarge []uint64 // cumulative ones before large block l
	ptrLarge []uint64 // bit offset into codes where large block l begins

	popSmall bitpack.Array // 12-bit words: ones since the enclosing large block, before small block s
	ptrSmall bitpack.Array // 12-bit words: bit offset of small block s, relative to its large block
	classes  bitpack.Array // 7-bit words: popcount of small block s
	codes    bitpack.Array // variable-width enumerative codes, concatenated

	codesLen uint64 // logical bit length written into codes so far
	numSmall uint64 // number of committed (flushed) small blocks

	stagingWord uint64 // open tail small block
	stagingLen  uint8  // bits already pushed into stagingWord
}

// NewBitVector returns an empty BitVector. The zero value of BitVector
// is also ready to use; NewBitVector exists for symmetry with the
// FID/BitVector constructors other implementations of this interface
// would provide.
func NewBitVector() *BitVector {
	return &BitVector{}
}

// Len returns the number of bits pushed so far.
func (bv *BitVector) Len() uint64 {
	return bv.n
}

// IsEmpty reports whether no bits have been pushed.
func (bv *BitVector) IsEmpty() bool {
	return bv.n == 0
}

// Push appends a single bit.
func (bv *BitVector) Push(b bool) {
	if b {
		bv.stagingWord |= uint64(1) << (smallBlockBits - 1 - bv.stagingLen)
		bv.ones++
	}
	bv.stagingLen++
	bv.n++

	if bv.stagingLen == smallBlockBits {
		bv.flushBlock(bv.stagingWord)
		bv.stagingWord = 0
		bv.stagingLen = 0
	}
}

// PushBits appends bits in order (a convenience over repeated Push).
func (bv *BitVector) PushBits(bs ...bool) {
	for _, b := range bs {
		bv.Push(b)
	}
}

// flushBlock commits a filled small block into the directories and
// payload stream.
func (bv *BitVector) flushBlock(w uint64) {
	s := bv.numSmall
	l := s / largeBlockFactor
	r := s % largeBlockFactor

	k, c := combin.Encode(w)

	if r == 0 {
		bv.popLarge = append(bv.popLarge, bv.ones-uint64(k))
		bv.ptrLarge = append(bv.ptrLarge, bv.codesLen)
	}

	popBase := bv.popLarge[l]
	ptrBase := bv.ptrLarge[l]

	bv.popSmall.SetWord(s, popSmallWidth, bv.ones-uint64(k)-popBase)
	bv.ptrSmall.SetWord(s, ptrSmallWidth, bv.codesLen-ptrBase)
	bv.classes.SetWord(s, classWidth, uint64(k))

	width := int(combin.CodeWidth(k))
	bv.codes.SetSlice(bv.codesLen, width, c)
	bv.codesLen += uint64(width)

	bv.numSmall++
}

// committedBits returns how many bits have been flushed into the
// directories, as opposed to sitting in the staging tail.
func (bv *BitVector) committedBits() uint64 {
	return bv.numSmall * smallBlockBits
}

// blockAt loads the class and code for small block s.
func (bv *BitVector) blockAt(s uint64) (k uint8, code uint64) {
	l := s / largeBlockFactor
	k = uint8(bv.classes.GetWord(s, classWidth))
	width := int(combin.CodeWidth(k))
	ptr := bv.ptrLarge[l] + bv.ptrSmall.GetWord(s, ptrSmallWidth)
	code = bv.codes.GetSlice(ptr, width)
	return k, code
}

// SizeBytes returns the in-memory footprint of the structure.
func (bv *BitVector) SizeBytes() int {
	size := len(bv.popLarge)*8 + len(bv.ptrLarge)*8
	size += bv.popSmall.SizeBytes() + bv.ptrSmall.SizeBytes()
	size += bv.classes.SizeBytes() + bv.codes.SizeBytes()
	size += 8 + 8 + 8 + 8 + 1 // n, ones, codesLen, numSmall, stagingLen (stagingWord folded below)
	size += 8                 // stagingWord
	return size
}

func popcountMasked(w uint64, topBits int) int {
	if topBits == 0 {
		return 0
	}
	return bits.OnesCount64(w >> uint(smallBlockBits-topBits))
}
