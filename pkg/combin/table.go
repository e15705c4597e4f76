// Package combin provides the build-time binomial coefficient table and
// per-popcount code widths used by the enumerative (combinatorial) codec,
// plus the codec itself.
package combin

import "math/bits"

// BlockWidth is the width, in bits, of one small block (S in spec terms).
const BlockWidth = 64

// MaxCodeBits bounds the width of a compressed code. A popcount whose
// natural code width exceeds this is stored uncompressed instead.
const MaxCodeBits = 48

// Uncompressed is the code-width sentinel meaning "store the 64-bit
// pattern verbatim" rather than as an enumerative code.
const Uncompressed = 64

// binomial[n][k] = C(n,k) for 0 <= k <= n <= BlockWidth. Computed once in
// init via Pascal's rule and never recomputed at query time.
var binomial [BlockWidth + 1][BlockWidth + 1]uint64

// codeWidth[k] = ceil(log2(C(BlockWidth,k))) for 0 < k < BlockWidth,
// clamped to Uncompressed when that exceeds MaxCodeBits. codeWidth[0]
// and codeWidth[BlockWidth] are 0 (a block of all-zeros or all-ones
// needs no code at all).
var codeWidth [BlockWidth + 1]uint8

func init() {
	for n := 0; n <= BlockWidth; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1] + binomial[n-1][k]
		}
	}

	for k := 1; k < BlockWidth; k++ {
		size := bits.Len64(binomial[BlockWidth][k] - 1)
		if size <= MaxCodeBits {
			codeWidth[k] = uint8(size)
		} else {
			codeWidth[k] = Uncompressed
		}
	}
}

// Binomial returns C(n,k), or 0 when k > n. Both must be in [0, BlockWidth].
func Binomial(n, k int) uint64 {
	return binomial[n][k]
}

// CodeWidth returns the number of bits needed to store the enumerative
// code for a block with popcount k, or Uncompressed (64) when the
// natural width exceeds MaxCodeBits.
func CodeWidth(k uint8) uint8 {
	return codeWidth[k]
}
