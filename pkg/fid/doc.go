// Package fid provides a compressed Fully Indexable Dictionary (FID)
// over an append-only bit sequence.
//
// # Overview
//
// BitVector stores bits as a two-level directory — large blocks of
// small blocks — over a payload that enumeratively codes each 64-bit
// small block as a (popcount, combinatorial-rank) pair. Rank answers in
// O(1) amortized time via directory lookup plus an in-block partial
// decode; select answers in O(log(n/4096) + 64) via directory binary
// search plus an in-block partial scan.
//
// # When to Use BitVector
//
// BitVector is suited to:
//   - Large, append-only bitmaps that need rank/select, not just
//     membership (succinct set representations, wavelet-tree leaves,
//     FM-index building blocks).
//   - Workloads with a build phase followed by a read-mostly phase.
//
// # When NOT to Use BitVector
//
// BitVector is not suitable for:
//   - Bitmaps that need deletion or in-place mutation after commit —
//     rebuild from scratch instead.
//   - Tiny bitmaps (a handful of words) where a plain uint64 slice and
//     linear scan is simpler and not meaningfully slower.
//
// # Basic Usage
//
//	var bv fid.BitVector
//	for _, b := range bits {
//	    bv.Push(b)
//	}
//	r := bv.Rank1(1000)
//	pos := bv.Select1(41)
//
// # Performance Characteristics
//
// Space is close to the empirical entropy of the sequence: each small
// block costs ceil(log2(C(64,k))) bits for its popcount k, capped at 48
// bits (above that, the block is stored uncompressed), plus roughly
// 33 bits of directory overhead per block (12-bit pop and pointer
// entries, a 7-bit class, and about 2 bits of large-block directory).
package fid
