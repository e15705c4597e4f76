package fid

// FID is a Fully Indexable Dictionary: a bit sequence supporting rank
// and select in (amortized) constant time. It is expressed as a small
// capability set rather than a base type — any indexable bit sequence
// can satisfy it, and SelectByRank below shows select can always be
// derived from rank alone, for implementations that don't want to carry
// their own directory.
type FID interface {
	// Len returns the number of bits in the sequence.
	Len() uint64
	// Get returns the bit at position i. Precondition: i < Len().
	Get(i uint64) bool
	// Rank returns the count of bits equal to b in the prefix [0, i).
	// Precondition: i <= Len().
	Rank(b bool, i uint64) uint64
	Rank0(i uint64) uint64
	Rank1(i uint64) uint64
	// Select returns the 0-based position of the (r+1)-th bit equal to
	// b. Precondition: r < count of bits equal to b.
	Select(b bool, r uint64) uint64
	Select0(r uint64) uint64
	Select1(r uint64) uint64
}

// SelectByRank implements select generically from rank alone, by binary
// search: the smallest i such that rank_b(i+1) > r is the (r+1)-th bit
// equal to b. This mirrors the default `select` method on the original
// FID trait this package's design descends from (see
// original_source/src/fid.rs) — any FID implementer gets a working,
// if not constant-time, select for free.
//
// This is not used by BitVector's own Select/Select0/Select1, which
// maintain directories for a tighter bound; it exists as a fallback for
// simpler FID implementations and as a cross-check oracle in tests.
func SelectByRank(f FID, b bool, r uint64) uint64 {
	lo, hi := uint64(0), f.Len()
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if f.Rank(b, mid) > r {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}
