package bench

import (
	"sort"
	"sync"
)

// Results collects Result rows from concurrent trial runs.
type Results struct {
	mu   sync.Mutex
	rows []Result
}

// NewResults creates an empty Results table.
func NewResults() *Results {
	return &Results{}
}

// Add inserts a trial result.
func (rs *Results) Add(r Result) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.rows = append(rs.rows, r)
}

// Rows returns a copy of all results, sorted by n then p ascending.
func (rs *Results) Rows() []Result {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Result, len(rs.rows))
	copy(out, rs.rows)
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N < out[j].N
		}
		return out[i].P < out[j].P
	})
	return out
}

// Len returns the number of collected results.
func (rs *Results) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.rows)
}
