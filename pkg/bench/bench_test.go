package bench

import "testing"

func TestRunTrialReportsCompressedSize(t *testing.T) {
	res := RunTrial(Trial{N: 50_000, P: 0.99, Seed: 1})
	if res.BitsPerBit >= 1.0 {
		t.Fatalf("BitsPerBit = %f, want < 1.0 for dense trial", res.BitsPerBit)
	}
	if res.SizeBytes <= 0 {
		t.Fatalf("SizeBytes = %d, want > 0", res.SizeBytes)
	}
}

func TestRunTrialZeroBits(t *testing.T) {
	res := RunTrial(Trial{N: 0, P: 0.5, Seed: 2})
	if res.BitsPerBit != 0 {
		t.Fatalf("BitsPerBit = %f, want 0 for empty trial", res.BitsPerBit)
	}
}

func TestWorkerPoolCollectsAllResults(t *testing.T) {
	trials := []Trial{
		{N: 1000, P: 0.01, Seed: 10},
		{N: 1000, P: 0.5, Seed: 11},
		{N: 1000, P: 0.99, Seed: 12},
		{N: 5000, P: 0.5, Seed: 13},
	}
	wp := NewWorkerPool(2)
	wp.RunTrials(trials, false)

	if wp.Results.Len() != len(trials) {
		t.Fatalf("Results.Len() = %d, want %d", wp.Results.Len(), len(trials))
	}
	rows := wp.Results.Rows()
	for i := 1; i < len(rows); i++ {
		if rows[i].N < rows[i-1].N {
			t.Fatalf("Rows() not sorted by n ascending at index %d", i)
		}
	}
}
