package fid

import (
	"math/rand"
	"testing"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var bv BitVector
	const n = 10_000
	var want []bool
	for i := 0; i < n; i++ {
		b := rng.Float64() < 0.4
		bv.Push(b)
		want = append(want, b)
	}
	// Leave a non-empty staging tail.
	bv.PushBits(true, false, true, false, true)
	want = append(want, true, false, true, false, true)

	data, err := bv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var restored BitVector
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}

	if restored.Len() != bv.Len() {
		t.Fatalf("Len() after round trip = %d, want %d", restored.Len(), bv.Len())
	}
	for i, b := range want {
		if got := restored.Get(uint64(i)); got != b {
			t.Fatalf("Get(%d) after round trip = %v, want %v", i, got, b)
		}
	}
	for i := uint64(0); i <= restored.Len(); i += 37 {
		if got, wantRank := restored.Rank1(i), bv.Rank1(i); got != wantRank {
			t.Fatalf("Rank1(%d) after round trip = %d, want %d", i, got, wantRank)
		}
	}
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	var bv BitVector
	bv.PushBits(true, false, true, true, false)
	data, err := bv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	var restored BitVector
	if err := restored.UnmarshalBinary(data[:len(data)-4]); err == nil {
		t.Fatal("UnmarshalBinary(truncated) = nil error, want error")
	}
}

func TestUnmarshalRejectsCorruptedChecksum(t *testing.T) {
	var bv BitVector
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 2000; i++ {
		bv.Push(rng.Float64() < 0.5)
	}
	data, err := bv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	corrupted := make([]byte, len(data))
	copy(corrupted, data)
	corrupted[len(corrupted)/2] ^= 0xFF

	var restored BitVector
	if err := restored.UnmarshalBinary(corrupted); err == nil {
		t.Fatal("UnmarshalBinary(corrupted) = nil error, want checksum mismatch")
	}
}

func TestMarshalEmptyVector(t *testing.T) {
	var bv BitVector
	data, err := bv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	var restored BitVector
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if restored.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", restored.Len())
	}
}
