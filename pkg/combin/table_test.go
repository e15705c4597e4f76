package combin

import "testing"

func TestBinomialEdgeCases(t *testing.T) {
	if Binomial(64, 0) != 1 {
		t.Errorf("C(64,0) = %d, want 1", Binomial(64, 0))
	}
	if Binomial(64, 64) != 1 {
		t.Errorf("C(64,64) = %d, want 1", Binomial(64, 64))
	}
	if Binomial(64, 32) != 1832624140942590534 {
		t.Errorf("C(64,32) = %d, want 1832624140942590534", Binomial(64, 32))
	}
}

func TestCodeWidthZeroAndFull(t *testing.T) {
	if CodeWidth(0) != 0 {
		t.Errorf("CodeWidth(0) = %d, want 0", CodeWidth(0))
	}
	if CodeWidth(64) != 0 {
		t.Errorf("CodeWidth(64) = %d, want 0", CodeWidth(64))
	}
}

func TestCodeWidthUncompressedAroundBalance(t *testing.T) {
	// C(64,32) needs 61 bits, far past MaxCodeBits=48, so k=32 must fall
	// back to the uncompressed 64-bit representation.
	if CodeWidth(32) != Uncompressed {
		t.Errorf("CodeWidth(32) = %d, want %d (uncompressed)", CodeWidth(32), Uncompressed)
	}
}

func TestCodeWidthSmallPopcountIsCompressed(t *testing.T) {
	// C(64,1) = 64, needs 6 bits: comfortably compressed.
	if w := CodeWidth(1); w == 0 || w >= Uncompressed {
		t.Errorf("CodeWidth(1) = %d, want a small compressed width", w)
	}
}
