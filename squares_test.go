package zugzwang

import "testing"

func TestSquareFileRank(t *testing.T) {
	cases := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{A1, 0, 0, "a1"},
		{H1, 7, 0, "h1"},
		{A8, 0, 7, "a8"},
		{H8, 7, 7, "h8"},
		{E4, 4, 3, "e4"},
	}
	for _, c := range cases {
		if got := c.sq.File(); got != c.file {
			t.Errorf("%s.File() = %d, want %d", c.name, got, c.file)
		}
		if got := c.sq.Rank(); got != c.rank {
			t.Errorf("%s.Rank() = %d, want %d", c.name, got, c.rank)
		}
		if got := c.sq.String(); got != c.name {
			t.Errorf("%s.String() = %q, want %q", c.name, got, c.name)
		}
	}
}

func TestSquareMirrorRotate(t *testing.T) {
	if got := E1.MirrorNS(); got != E8 {
		t.Errorf("E1.MirrorNS() = %s, want e8", got)
	}
	if got := A1.MirrorEW(); got != H1 {
		t.Errorf("A1.MirrorEW() = %s, want h1", got)
	}
	if got := A1.Rotate180(); got != H8 {
		t.Errorf("A1.Rotate180() = %s, want h8", got)
	}
	for sq := Square(0); sq < 64; sq++ {
		if sq.MirrorNS().MirrorNS() != sq {
			t.Fatalf("MirrorNS is not its own inverse for %s", sq)
		}
		if sq.Rotate180().Rotate180() != sq {
			t.Fatalf("Rotate180 is not its own inverse for %s", sq)
		}
	}
}

func TestRankFileMask(t *testing.T) {
	if got := RankMask(E4); got != rank1Mask<<(3*8) {
		t.Errorf("RankMask(e4) = %#x, want %#x", got, rank1Mask<<(3*8))
	}
	if got := FileMask(E4); got != fileAMask<<4 {
		t.Errorf("FileMask(e4) = %#x, want %#x", got, fileAMask<<4)
	}
	for sq := Square(0); sq < 64; sq++ {
		if RankMask(sq)&sq.Bit() == 0 {
			t.Fatalf("RankMask(%s) does not contain its own square", sq)
		}
		if FileMask(sq)&sq.Bit() == 0 {
			t.Fatalf("FileMask(%s) does not contain its own square", sq)
		}
		if popCount(RankMask(sq)) != 8 {
			t.Fatalf("RankMask(%s) has %d bits, want 8", sq, popCount(RankMask(sq)))
		}
		if popCount(FileMask(sq)) != 8 {
			t.Fatalf("FileMask(%s) has %d bits, want 8", sq, popCount(FileMask(sq)))
		}
	}
}

func TestDiagAntiDiagMask(t *testing.T) {
	// a1-h8 is the main diagonal: 8 squares.
	for _, sq := range []Square{A1, D4, H8} {
		if got := DiagMask(sq); popCount(got) != 8 {
			t.Errorf("DiagMask(%s) has %d bits, want 8", sq, popCount(got))
		}
		if DiagMask(sq)&sq.Bit() == 0 {
			t.Errorf("DiagMask(%s) does not contain its own square", sq)
		}
	}
	// a8-h1 is the main antidiagonal: 8 squares.
	for _, sq := range []Square{A8, D5, H1} {
		if got := AntiDiagMask(sq); popCount(got) != 8 {
			t.Errorf("AntiDiagMask(%s) has %d bits, want 8", sq, popCount(got))
		}
		if AntiDiagMask(sq)&sq.Bit() == 0 {
			t.Errorf("AntiDiagMask(%s) does not contain its own square", sq)
		}
	}
	// A corner square's diagonal is a single square.
	if got := DiagMask(A8); popCount(got) != 1 {
		t.Errorf("DiagMask(a8) has %d bits, want 1", popCount(got))
	}
	if got := AntiDiagMask(H8); popCount(got) != 1 {
		t.Errorf("AntiDiagMask(h8) has %d bits, want 1", popCount(got))
	}
}
