package zugzwang

import "testing"

// newBoardsUnderTest returns one instance of every BoardState layout,
// all freshly constructed, so the suite below exercises the shared
// Board/MutableBoard contract against each in turn. All three must
// agree, since movegen.go, make.go, and sanity.go are written only
// against the interfaces.
func newBoardsUnderTest() map[string]MutableBoard {
	rules := ClassicCastlingRules()
	zt := NewFullZobristTables()
	return map[string]MutableBoard{
		"compact":    NewCompactBoard(rules, zt),
		"full":       NewFullBoard(rules, zt),
		"fulltotals": NewFullTotalsBoard(rules, zt),
	}
}

func TestBoardLayoutsAgreeOnXorPlaneAndOccupancy(t *testing.T) {
	for name, b := range newBoardsUnderTest() {
		t.Run(name, func(t *testing.T) {
			b.XorPlane(White, Pawn, D2.Bit()|E2.Bit())
			b.XorPlane(Black, Knight, B8.Bit())

			if got := b.Planes(White, Pawn); got != D2.Bit()|E2.Bit() {
				t.Fatalf("Planes(White, Pawn) = %#x, want %#x", got, D2.Bit()|E2.Bit())
			}
			if got := b.Occupancy(White); got != D2.Bit()|E2.Bit() {
				t.Fatalf("Occupancy(White) = %#x, want %#x", got, D2.Bit()|E2.Bit())
			}
			if got := b.Occupancy(Black); got != B8.Bit() {
				t.Fatalf("Occupancy(Black) = %#x, want %#x", got, B8.Bit())
			}
			if got := b.OccupancyAll(); got != D2.Bit()|E2.Bit()|B8.Bit() {
				t.Fatalf("OccupancyAll() = %#x, want %#x", got, D2.Bit()|E2.Bit()|B8.Bit())
			}

			c, k, ok := b.PieceAt(D2)
			if !ok || c != White || k != Pawn {
				t.Fatalf("PieceAt(d2) = (%s, %s, %v), want (white, pawn, true)", c, k, ok)
			}
			if _, _, ok := b.PieceAt(D3); ok {
				t.Fatal("PieceAt(d3) should report no piece")
			}

			// XOR is its own inverse: toggling the same mask again clears it.
			b.XorPlane(White, Pawn, D2.Bit()|E2.Bit())
			if b.Occupancy(White) != 0 {
				t.Fatal("re-XORing the same mask should clear the plane")
			}
		})
	}
}

func TestBoardMetaDefaults(t *testing.T) {
	for name, b := range newBoardsUnderTest() {
		t.Run(name, func(t *testing.T) {
			if b.SideToMove() != White {
				t.Fatal("a fresh board should default to White to move")
			}
			if b.FullmoveNumber() != 1 {
				t.Fatalf("a fresh board should default to fullmove 1, got %d", b.FullmoveNumber())
			}
			if b.Rights().Any() {
				t.Fatal("a fresh board should have no castling rights set")
			}
			if b.EnPassant().Valid {
				t.Fatal("a fresh board should have no en passant target")
			}
		})
	}
}

func TestNextPlyPrevPlyRoundTrip(t *testing.T) {
	for name, b := range newBoardsUnderTest() {
		t.Run(name, func(t *testing.T) {
			before := b.Transients()
			beforeSide, beforeFull := b.SideToMove(), b.FullmoveNumber()

			b.NextPly() // White -> Black, fullmove unchanged
			if b.SideToMove() != Black || b.FullmoveNumber() != beforeFull {
				t.Fatalf("after White's NextPly: side=%s fullmove=%d", b.SideToMove(), b.FullmoveNumber())
			}
			b.NextPly() // Black -> White, fullmove increments
			if b.SideToMove() != White || b.FullmoveNumber() != beforeFull+1 {
				t.Fatalf("after Black's NextPly: side=%s fullmove=%d", b.SideToMove(), b.FullmoveNumber())
			}

			b.PrevPly()
			b.PrevPly()
			if b.SideToMove() != beforeSide || b.FullmoveNumber() != beforeFull {
				t.Fatal("two PrevPly calls should exactly undo two NextPly calls")
			}
			if b.Transients() != before {
				t.Fatal("Transients should be unaffected by NextPly/PrevPly round trip")
			}
		})
	}
}

func TestTransientsSnapshotRestore(t *testing.T) {
	for name, b := range newBoardsUnderTest() {
		t.Run(name, func(t *testing.T) {
			pre := b.Transients()

			b.SetHalfmoveClock(7)
			b.SetEnPassant(EnPassant{Valid: true, Square: D3})
			b.SetRights(allRights())
			b.SetHash(0xDEADBEEF)

			b.SetTransients(pre)

			if got := b.Transients(); got != pre {
				t.Fatalf("SetTransients(pre) did not restore the snapshot: got %+v, want %+v", got, pre)
			}
		})
	}
}

func TestFullBoardClone(t *testing.T) {
	b := NewFullBoard(ClassicCastlingRules(), NewFullZobristTables())
	b.XorPlane(White, Queen, D1.Bit())
	clone := b.Clone()

	clone.XorPlane(White, Queen, D1.Bit()|D5.Bit())
	if b.Planes(White, Queen) != D1.Bit() {
		t.Fatal("mutating a clone should not affect the original")
	}
	if clone.Planes(White, Queen) != D5.Bit() {
		t.Fatal("clone's own mutation did not take effect")
	}
}

func TestStartPositionMatchesAcrossLayouts(t *testing.T) {
	for name, b := range newBoardsUnderTest() {
		t.Run(name, func(t *testing.T) {
			StartPosition(b)

			if b.SideToMove() != White {
				t.Fatal("StartPosition should leave White to move")
			}
			if !allRights().Any() || b.Rights() != allRights() {
				t.Fatalf("StartPosition should grant every castling right, got %+v", b.Rights())
			}
			if b.EnPassant().Valid {
				t.Fatal("StartPosition should set no en passant target")
			}
			if got := b.Planes(White, Pawn); got != rank2Mask {
				t.Fatalf("white pawns = %#x, want %#x", got, rank2Mask)
			}
			if got := b.Planes(Black, Pawn); got != rank7Mask {
				t.Fatalf("black pawns = %#x, want %#x", got, rank7Mask)
			}
			c, k, ok := b.PieceAt(E1)
			if !ok || c != White || k != King {
				t.Fatalf("PieceAt(e1) = (%s, %s, %v), want (white, king, true)", c, k, ok)
			}
			c, k, ok = b.PieceAt(D8)
			if !ok || c != Black || k != Queen {
				t.Fatalf("PieceAt(d8) = (%s, %s, %v), want (black, queen, true)", c, k, ok)
			}
			if got := popCount(b.OccupancyAll()); got != 32 {
				t.Fatalf("starting position should have 32 pieces, got %d", got)
			}

			if err := SanityCheck(b); err != nil {
				t.Fatalf("SanityCheck(StartPosition) = %v", err)
			}
			if got := Rehash(b); got != b.Hash() {
				t.Fatalf("StartPosition's hash = %#x, Rehash disagrees with %#x", b.Hash(), got)
			}
		})
	}
}

func TestCloneAndMakeLeavesReceiverUntouched(t *testing.T) {
	b := NewFullBoard(ClassicCastlingRules(), NewFullZobristTables())
	StartPosition(b)

	mv := NewLegalMove(Move{From: E2, To: E4, Piece: Pawn, Capture: NoPiece, Special: DoublePawnPush})
	clone, _ := b.CloneAndMake(mv)

	if b.Planes(White, Pawn) != rank2Mask {
		t.Fatal("CloneAndMake must not mutate the receiver's planes")
	}
	if clone.Planes(White, Pawn) == rank2Mask {
		t.Fatal("the clone should reflect the played move")
	}
	if clone.Planes(White, Pawn)&E4.Bit() == 0 {
		t.Fatal("the clone's pawn should have landed on e4")
	}
	if clone.SideToMove() != Black {
		t.Fatal("CloneAndMake's clone should have advanced the side to move")
	}
}
