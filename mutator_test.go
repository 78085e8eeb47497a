package zugzwang

import "testing"

func TestMoveOnlyViewForwardsPlanesButNoOpsMetadata(t *testing.T) {
	real := NewFullBoard(ClassicCastlingRules(), NewFullZobristTables())
	real.XorPlane(White, Pawn, E2.Bit())
	realHashBefore := real.Hash()
	realRightsBefore := real.Rights()

	view := &moveOnlyView{real: real}
	view.XorPlane(White, Pawn, E2.Bit()|E4.Bit())

	if real.Planes(White, Pawn) != E4.Bit() {
		t.Fatal("moveOnlyView.XorPlane should mutate the real board's planes")
	}

	view.SetHash(0xDEADBEEF)
	view.XorHash(0x1)
	view.SetRights(allRights())
	view.SetEnPassant(EnPassant{Valid: true, Square: E3})
	view.SetHalfmoveClock(99)
	view.NextPly()

	if real.Hash() != realHashBefore {
		t.Fatal("moveOnlyView's hash setters must be no-ops on the real board")
	}
	if real.Rights() != realRightsBefore {
		t.Fatal("moveOnlyView's SetRights must be a no-op on the real board")
	}
	if real.SideToMove() != White {
		t.Fatal("moveOnlyView's NextPly must be a no-op on the real board")
	}

	// Applying the same XorPlane mask again reverts the planes, the
	// invariant make.go's ProbeLegality leans on.
	view.XorPlane(White, Pawn, E2.Bit()|E4.Bit())
	if real.Planes(White, Pawn) != E2.Bit() {
		t.Fatal("re-applying the same XorPlane mask should revert the plane")
	}
}

func TestHashOnlyViewTracksNoPlanes(t *testing.T) {
	rules := ClassicCastlingRules()
	zt := NewFullZobristTables()
	view := newHashOnlyView(White, CastlingRights{}, EnPassant{}, 0, 0x1234, rules, zt)

	if view.Planes(White, Pawn) != 0 {
		t.Fatal("hashOnlyView should report no planes")
	}
	if view.OccupancyAll() != 0 {
		t.Fatal("hashOnlyView should report no occupancy")
	}
	if _, _, ok := view.PieceAt(E4); ok {
		t.Fatal("hashOnlyView.PieceAt should always report no piece")
	}
	view.XorPlane(White, Pawn, E4.Bit()) // must not panic, must stay a no-op
	if view.Planes(White, Pawn) != 0 {
		t.Fatal("hashOnlyView.XorPlane should be a no-op")
	}

	if view.Hash() != 0x1234 {
		t.Fatalf("hashOnlyView.Hash() = %#x, want %#x", view.Hash(), 0x1234)
	}
	view.XorHash(0xFF)
	if view.Hash() != 0x1234^0xFF {
		t.Fatal("hashOnlyView.XorHash should toggle the tracked hash")
	}
	if view.Zobrist() != zt {
		t.Fatal("hashOnlyView must carry the zobrist tables it was constructed with")
	}
}

func TestHashOnlyViewMatchesApplyMetaOnRealBoard(t *testing.T) {
	rules := ClassicCastlingRules()
	zt := NewFullZobristTables()

	real := NewFullTotalsBoard(rules, zt)
	real.XorPlane(White, Pawn, E2.Bit())
	real.SetHash(Rehash(real))

	mv := Move{From: E2, To: E4, Piece: Pawn, Capture: NoPiece, Special: DoublePawnPush}

	preview := HashProspectiveMove(real, mv)
	MakeMove(real, NewLegalMove(mv))

	if real.Hash() != preview {
		t.Fatalf("HashProspectiveMove = %#x, but MakeMove produced %#x", preview, real.Hash())
	}
}
