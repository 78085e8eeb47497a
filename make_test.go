package zugzwang_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kagenoshin/zugzwang"
	"github.com/kagenoshin/zugzwang/internal/fen"
)

// boardSnapshot captures everything a board layout exposes through the
// public Board interface, as a plain comparable/diffable struct — so
// go-cmp never needs to see any layout's unexported plane storage.
type boardSnapshot struct {
	Planes        [2][6]uint64
	Side          zugzwang.Color
	Rights        zugzwang.CastlingRights
	EnPassant     zugzwang.EnPassant
	HalfmoveClock uint16
	Fullmove      uint16
	Hash          uint64
}

func snapshot(b zugzwang.Board) boardSnapshot {
	var s boardSnapshot
	for c := zugzwang.White; c <= zugzwang.Black; c++ {
		for k := zugzwang.Pawn; k <= zugzwang.King; k++ {
			s.Planes[c][k] = b.Planes(c, k)
		}
	}
	s.Side = b.SideToMove()
	s.Rights = b.Rights()
	s.EnPassant = b.EnPassant()
	s.HalfmoveClock = b.HalfmoveClock()
	s.Fullmove = b.FullmoveNumber()
	s.Hash = b.Hash()
	return s
}

// TestMakeUnmakeSymmetry walks every legal move from a handful of
// positions one ply deep and asserts that MakeMove followed by
// UnmakeMove restores the position exactly — the universal invariant
// every board layout and move kind must satisfy.
func TestMakeUnmakeSymmetry(t *testing.T) {
	rules := zugzwang.ClassicCastlingRules()
	zt := zugzwang.NewFullZobristTables()
	provider := zugzwang.ObsDiffPanopticon{}

	positions := []string{
		fen.StartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	for _, fenStr := range positions {
		b, err := fen.Parse(fen.FullTotals, fenStr, rules, zt)
		if err != nil {
			t.Fatalf("parse %q: %v", fenStr, err)
		}

		var moves zugzwang.LegalMoveList
		zugzwang.GenerateLegalMoves(provider, b, b.SideToMove(), &moves)

		for i := 0; i < moves.Len(); i++ {
			mv := moves.At(i)
			before := snapshot(b)

			previewHash := zugzwang.HashProspectiveMove(b, mv.Move())
			pre := zugzwang.MakeMove(b, mv)

			if got := b.Hash(); got != previewHash {
				t.Errorf("%s: HashProspectiveMove disagreed with the hash MakeMove produced: got %#x, want %#x",
					fenStr, got, previewHash)
			}
			if err := zugzwang.SanityCheck(b); err != nil {
				t.Errorf("%s: after making %s%s: %v", fenStr, mv.Move().From, mv.Move().To, err)
			}

			zugzwang.UnmakeMove(b, mv, pre)
			after := snapshot(b)

			if diff := cmp.Diff(before, after); diff != "" {
				t.Errorf("%s: move %s%s was not cleanly undone (-before +after):\n%s",
					fenStr, mv.Move().From, mv.Move().To, diff)
			}
		}
	}
}

// TestMakeMoveAgreesAcrossLayouts drives the same move sequence through
// all three board layouts from the same starting FEN and checks they
// stay in lockstep — the representation a position is stored in must
// never change what moves are legal or what position results.
func TestMakeMoveAgreesAcrossLayouts(t *testing.T) {
	rules := zugzwang.ClassicCastlingRules()
	zt := zugzwang.NewFullZobristTables()
	provider := zugzwang.ObsDiffPanopticon{}
	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	layouts := []fen.Layout{fen.Compact, fen.Full, fen.FullTotals}
	boards := make([]zugzwang.MutableBoard, len(layouts))
	for i, layout := range layouts {
		b, err := fen.Parse(layout, fenStr, rules, zt)
		if err != nil {
			t.Fatalf("parse %q: %v", fenStr, err)
		}
		boards[i] = b
	}

	for ply := 0; ply < 4; ply++ {
		var reference zugzwang.LegalMoveList
		zugzwang.GenerateLegalMoves(provider, boards[0], boards[0].SideToMove(), &reference)
		if reference.Len() == 0 {
			break
		}
		mv := reference.At(0)

		var snaps []boardSnapshot
		for _, b := range boards {
			var moves zugzwang.LegalMoveList
			zugzwang.GenerateLegalMoves(provider, b, b.SideToMove(), &moves)
			if moves.Len() != reference.Len() {
				t.Fatalf("ply %d: move count diverged across layouts: %d vs %d", ply, moves.Len(), reference.Len())
			}
			zugzwang.MakeMove(b, mv)
			snaps = append(snaps, snapshot(b))
		}
		for i := 1; i < len(snaps); i++ {
			if diff := cmp.Diff(snaps[0], snaps[i]); diff != "" {
				t.Fatalf("ply %d: layout %d diverged from layout 0 (-want +got):\n%s", ply, i, diff)
			}
		}
	}
}
