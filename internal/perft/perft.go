// Package perft implements the node-counting and move-classification
// traversal used to validate move generation against known-good counts,
// grounded on the teacher's internal/perft.go (a single recursive
// make/unmake walk) but restructured as a library function set so both
// cmd/perft and the package's own tests can drive it directly, against
// any of the three board layouts and either attack provider.
package perft

import "github.com/kagenoshin/zugzwang"

// Nodes returns the number of leaf positions reachable from b in exactly
// depth plies. b is mutated and restored in place via MakeMove/UnmakeMove;
// it is left unchanged by the time Nodes returns.
func Nodes(p zugzwang.AttackProvider, b zugzwang.MutableBoard, depth int) int {
	if depth == 0 {
		return 1
	}

	var moves zugzwang.LegalMoveList
	zugzwang.GenerateLegalMoves(p, b, b.SideToMove(), &moves)

	if depth == 1 {
		return moves.Len()
	}

	nodes := 0
	for i := 0; i < moves.Len(); i++ {
		mv := moves.At(i)
		pre := zugzwang.MakeMove(b, mv)
		nodes += Nodes(p, b, depth-1)
		zugzwang.UnmakeMove(b, mv, pre)
	}
	return nodes
}

// Result is a perft node count broken down by the kind of move that led
// to each leaf, mirroring the teacher's internal/perft.go result struct
// (nodes/captures/epCaptures/castles/promotions/checks/doubleChecks),
// minus checkmates: detecting mate requires a legal-move probe this
// package already pays for as a side effect of the recursion, so it is
// left to the caller rather than folded in here.
type Result struct {
	Nodes             int
	Captures          int
	EnPassantCaptures int
	Castles           int
	Promotions        int
	Checks            int
	DoubleChecks      int
}

// Breakdown runs the same traversal as Nodes but classifies the last move
// on the path to each leaf (the move made one ply above it), giving the
// fuller diagnostic a perft
// divide usually wants when Nodes alone disagrees with a reference count.
func Breakdown(p zugzwang.AttackProvider, b zugzwang.MutableBoard, depth int) Result {
	var r Result
	breakdown(p, b, depth, &r)
	return r
}

func breakdown(p zugzwang.AttackProvider, b zugzwang.MutableBoard, depth int, r *Result) {
	if depth == 0 {
		r.Nodes++
		return
	}

	side := b.SideToMove()
	var moves zugzwang.LegalMoveList
	zugzwang.GenerateLegalMoves(p, b, side, &moves)

	for i := 0; i < moves.Len(); i++ {
		lm := moves.At(i)
		mv := lm.Move()

		if depth == 1 {
			if mv.IsCapture() {
				r.Captures++
			}
			if mv.Special == zugzwang.EnPassantCapture {
				r.EnPassantCaptures++
			}
			if mv.Special.IsCastle() {
				r.Castles++
			}
			if mv.Special.IsPromotion() {
				r.Promotions++
			}
		}

		pre := zugzwang.MakeMove(b, lm)

		if depth == 1 {
			checkers := zugzwang.CountCheckers(p, b, side.Opposite())
			if checkers > 0 {
				r.Checks++
			}
			if checkers > 1 {
				r.DoubleChecks++
			}
		}

		breakdown(p, b, depth-1, r)
		zugzwang.UnmakeMove(b, lm, pre)
	}
}

// Divide returns, for every legal move at the root, the subtree node
// count perft(depth-1) reaches after making it — the standard
// divide-and-compare tool for isolating which root move's subtree
// disagrees with a reference engine.
func Divide(p zugzwang.AttackProvider, b zugzwang.MutableBoard, depth int) map[string]int {
	out := make(map[string]int)
	if depth == 0 {
		return out
	}

	var moves zugzwang.LegalMoveList
	zugzwang.GenerateLegalMoves(p, b, b.SideToMove(), &moves)

	for i := 0; i < moves.Len(); i++ {
		mv := moves.At(i)
		pre := zugzwang.MakeMove(b, mv)
		out[moveUCI(mv.Move())] = Nodes(p, b, depth-1)
		zugzwang.UnmakeMove(b, mv, pre)
	}
	return out
}

func moveUCI(m zugzwang.Move) string {
	s := m.From.String() + m.To.String()
	switch m.Special {
	case zugzwang.PromoteQueen:
		s += "q"
	case zugzwang.PromoteRook:
		s += "r"
	case zugzwang.PromoteBishop:
		s += "b"
	case zugzwang.PromoteKnight:
		s += "n"
	}
	return s
}
