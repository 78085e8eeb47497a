// make.go implements the make/unmake engine as two small, composable
// halves: applyPlanes (the piece-bitboard mutation, entirely XOR-based
// and therefore its own inverse) and applyMeta (the halfmove clock,
// castling rights, en passant, hash, and ply bookkeeping, which is not
// self-inverting and is instead undone by restoring a saved Transients
// snapshot). Every entry point below — the real move, the legality
// probe, and the hash-only preview — is built from these same two halves
// run against a different MutableBoard, per original_source's
// src/bitboard/moving.rs make_legal_move/unmake_legal_move pattern.

package zugzwang

// enPassantCapturedSquare returns the square the captured pawn actually
// sits on for an en passant move: the target's file, the mover's rank
// (the captured pawn never occupies m.To itself).
func enPassantCapturedSquare(m Move) Square {
	return Square(m.To.File() + m.From.Rank()*8)
}

// applyPlanes performs the move's piece-bitboard mutation only. Every
// branch is expressed as XOR, so calling applyPlanes twice in a row with
// the same (color, m, rules) restores the planes to their original state
// — this is what lets the legality probe and the unmake path share one
// implementation with make.
func applyPlanes(b MutableBoard, color Color, m Move, rules *CastlingRules) {
	switch {
	case m.Special.IsCastle():
		side := East
		if m.Special == CastleWest {
			side = West
		}
		b.XorPlane(color, King, rules.KingStart[color].Bit()|rules.KingEnd[color][side].Bit())
		b.XorPlane(color, Rook, rules.RookStart[color][side].Bit()|rules.RookEnd[color][side].Bit())

	case m.Special == EnPassantCapture:
		b.XorPlane(color, Pawn, m.From.Bit()|m.To.Bit())
		b.XorPlane(color.Opposite(), Pawn, enPassantCapturedSquare(m).Bit())

	case m.Special.IsPromotion():
		b.XorPlane(color, Pawn, m.From.Bit())
		b.XorPlane(color, m.Special.PromotedKind(), m.To.Bit())
		if m.Capture != NoPiece {
			b.XorPlane(color.Opposite(), m.Capture, m.To.Bit())
		}

	default: // NoSpecial, DoublePawnPush
		b.XorPlane(color, m.Piece, m.From.Bit()|m.To.Bit())
		if m.Capture != NoPiece {
			b.XorPlane(color.Opposite(), m.Capture, m.To.Bit())
		}
	}
}

// applyMeta performs every non-plane bookkeeping change a move causes:
// the halfmove clock, castling-rights loss, en passant target, the
// incremental hash update for all of the above plus the moved/captured
// pieces and the side-to-move toggle, and the ply advance. It reads the
// board's pre-move Transients itself, so callers never pass one in;
// MakeMove's caller gets the pre-move Transients back from MakeMove
// instead, to hand to UnmakeMove later.
func applyMeta(b MutableBoard, color Color, m Move) Transients {
	pre := b.Transients()
	rules := b.CastlingRulesRef()
	zt := b.Zobrist()

	if m.Piece == Pawn || m.IsCapture() {
		b.SetHalfmoveClock(0)
	} else {
		b.SetHalfmoveClock(pre.HalfmoveClock + 1)
	}

	if pre.EnPassant.Valid {
		b.XorHash(zt.EnPassantFile(true, pre.EnPassant.Square.File()))
	}
	var newEP EnPassant

	newRights := pre.Rights
	if m.Piece == King {
		newRights[color][East] = false
		newRights[color][West] = false
	}
	if m.Piece == Rook {
		if m.From == rules.RookStart[color][East] {
			newRights[color][East] = false
		}
		if m.From == rules.RookStart[color][West] {
			newRights[color][West] = false
		}
	}
	if m.Capture == Rook {
		opp := color.Opposite()
		if m.To == rules.RookStart[opp][East] {
			newRights[opp][East] = false
		}
		if m.To == rules.RookStart[opp][West] {
			newRights[opp][West] = false
		}
	}
	if newRights != pre.Rights {
		b.XorHash(zt.Rights(pre.Rights))
		b.XorHash(zt.Rights(newRights))
	}
	b.SetRights(newRights)

	switch {
	case m.Special.IsCastle():
		side := East
		if m.Special == CastleWest {
			side = West
		}
		kingFrom, kingTo := rules.KingStart[color], rules.KingEnd[color][side]
		rookFrom, rookTo := rules.RookStart[color][side], rules.RookEnd[color][side]
		b.XorHash(zt.PieceSquare(color, King, kingFrom) ^ zt.PieceSquare(color, King, kingTo))
		b.XorHash(zt.PieceSquare(color, Rook, rookFrom) ^ zt.PieceSquare(color, Rook, rookTo))

	case m.Special == EnPassantCapture:
		b.XorHash(zt.PieceSquare(color, Pawn, m.From) ^ zt.PieceSquare(color, Pawn, m.To))
		capSq := enPassantCapturedSquare(m)
		b.XorHash(zt.PieceSquare(color.Opposite(), Pawn, capSq))

	case m.Special.IsPromotion():
		promoted := m.Special.PromotedKind()
		b.XorHash(zt.PieceSquare(color, Pawn, m.From) ^ zt.PieceSquare(color, promoted, m.To))
		if m.Capture != NoPiece {
			b.XorHash(zt.PieceSquare(color.Opposite(), m.Capture, m.To))
		}

	default:
		b.XorHash(zt.PieceSquare(color, m.Piece, m.From) ^ zt.PieceSquare(color, m.Piece, m.To))
		if m.Capture != NoPiece {
			b.XorHash(zt.PieceSquare(color.Opposite(), m.Capture, m.To))
		}
		if m.Special == DoublePawnPush {
			newEP = EnPassant{Valid: true, Square: Square((int(m.From) + int(m.To)) / 2)}
		}
	}

	if newEP.Valid {
		b.XorHash(zt.EnPassantFile(true, newEP.Square.File()))
	}
	b.SetEnPassant(newEP)

	b.XorHash(zt.BlackToMove())
	b.NextPly()

	return pre
}

// MakeMove applies a legal move to the real board and returns the
// pre-move Transients, which the caller must pass to UnmakeMove to
// reverse it.
func MakeMove(b MutableBoard, m LegalMove) Transients {
	color := b.SideToMove()
	mv := m.Move()
	applyPlanes(b, color, mv, b.CastlingRulesRef())
	return applyMeta(b, color, mv)
}

// UnmakeMove reverses a move previously applied with MakeMove. pre must
// be the Transients MakeMove returned for this exact move.
func UnmakeMove(b MutableBoard, m LegalMove, pre Transients) {
	b.PrevPly()
	mv := m.Move()
	color := b.SideToMove()
	applyPlanes(b, color, mv, b.CastlingRulesRef())
	b.SetTransients(pre)
}

// ProbeLegality reports whether making m leaves the moving side's own
// king in check, mutating the real board's planes only for the duration
// of the check (via moveOnlyView, whose hash/metadata setters are
// no-ops) and then reverting them — the "scratch apply" movegen.go's
// legality filter uses instead of cloning the whole board per candidate
// move.
func ProbeLegality(p AttackProvider, b MutableBoard, m Move) (leavesKingInCheck bool) {
	color := b.SideToMove()
	rules := b.CastlingRulesRef()
	view := &moveOnlyView{real: b}

	applyPlanes(view, color, m, rules)
	kingBB := b.Planes(color, King)
	var kingSq Square
	if kingBB != 0 {
		kingSq, _ = biterate(&kingBB)
	}
	inCheck := IsSquareAttacked(p, b, color.Opposite(), kingSq)
	applyPlanes(view, color, m, rules)

	return inCheck
}

// HashProspectiveMove returns the hash the board would have after move m,
// without mutating b or allocating any plane storage: applyMeta runs
// against a hashOnlyView seeded from b's current metadata, so every hash
// XOR applies exactly as it would on the real board, but nothing else
// does.
func HashProspectiveMove(b Board, m Move) uint64 {
	color := b.SideToMove()
	view := newHashOnlyView(color, b.Rights(), b.EnPassant(), b.HalfmoveClock(), b.Hash(), b.CastlingRulesRef(), b.Zobrist())
	applyMeta(view, color, m)
	return view.Hash()
}
