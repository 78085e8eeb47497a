// movegen.go enumerates pseudo-legal moves piece by piece and filters
// them to legal moves via make.go's ProbeLegality scratch-apply, the same
// "copy-make" shape the teacher's GenLegalMoves uses, just reusing a
// single borrowed board (moveOnlyView) instead of copying the whole
// position per candidate.

package zugzwang

// GeneratePseudoLegal fills l with every pseudo-legal move available to
// side on board b: piece movement and occupancy rules obeyed, but not yet
// filtered for leaving the mover's own king in check.
func GeneratePseudoLegal(p AttackProvider, b Board, rules *CastlingRules, rights CastlingRights, side Color, l *MoveList) {
	l.Reset()
	genPawnMoves(p, b, side, l)
	genLeaperMoves(p, b, side, Knight, l)
	genSliderMoves(p, b, side, Bishop, l)
	genSliderMoves(p, b, side, Rook, l)
	genSliderMoves(p, b, side, Queen, l)
	genKingMoves(p, b, side, l)
	genCastleMoves(p, b, rules, rights, side, l)
}

// GenerateLegalMoves fills out with every legal move available to side,
// by generating every pseudo-legal move and discarding any that
// ProbeLegality reports leaves the mover's own king in check. b must be a
// MutableBoard because ProbeLegality borrows its storage for the
// scratch-apply probe (it's left unchanged by the time this returns).
func GenerateLegalMoves(p AttackProvider, b MutableBoard, side Color, out *LegalMoveList) {
	var pseudo MoveList
	GeneratePseudoLegal(p, b, b.CastlingRulesRef(), b.Rights(), side, &pseudo)

	out.Reset()
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.At(i).Move()
		if ProbeLegality(p, b, mv) {
			continue
		}
		out.Push(NewLegalMove(mv))
	}
}

// CountCheckers returns the number of side's opponent pieces currently
// attacking side's king. 0: not in check. 1: in check, blocks/captures of
// the checker are legal in addition to king moves. 2+: double check, only
// king moves can be legal.
func CountCheckers(p AttackProvider, b Board, side Color) int {
	kingBB := b.Planes(side, King)
	if kingBB == 0 {
		return 0
	}
	kingSq, _ := biterate(&kingBB)
	opp := side.Opposite()
	occ := b.OccupancyAll()

	count := popCount(p.PawnAttacks(side, kingSq) & b.Planes(opp, Pawn))
	count += popCount(p.KnightAttacks(kingSq) & b.Planes(opp, Knight))
	bishopsQueens := b.Planes(opp, Bishop) | b.Planes(opp, Queen)
	count += popCount(p.BishopAttacks(kingSq, occ) & bishopsQueens)
	rooksQueens := b.Planes(opp, Rook) | b.Planes(opp, Queen)
	count += popCount(p.RookAttacks(kingSq, occ) & rooksQueens)
	return count
}

// IsInCheck reports whether side's king is currently attacked. The
// core's named counterpart to original_source's
// is_in_check(&BoardState) -> bool: a boolean shorthand over
// CountCheckers for callers that don't care how many checkers there are.
func IsInCheck(p AttackProvider, b Board, side Color) bool {
	return CountCheckers(p, b, side) > 0
}

func pieceCaptureAt(b Board, side Color, sq Square) PieceKind {
	c, k, ok := b.PieceAt(sq)
	if !ok || c == side {
		return NoPiece
	}
	return k
}

func genLeaperMoves(p AttackProvider, b Board, side Color, kind PieceKind, l *MoveList) {
	own := b.Occupancy(side)
	for bb := b.Planes(side, kind); bb != 0; {
		from, _ := biterate(&bb)
		var targets uint64
		switch kind {
		case Knight:
			targets = p.KnightAttacks(from)
		case King:
			targets = p.KingAttacks(from)
		}
		targets &^= own
		for t := targets; t != 0; {
			to, _ := biterate(&t)
			l.Push(NewPseudoLegal(Move{From: from, To: to, Piece: kind, Capture: pieceCaptureAt(b, side, to)}))
		}
	}
}

func genKingMoves(p AttackProvider, b Board, side Color, l *MoveList) {
	genLeaperMoves(p, b, side, King, l)
}

func genSliderMoves(p AttackProvider, b Board, side Color, kind PieceKind, l *MoveList) {
	own := b.Occupancy(side)
	occ := b.OccupancyAll()
	for bb := b.Planes(side, kind); bb != 0; {
		from, _ := biterate(&bb)
		var targets uint64
		switch kind {
		case Bishop:
			targets = p.BishopAttacks(from, occ)
		case Rook:
			targets = p.RookAttacks(from, occ)
		case Queen:
			targets = p.QueenAttacks(from, occ)
		}
		targets &^= own
		for t := targets; t != 0; {
			to, _ := biterate(&t)
			l.Push(NewPseudoLegal(Move{From: from, To: to, Piece: kind, Capture: pieceCaptureAt(b, side, to)}))
		}
	}
}

var promotionKinds = [4]SpecialKind{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

func pushPawnMove(l *MoveList, from, to Square, capture PieceKind, promotionRank bool, special SpecialKind) {
	if promotionRank {
		for _, pk := range promotionKinds {
			l.Push(NewPseudoLegal(Move{From: from, To: to, Piece: Pawn, Capture: capture, Special: pk}))
		}
		return
	}
	l.Push(NewPseudoLegal(Move{From: from, To: to, Piece: Pawn, Capture: capture, Special: special}))
}

func genPawnMoves(p AttackProvider, b Board, side Color, l *MoveList) {
	own := b.Occupancy(side)
	enemy := b.Occupancy(side.Opposite())
	empty := ^(own | enemy)
	promoRank := rank8Mask
	startRank := rank2Mask
	dir := 8
	if side == Black {
		promoRank = rank1Mask
		startRank = rank7Mask
		dir = -8
	}

	for bb := b.Planes(side, Pawn); bb != 0; {
		from, _ := biterate(&bb)

		one := Square(int(from) + dir)
		if one.Bit()&empty != 0 {
			pushPawnMove(l, from, one, NoPiece, one.Bit()&promoRank != 0, NoSpecial)
			if from.Bit()&startRank != 0 {
				two := Square(int(from) + 2*dir)
				if two.Bit()&empty != 0 {
					pushPawnMove(l, from, two, NoPiece, false, DoublePawnPush)
				}
			}
		}

		for t := p.PawnAttacks(side, from) & enemy; t != 0; {
			to, _ := biterate(&t)
			pushPawnMove(l, from, to, pieceCaptureAt(b, side, to), to.Bit()&promoRank != 0, NoSpecial)
		}

		if ep := b.EnPassant(); ep.Valid {
			if p.PawnAttacks(side, from)&ep.Square.Bit() != 0 {
				l.Push(NewPseudoLegal(Move{From: from, To: ep.Square, Piece: Pawn, Capture: NoPiece, Special: EnPassantCapture}))
			}
		}
	}
}

func genCastleMoves(p AttackProvider, b Board, rules *CastlingRules, rights CastlingRights, side Color, l *MoveList) {
	occ := b.OccupancyAll()
	for _, side2 := range [2]CastlingSide{East, West} {
		if !rules.CanCastle(p, b, side, side2, rights, occ) {
			continue
		}
		l.Push(NewPseudoLegal(Move{
			From:    rules.KingStart[side],
			To:      rules.KingEnd[side][side2],
			Piece:   King,
			Capture: NoPiece,
			Special: castleSpecial(side2),
		}))
	}
}

func castleSpecial(s CastlingSide) SpecialKind {
	if s == East {
		return CastleEast
	}
	return CastleWest
}
