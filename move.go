// move.go defines the Move record, the PseudoLegal/LegalMove wrapper
// types that document which legality filter a Move has passed, and the
// fixed-capacity MoveList the generator fills.
//
// The teacher's types.go packs a move into a single uint16 (to, from,
// promotion, type bitfields) for cache density. SPEC_FULL keeps a move
// cheap to construct and compare but widens the packed fields back out
// into a small struct, since the make/unmake engine (make.go) needs the
// captured piece kind on the move itself to stay reversible without a
// second board lookup — the teacher's MakeMove takes (m Move, moved,
// captured Piece) as separate arguments for the same reason, just passed
// alongside the move instead of carried on it.

package zugzwang

// SpecialKind tags a move's non-default behavior: double pawn push (which
// sets an en passant target), en passant capture, one of the four
// promotion kinds, or one of the two castling directions.
type SpecialKind uint8

const (
	NoSpecial SpecialKind = iota
	DoublePawnPush
	EnPassantCapture
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	CastleEast // queenside, O-O-O
	CastleWest // kingside, O-O
)

// IsPromotion reports whether s is one of the four promotion kinds.
func (s SpecialKind) IsPromotion() bool {
	return s == PromoteKnight || s == PromoteBishop || s == PromoteRook || s == PromoteQueen
}

// PromotedKind returns the piece kind a promotion special resolves to.
// Only valid when IsPromotion() is true.
func (s SpecialKind) PromotedKind() PieceKind {
	switch s {
	case PromoteKnight:
		return Knight
	case PromoteBishop:
		return Bishop
	case PromoteRook:
		return Rook
	case PromoteQueen:
		return Queen
	default:
		return NoPiece
	}
}

// IsCastle reports whether s is one of the two castling directions.
func (s SpecialKind) IsCastle() bool { return s == CastleEast || s == CastleWest }

// Move is a single chess move. Capture is NoPiece when the move captures
// nothing (including en passant, whose captured pawn sits off the target
// square and is resolved structurally by the make/unmake engine rather
// than carried here).
type Move struct {
	From, To Square
	Piece    PieceKind
	Capture  PieceKind
	Special  SpecialKind
}

// IsCapture reports whether the move removes an enemy piece, either
// directly (m.Capture != NoPiece) or via en passant.
func (m Move) IsCapture() bool {
	return m.Capture != NoPiece || m.Special == EnPassantCapture
}

// PseudoLegal documents that the wrapped move obeys the piece's movement
// rules and the board's occupancy (friendly pieces not captured, sliders
// not jumping blockers) but has not yet been checked for leaving its own
// king in check. Only movegen.go's pseudo-legal generator constructs
// these; every other caller receives a LegalMove.
type PseudoLegal struct{ mv Move }

// NewPseudoLegal wraps m as pseudo-legal. Callers outside movegen.go
// must not call this directly — it exists for tests that build
// specific positions by hand.
func NewPseudoLegal(m Move) PseudoLegal { return PseudoLegal{m} }

// Move unwraps the underlying move.
func (p PseudoLegal) Move() Move { return p.mv }

// LegalMove documents that the wrapped move has passed the full legality
// filter (movegen.go's GenerateLegalMoves): it does not leave the moving
// side's own king in check. make.go's MakeMove only accepts this
// type, so a caller cannot apply a move to the real board without having
// gone through move generation (or explicitly attesting to legality via
// NewLegalMove, which a perft harness replaying a known-good move list
// needs to do without re-deriving it).
type LegalMove struct{ mv Move }

// NewLegalMove wraps m as legal on the caller's attestation. Used by test
// harnesses and the perft driver that already trust a move came from
// GenerateLegalMoves. The claim is taken on trust: nothing re-checks
// the move's legality when it is wrapped or made.
func NewLegalMove(m Move) LegalMove { return LegalMove{m} }

// Move unwraps the underlying move.
func (l LegalMove) Move() Move { return l.mv }

// maxMovesInPosition bounds the legal moves reachable from any legal
// chess position (the true maximum, from a constructed position, is 218).
const maxMovesInPosition = 218

// MoveList is a fixed-capacity, heap-allocation-free move buffer, mirroring
// the teacher's MoveList ([218]Move array + cursor) so move generation
// never allocates on the fast path.
type MoveList struct {
	moves [maxMovesInPosition]PseudoLegal
	n     int
}

// Push appends a pseudo-legal move. Panics if the list is already full,
// which would indicate a position with more legal moves than chess
// permits — i.e. a generator bug, not a reachable game state.
func (l *MoveList) Push(m PseudoLegal) {
	if l.n >= maxMovesInPosition {
		panic("movelist overflow: more than 218 pseudo-legal moves generated")
	}
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently held.
func (l *MoveList) Len() int { return l.n }

// At returns the move at index i.
func (l *MoveList) At(i int) PseudoLegal { return l.moves[i] }

// Slice returns the populated prefix of the backing array. The returned
// slice aliases the MoveList's storage and is only valid until the next
// Push or Reset.
func (l *MoveList) Slice() []PseudoLegal { return l.moves[:l.n] }

// Reset empties the list for reuse, avoiding a fresh allocation on the
// next ply of move generation.
func (l *MoveList) Reset() { l.n = 0 }

// LegalMoveList is MoveList's counterpart for the post-filter result of
// GenerateLegalMoves.
type LegalMoveList struct {
	moves [maxMovesInPosition]LegalMove
	n     int
}

func (l *LegalMoveList) Push(m LegalMove) {
	if l.n >= maxMovesInPosition {
		panic("movelist overflow: more than 218 legal moves generated")
	}
	l.moves[l.n] = m
	l.n++
}

func (l *LegalMoveList) Len() int            { return l.n }
func (l *LegalMoveList) At(i int) LegalMove  { return l.moves[i] }
func (l *LegalMoveList) Slice() []LegalMove  { return l.moves[:l.n] }
func (l *LegalMoveList) Reset()              { l.n = 0 }
