// board_full.go is the straightforward BoardState layout: one bitboard
// per (color, kind) pair, 12 planes total, the same shape the teacher's
// Position.Bitboards [15]uint64 array uses (the teacher folds in 3 extra
// per-color occupancy planes it keeps precomputed; this layout instead
// computes occupancy on demand — see board_fulltotals.go for the cached
// variant).

package zugzwang

// FullBoard is the 12-plane BoardState: one bitboard per color and piece
// kind, occupancy derived by OR-ing the six planes of a color together.
type FullBoard struct {
	meta
	planes [2][6]uint64
}

// NewFullBoard returns an empty FullBoard (no pieces placed) ready for a
// caller to populate via PlacePiece and Rehash.
func NewFullBoard(rules *CastlingRules, zt ZobristTables) *FullBoard {
	return &FullBoard{meta: newMeta(rules, zt)}
}

// PlacePiece sets a single piece on sq, XOR-ing it into the relevant
// plane. It's XorPlane narrowed to one square, the shape callers that
// build up a position square by square (StartPosition, internal/fen)
// actually want.
func (b *FullBoard) PlacePiece(c Color, k PieceKind, sq Square) { b.XorPlane(c, k, sq.Bit()) }

func (b *FullBoard) Planes(c Color, k PieceKind) uint64 { return b.planes[c][k] }

func (b *FullBoard) Occupancy(c Color) uint64 {
	p := &b.planes[c]
	return p[Pawn] | p[Knight] | p[Bishop] | p[Rook] | p[Queen] | p[King]
}

func (b *FullBoard) OccupancyAll() uint64 { return b.Occupancy(White) | b.Occupancy(Black) }

func (b *FullBoard) PieceAt(sq Square) (Color, PieceKind, bool) {
	bit := sq.Bit()
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			if b.planes[c][k]&bit != 0 {
				return c, k, true
			}
		}
	}
	return White, NoPiece, false
}

func (b *FullBoard) XorPlane(c Color, k PieceKind, mask uint64) { b.planes[c][k] ^= mask }

// Clone returns an independent copy of the board, used by tests that want
// to compare make/unmake against a from-scratch rebuild rather than an
// in-place probe.
func (b *FullBoard) Clone() *FullBoard {
	cp := *b
	return &cp
}

// CloneAndMake clones the board and plays m on the clone, leaving the
// receiver untouched. The core's named counterpart to original_source's
// clone_and_make(&BoardState, LegalMove) -> BoardState; GenerateLegalMoves
// itself prefers the cheaper scratch-apply probe in make.go, but a caller
// building a search tree wants an independent position to keep.
func (b *FullBoard) CloneAndMake(m LegalMove) (*FullBoard, Transients) {
	cp := b.Clone()
	pre := MakeMove(cp, m)
	return cp, pre
}
