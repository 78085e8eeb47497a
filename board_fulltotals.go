// board_fulltotals.go is board_full.go's layout plus two cached
// per-color occupancy totals, updated incrementally in XorPlane instead
// of recomputed by OR-ing six planes on every Occupancy call. This is
// the layout a hot move-generation loop wants; board_full.go is the one
// that most directly mirrors the teacher's Position struct.

package zugzwang

// FullTotalsBoard is the 12-plane BoardState with cached per-color totals.
type FullTotalsBoard struct {
	meta
	planes   [2][6]uint64
	totalOcc [2]uint64
}

// NewFullTotalsBoard returns an empty FullTotalsBoard ready for a caller
// to populate via PlacePiece and Rehash.
func NewFullTotalsBoard(rules *CastlingRules, zt ZobristTables) *FullTotalsBoard {
	return &FullTotalsBoard{meta: newMeta(rules, zt)}
}

// PlacePiece sets a single piece on sq. See board_full.go's PlacePiece.
func (b *FullTotalsBoard) PlacePiece(c Color, k PieceKind, sq Square) { b.XorPlane(c, k, sq.Bit()) }

func (b *FullTotalsBoard) Planes(c Color, k PieceKind) uint64 { return b.planes[c][k] }

func (b *FullTotalsBoard) Occupancy(c Color) uint64 { return b.totalOcc[c] }

func (b *FullTotalsBoard) OccupancyAll() uint64 { return b.totalOcc[White] | b.totalOcc[Black] }

func (b *FullTotalsBoard) PieceAt(sq Square) (Color, PieceKind, bool) {
	bit := sq.Bit()
	for c := White; c <= Black; c++ {
		if b.totalOcc[c]&bit == 0 {
			continue
		}
		for k := Pawn; k <= King; k++ {
			if b.planes[c][k]&bit != 0 {
				return c, k, true
			}
		}
	}
	return White, NoPiece, false
}

func (b *FullTotalsBoard) XorPlane(c Color, k PieceKind, mask uint64) {
	b.planes[c][k] ^= mask
	b.totalOcc[c] ^= mask
}

// Clone returns an independent copy of the board.
func (b *FullTotalsBoard) Clone() *FullTotalsBoard {
	cp := *b
	return &cp
}

// CloneAndMake clones the board and plays m on the clone. See
// board_full.go's CloneAndMake.
func (b *FullTotalsBoard) CloneAndMake(m LegalMove) (*FullTotalsBoard, Transients) {
	cp := b.Clone()
	pre := MakeMove(cp, m)
	return cp, pre
}
