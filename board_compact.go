// board_compact.go is the memory-dense BoardState layout: 2 color planes
// plus 6 kind planes (8 total, versus the 12 of board_full.go), at the
// cost of one extra AND per Planes() call. A piece's bitboard is the
// intersection of its color plane and its kind plane.

package zugzwang

// CompactBoard is the 8-plane BoardState.
type CompactBoard struct {
	meta
	colorPlane [2]uint64
	kindPlane  [6]uint64
}

// NewCompactBoard returns an empty CompactBoard ready for a caller to
// populate via PlacePiece and Rehash.
func NewCompactBoard(rules *CastlingRules, zt ZobristTables) *CompactBoard {
	return &CompactBoard{meta: newMeta(rules, zt)}
}

// PlacePiece sets a single piece on sq. See board_full.go's PlacePiece.
func (b *CompactBoard) PlacePiece(c Color, k PieceKind, sq Square) { b.XorPlane(c, k, sq.Bit()) }

func (b *CompactBoard) Planes(c Color, k PieceKind) uint64 {
	return b.colorPlane[c] & b.kindPlane[k]
}

func (b *CompactBoard) Occupancy(c Color) uint64 { return b.colorPlane[c] }

func (b *CompactBoard) OccupancyAll() uint64 { return b.colorPlane[White] | b.colorPlane[Black] }

func (b *CompactBoard) PieceAt(sq Square) (Color, PieceKind, bool) {
	bit := sq.Bit()
	var c Color
	switch {
	case b.colorPlane[White]&bit != 0:
		c = White
	case b.colorPlane[Black]&bit != 0:
		c = Black
	default:
		return White, NoPiece, false
	}
	for k := Pawn; k <= King; k++ {
		if b.kindPlane[k]&bit != 0 {
			return c, k, true
		}
	}
	return White, NoPiece, false
}

// XorPlane toggles mask into both the color plane and the kind plane: a
// compact board can't address a (color, kind) cell directly, so every
// mutation touches two planes instead of one.
func (b *CompactBoard) XorPlane(c Color, k PieceKind, mask uint64) {
	b.colorPlane[c] ^= mask
	b.kindPlane[k] ^= mask
}

// Clone returns an independent copy of the board.
func (b *CompactBoard) Clone() *CompactBoard {
	cp := *b
	return &cp
}

// CloneAndMake clones the board and plays m on the clone. See
// board_full.go's CloneAndMake.
func (b *CompactBoard) CloneAndMake(m LegalMove) (*CompactBoard, Transients) {
	cp := b.Clone()
	pre := MakeMove(cp, m)
	return cp, pre
}
