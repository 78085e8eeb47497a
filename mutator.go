// mutator.go provides the two non-real MutableBoard implementations
// make.go's phase functions run against: moveOnlyView, a cheap reversible
// legality probe that borrows a real board's planes, and hashOnlyView, a
// planeless preview that only ever computes a resulting hash. Both are
// concrete realizations of original_source's MoveOnly<BB>/HashOnly
// wrapper structs (src/bitboard/moving.rs).

package zugzwang

// moveOnlyView forwards plane mutation to a real board but no-ops every
// metadata and hash setter. Because make.go's phase functions express
// every plane mutation as an XOR, and XOR is its own inverse, running the
// same phases twice against a moveOnlyView mutates the real board's
// planes out and then back, with its hash, rights, and clocks never
// touched. That lets the legality filter (movegen.go) test "does this
// move leave my king in check" by mutating the real board in place for
// the duration of one attack query, instead of cloning the whole
// position per candidate move.
type moveOnlyView struct {
	real MutableBoard
}

func (v *moveOnlyView) Planes(c Color, k PieceKind) uint64           { return v.real.Planes(c, k) }
func (v *moveOnlyView) Occupancy(c Color) uint64                     { return v.real.Occupancy(c) }
func (v *moveOnlyView) OccupancyAll() uint64                         { return v.real.OccupancyAll() }
func (v *moveOnlyView) PieceAt(sq Square) (Color, PieceKind, bool)   { return v.real.PieceAt(sq) }
func (v *moveOnlyView) SideToMove() Color                            { return v.real.SideToMove() }
func (v *moveOnlyView) Rights() CastlingRights                       { return v.real.Rights() }
func (v *moveOnlyView) EnPassant() EnPassant                         { return v.real.EnPassant() }
func (v *moveOnlyView) HalfmoveClock() uint16                        { return v.real.HalfmoveClock() }
func (v *moveOnlyView) FullmoveNumber() uint16                       { return v.real.FullmoveNumber() }
func (v *moveOnlyView) Hash() uint64                                 { return v.real.Hash() }
func (v *moveOnlyView) CastlingRulesRef() *CastlingRules             { return v.real.CastlingRulesRef() }
func (v *moveOnlyView) Zobrist() ZobristTables                       { return v.real.Zobrist() }

func (v *moveOnlyView) XorPlane(c Color, k PieceKind, mask uint64) { v.real.XorPlane(c, k, mask) }
func (v *moveOnlyView) PlacePiece(c Color, k PieceKind, sq Square)  { v.real.XorPlane(c, k, sq.Bit()) }
func (v *moveOnlyView) SetSideToMove(Color)                        {}
func (v *moveOnlyView) SetHalfmoveClock(uint16)                     {}
func (v *moveOnlyView) SetFullmoveNumber(uint16)                    {}
func (v *moveOnlyView) SetRights(CastlingRights)                    {}
func (v *moveOnlyView) SetEnPassant(EnPassant)                      {}
func (v *moveOnlyView) SetHash(uint64)                              {}
func (v *moveOnlyView) XorHash(uint64)                              {}
func (v *moveOnlyView) NextPly()                                    {}
func (v *moveOnlyView) PrevPly()                                    {}
func (v *moveOnlyView) Transients() Transients                      { return Transients{} }
func (v *moveOnlyView) SetTransients(Transients)                    {}

// hashOnlyView tracks metadata and a running hash but no planes at all.
// Running make.go's phases against one answers "what hash would this
// move produce" (make.go's HashProspectiveMove) without mutating, or even
// allocating, a board.
type hashOnlyView struct {
	meta
}

func newHashOnlyView(side Color, rights CastlingRights, ep EnPassant, halfmove uint16, hash uint64, rules *CastlingRules, zt ZobristTables) *hashOnlyView {
	v := &hashOnlyView{meta: meta{
		side:     side,
		halfmove: halfmove,
		ep:       ep,
		rights:   rights,
		hash:     hash,
		rules:    rules,
		zt:       zt,
	}}
	return v
}

func (v *hashOnlyView) Planes(Color, PieceKind) uint64               { return 0 }
func (v *hashOnlyView) Occupancy(Color) uint64                       { return 0 }
func (v *hashOnlyView) OccupancyAll() uint64                         { return 0 }
func (v *hashOnlyView) PieceAt(Square) (Color, PieceKind, bool)      { return White, NoPiece, false }
func (v *hashOnlyView) XorPlane(Color, PieceKind, uint64)            {}
func (v *hashOnlyView) PlacePiece(Color, PieceKind, Square)          {}
