// board.go defines the Board/MutableBoard contract every position layout
// implements, the shared metadata embed (meta) those layouts carry, and
// the small value types (EnPassant, Transients) the make/unmake engine
// threads through a move application.
//
// Three concrete layouts (board_compact.go, board_full.go,
// board_fulltotals.go) implement this contract; movegen.go, make.go, and
// sanity.go are written entirely against the interface so all three stay
// interchangeable and must agree on every perft count (board_test.go
// and make_test.go cross-check them).

package zugzwang

// EnPassant names the single square a pawn skipped over on its last
// double push, if any. Only one such square can exist at a time.
type EnPassant struct {
	Valid  bool
	Square Square
}

// Transients is the set of position fields that change on every move and
// must be restored verbatim by unmake: the halfmove clock, the en
// passant target, castling rights, and the running Zobrist hash. It is
// the Go shape of original_source's Transients struct, saved before a
// move's phases run and handed back to the caller so UnmakeMove can
// restore it after reversing the phases.
type Transients struct {
	HalfmoveClock uint16
	EnPassant     EnPassant
	Rights        CastlingRights
	Hash          uint64
}

// Board is the read-only view every piece of move-generation and
// attack-detection code is written against.
type Board interface {
	// Planes returns the bitboard of color c's pieces of kind k.
	Planes(c Color, k PieceKind) uint64
	// Occupancy returns every square occupied by color c.
	Occupancy(c Color) uint64
	// OccupancyAll returns every occupied square on the board.
	OccupancyAll() uint64
	// PieceAt reports the occupant of sq, if any.
	PieceAt(sq Square) (c Color, k PieceKind, ok bool)

	SideToMove() Color
	Rights() CastlingRights
	EnPassant() EnPassant
	HalfmoveClock() uint16
	FullmoveNumber() uint16
	Hash() uint64
	CastlingRulesRef() *CastlingRules
	Zobrist() ZobristTables
}

// MutableBoard extends Board with every mutation make.go's engine and
// internal/fen's position setup need. The three concrete layouts all
// implement it directly; mutator.go's moveOnlyView and hashOnlyView
// implement it too, routing the same calls to a narrower place (a
// borrowed real board's planes only, or a bare running hash), which is
// what lets make.go's phase functions (make.go) be written once and
// reused for the real move, the legality-probe lookahead, and the
// hash-only preview.
type MutableBoard interface {
	Board

	// XorPlane toggles mask into color c's kind-k plane. XOR is its own
	// inverse, which is the one invariant every phase in make.go leans
	// on: applying the same XorPlane call twice is a no-op.
	XorPlane(c Color, k PieceKind, mask uint64)

	// PlacePiece sets a single piece of color c and kind k on sq. It is
	// XorPlane narrowed to one square, the shape position setup code
	// (StartPosition below, internal/fen) actually wants.
	PlacePiece(c Color, k PieceKind, sq Square)

	SetSideToMove(c Color)
	SetHalfmoveClock(v uint16)
	SetFullmoveNumber(v uint16)
	SetRights(r CastlingRights)
	SetEnPassant(ep EnPassant)
	SetHash(h uint64)
	XorHash(v uint64)

	// NextPly flips the side to move and, when it was Black's move,
	// advances the fullmove counter. PrevPly is its exact inverse.
	NextPly()
	PrevPly()

	// Transients snapshots/restores the four undoable fields at once,
	// sparing make.go from four separate get/set round trips per move.
	Transients() Transients
	SetTransients(t Transients)
}

// meta carries the metadata common to every MutableBoard implementation:
// side to move, move counters, rights, en passant, the running hash, and
// pointers to the static rules and zobrist tables a position was built
// with. Each concrete board type embeds meta and only has to implement
// the plane-shaped methods (Planes/Occupancy/OccupancyAll/PieceAt/XorPlane)
// itself.
type meta struct {
	side     Color
	fullmove uint16
	halfmove uint16
	ep       EnPassant
	rights   CastlingRights
	hash     uint64
	rules    *CastlingRules
	zt       ZobristTables
}

func newMeta(rules *CastlingRules, zt ZobristTables) meta {
	return meta{
		side:     White,
		fullmove: 1,
		rules:    rules,
		zt:       zt,
	}
}

func (m *meta) SideToMove() Color            { return m.side }
func (m *meta) Rights() CastlingRights       { return m.rights }
func (m *meta) EnPassant() EnPassant         { return m.ep }
func (m *meta) HalfmoveClock() uint16        { return m.halfmove }
func (m *meta) FullmoveNumber() uint16       { return m.fullmove }
func (m *meta) Hash() uint64                 { return m.hash }
func (m *meta) CastlingRulesRef() *CastlingRules { return m.rules }
func (m *meta) Zobrist() ZobristTables       { return m.zt }

func (m *meta) SetSideToMove(c Color)          { m.side = c }
func (m *meta) SetHalfmoveClock(v uint16)      { m.halfmove = v }
func (m *meta) SetFullmoveNumber(v uint16)     { m.fullmove = v }
func (m *meta) SetRights(r CastlingRights)     { m.rights = r }
func (m *meta) SetEnPassant(ep EnPassant)      { m.ep = ep }
func (m *meta) SetHash(h uint64)               { m.hash = h }
func (m *meta) XorHash(v uint64)               { m.hash ^= v }

func (m *meta) NextPly() {
	if m.side == Black {
		m.fullmove++
	}
	m.side = m.side.Opposite()
}

func (m *meta) PrevPly() {
	m.side = m.side.Opposite()
	if m.side == Black {
		m.fullmove--
	}
}

func (m *meta) Transients() Transients {
	return Transients{
		HalfmoveClock: m.halfmove,
		EnPassant:     m.ep,
		Rights:        m.rights,
		Hash:          m.hash,
	}
}

func (m *meta) SetTransients(t Transients) {
	m.halfmove = t.HalfmoveClock
	m.ep = t.EnPassant
	m.rights = t.Rights
	m.hash = t.Hash
}

// StartPosition lays out the standard chess starting arrangement on b
// (already constructed empty by one of NewFullBoard/NewCompactBoard/
// NewFullTotalsBoard) and sets its rights and hash, with no FEN parser
// involved — the Go counterpart of original_source's
// BitBoard::startpos(). Any MutableBoard may be passed; the caller picks
// which layout it wants by which constructor it called.
func StartPosition(b MutableBoard) {
	b.PlacePiece(White, Rook, A1)
	b.PlacePiece(White, Knight, B1)
	b.PlacePiece(White, Bishop, C1)
	b.PlacePiece(White, Queen, D1)
	b.PlacePiece(White, King, E1)
	b.PlacePiece(White, Bishop, F1)
	b.PlacePiece(White, Knight, G1)
	b.PlacePiece(White, Rook, H1)
	for sq := A2; sq <= H2; sq++ {
		b.PlacePiece(White, Pawn, sq)
	}

	b.PlacePiece(Black, Rook, A8)
	b.PlacePiece(Black, Knight, B8)
	b.PlacePiece(Black, Bishop, C8)
	b.PlacePiece(Black, Queen, D8)
	b.PlacePiece(Black, King, E8)
	b.PlacePiece(Black, Bishop, F8)
	b.PlacePiece(Black, Knight, G8)
	b.PlacePiece(Black, Rook, H8)
	for sq := A7; sq <= H7; sq++ {
		b.PlacePiece(Black, Pawn, sq)
	}

	b.SetRights(CastlingRights{
		White: {East: true, West: true},
		Black: {East: true, West: true},
	})
	b.SetHash(Rehash(b))
}
