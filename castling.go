// castling.go models castling rights as static, parametric data rather
// than a hard-coded special case, so Chess960 starting arrangements are
// representable by constructing a different CastlingRules value instead
// of branching code. Grounded on original_source's
// src/bitboard/castling.rs / src/model/castling.rs Castling struct.
//
// Direction convention (spec's Design Notes fix a real inconsistency in
// the original): East is queenside (O-O-O, the rook starts on the a-file,
// the long way round); West is kingside (O-O, the rook starts on the
// h-file). This is the opposite of how the original Rust source indexes
// its two-element arrays, which this module deliberately does not copy.

package zugzwang

// CastlingSide indexes the two castling directions.
type CastlingSide uint8

const (
	// East is queenside castling (O-O-O).
	East CastlingSide = iota
	// West is kingside castling (O-O).
	West
)

// CastlingRights tracks, per color and per side, whether that castle is
// still available. Index as Rights[color][side].
type CastlingRights [2][2]bool

// Any reports whether any right at all remains.
func (r CastlingRights) Any() bool {
	return r[White][East] || r[White][West] || r[Black][East] || r[Black][West]
}

// CastlingRules is immutable, static data describing both castling moves
// for both colors. All masks are expressed across both back ranks at
// once (bits for White and Black both set); callers AND with BackRank[c]
// to restrict to one color, exactly as original_source's Castling does.
type CastlingRules struct {
	KingStart [2]Square       // [color] e1/e8
	KingEnd   [2][2]Square    // [color][side]
	RookStart [2][2]Square    // [color][side]
	RookEnd   [2][2]Square    // [color][side]

	KingMoveMask [2]uint64 // [side] king's from|to bits, both colors
	RookMoveMask [2]uint64 // [side] rook's from|to bits, both colors
	SafetyMask   [2]uint64 // [side] squares that must be unattacked during travel
	SpaceMask    [2]uint64 // [side] squares that must be empty between king and rook
	BackRank     [2]uint64 // [color] rank 1 or rank 8

	// Chess960 documents whether this ruleset was derived from a
	// non-classical starting arrangement. No generator for shuffled
	// Chess960 start positions is provided — that belongs to a
	// setup/FEN layer outside the core — but the masks above are general
	// enough to hold one, constructed by hand, if a caller builds it.
	Chess960 bool
}

// ClassicCastlingRules returns the standard-chess castling ruleset.
func ClassicCastlingRules() *CastlingRules {
	return &CastlingRules{
		KingStart: [2]Square{White: E1, Black: E8},
		KingEnd: [2][2]Square{
			White: {East: C1, West: G1},
			Black: {East: C8, West: G8},
		},
		RookStart: [2][2]Square{
			White: {East: A1, West: H1},
			Black: {East: A8, West: H8},
		},
		RookEnd: [2][2]Square{
			White: {East: D1, West: F1},
			Black: {East: D8, West: F8},
		},
		KingMoveMask: [2]uint64{
			East: E1.Bit() | C1.Bit() | E8.Bit() | C8.Bit(),
			West: E1.Bit() | G1.Bit() | E8.Bit() | G8.Bit(),
		},
		RookMoveMask: [2]uint64{
			East: A1.Bit() | D1.Bit() | A8.Bit() | D8.Bit(),
			West: H1.Bit() | F1.Bit() | H8.Bit() | F8.Bit(),
		},
		SafetyMask: [2]uint64{
			East: C1.Bit() | D1.Bit() | E1.Bit() | C8.Bit() | D8.Bit() | E8.Bit(),
			West: E1.Bit() | F1.Bit() | G1.Bit() | E8.Bit() | F8.Bit() | G8.Bit(),
		},
		SpaceMask: [2]uint64{
			East: B1.Bit() | C1.Bit() | D1.Bit() | B8.Bit() | C8.Bit() | D8.Bit(),
			West: F1.Bit() | G1.Bit() | F8.Bit() | G8.Bit(),
		},
		BackRank: [2]uint64{White: rank1Mask, Black: rank8Mask},
		Chess960:  false,
	}
}

// CanCastle reports whether color c may castle to side s given the
// current rights, occupancy, and an attack provider to test the safety
// squares. It does not check whether the king is currently in check via
// any cached state; it derives that from attacks on SafetyMask like every
// other square on the path.
func (cr *CastlingRules) CanCastle(p AttackProvider, b Board, c Color, s CastlingSide, rights CastlingRights, occ uint64) bool {
	if !rights[c][s] {
		return false
	}
	back := cr.BackRank[c]
	if cr.SpaceMask[s]&back&occ != 0 {
		return false
	}
	for sq := Square(0); sq < 64; sq++ {
		sqBit := sq.Bit()
		if sqBit&cr.SafetyMask[s]&back == 0 {
			continue
		}
		if IsSquareAttacked(p, b, c.Opposite(), sq) {
			return false
		}
	}
	return true
}
