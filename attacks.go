// attacks.go defines the attack-provider contract ("panopticon" in
// original_source's vocabulary: one thing that can see every square a
// piece threatens) and two interchangeable implementations: one built on
// the obstruction-difference kernel in bits.go, the other on the
// dumb7fill flood-fill kernel. Both must agree on every square for every
// occupancy, which is exercised in attacks_test.go.

package zugzwang

// AttackReport pairs a computed attack mask with the defender's king
// square, mirroring original_source's Attacks{attack, targeted_king}.
// Check reports whether the attack mask actually lands on the king.
type AttackReport struct {
	Attack       uint64
	TargetedKing uint64
}

// Check reports whether the attack mask intersects the targeted king.
func (r AttackReport) Check() bool { return r.Attack&r.TargetedKing != 0 }

// AttackProvider is the pluggable "panopticon": anything able to answer
// per-piece and whole-board attack queries. movegen.go and make.go only
// depend on this interface, never on a concrete kernel, so the
// obstruction-difference and dumb7fill implementations are interchangeable
// at call sites (and in tests, cross-checked against each other).
type AttackProvider interface {
	PawnAttacks(c Color, sq Square) uint64
	KnightAttacks(sq Square) uint64
	KingAttacks(sq Square) uint64
	BishopAttacks(sq Square, occ uint64) uint64
	RookAttacks(sq Square, occ uint64) uint64
	QueenAttacks(sq Square, occ uint64) uint64

	// AttacksBy returns every square attacked by color c's pieces, given
	// the board's per-piece masks and total occupancy.
	AttacksBy(c Color, pieces *[6]uint64, occ uint64) uint64
}

// precomputed leaper tables, built once at package init by flooding a
// single-square mask one step in every direction — the same idiom the
// teacher's init.go uses for its magic-bitboard tables, retargeted to a
// cheaper leaper-only precomputation since the sliders no longer need one.
var (
	knightAttackTable [64]uint64
	kingAttackTable   [64]uint64
	pawnAttackTable   [2][64]uint64
)

func init() {
	for sq := Square(0); sq < 64; sq++ {
		bit := sq.Bit()
		knightAttackTable[sq] = knightDumbFill(bit)
		kingAttackTable[sq] = kingDumbFill(bit)
		pawnAttackTable[White][sq] = whitePawnAttackFill(bit)
		pawnAttackTable[Black][sq] = blackPawnAttackFill(bit)
	}
}

// ObsDiffPanopticon answers attack queries using the obstruction-difference
// kernel (bits.go's diffObs/splitOccupancy) for sliders and the
// precomputed tables above for leapers. This is the default provider
// movegen.go uses.
type ObsDiffPanopticon struct{}

func (ObsDiffPanopticon) PawnAttacks(c Color, sq Square) uint64 { return pawnAttackTable[c][sq] }
func (ObsDiffPanopticon) KnightAttacks(sq Square) uint64        { return knightAttackTable[sq] }
func (ObsDiffPanopticon) KingAttacks(sq Square) uint64          { return kingAttackTable[sq] }
func (ObsDiffPanopticon) BishopAttacks(sq Square, occ uint64) uint64 {
	return BishopAttacks(sq, occ)
}
func (ObsDiffPanopticon) RookAttacks(sq Square, occ uint64) uint64 { return RookAttacks(sq, occ) }
func (ObsDiffPanopticon) QueenAttacks(sq Square, occ uint64) uint64 {
	return QueenAttacks(sq, occ)
}

func (p ObsDiffPanopticon) AttacksBy(c Color, pieces *[6]uint64, occ uint64) uint64 {
	return attacksByPieces(p, c, pieces, occ)
}

// attacksByPieces unions every piece kind's attack set for color c; shared
// by both panopticon implementations since it only calls through the
// AttackProvider interface.
func attacksByPieces(p AttackProvider, c Color, pieces *[6]uint64, occ uint64) uint64 {
	var attack uint64
	for bb := pieces[Pawn]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.PawnAttacks(c, sq)
	}
	for bb := pieces[Knight]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.KnightAttacks(sq)
	}
	for bb := pieces[Bishop]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.BishopAttacks(sq, occ)
	}
	for bb := pieces[Rook]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.RookAttacks(sq, occ)
	}
	for bb := pieces[Queen]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.QueenAttacks(sq, occ)
	}
	for bb := pieces[King]; bb != 0; {
		sq, _ := biterate(&bb)
		attack |= p.KingAttacks(sq)
	}
	return attack
}

// direction describes one of the 8 compass directions for dumb7Fill: how
// far and which way to shift, and which file-wrap mask guards it.
type direction struct {
	shift uint
	wrap  uint64
	left  bool
}

var (
	dirNorth     = direction{8, allSquares, true}
	dirSouth     = direction{8, allSquares, false}
	dirEast      = direction{1, notFileA, true}
	dirWest      = direction{1, notFileH, false}
	dirNorthEast = direction{9, notFileA, true}
	dirNorthWest = direction{7, notFileH, true}
	dirSouthEast = direction{7, notFileA, false}
	dirSouthWest = direction{9, notFileH, false}

	rookDirs   = [4]direction{dirNorth, dirSouth, dirEast, dirWest}
	bishopDirs = [4]direction{dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}
)

// slideDumb7Fill floods sliders outward along every direction in dirs,
// bounded to 7 steps per direction, the scalar equivalent of
// original_source's rook_dumb7fill_simdx2/bishop_dumb7fill_simdx2 lanes.
func slideDumb7Fill(sliders, empty uint64, dirs [4]direction) uint64 {
	var out uint64
	for _, d := range dirs {
		out |= dumb7Fill(sliders, empty, d.shift, d.wrap, d.left)
	}
	return out
}

// DumbFillPanopticon is the second AttackProvider: leapers use the same
// one-step flood (knightDumbFill/kingDumbFill) as the default provider,
// but sliders use the bounded dumb7fill flood instead of
// obstruction-difference. Exists to give §4.2's "pluggable attack
// contract" a second, cross-checkable and benchmarkable body.
type DumbFillPanopticon struct{}

func (DumbFillPanopticon) PawnAttacks(c Color, sq Square) uint64 { return pawnAttackTable[c][sq] }
func (DumbFillPanopticon) KnightAttacks(sq Square) uint64        { return knightAttackTable[sq] }
func (DumbFillPanopticon) KingAttacks(sq Square) uint64          { return kingAttackTable[sq] }

func (DumbFillPanopticon) BishopAttacks(sq Square, occ uint64) uint64 {
	empty := ^occ
	return slideDumb7Fill(sq.Bit(), empty, bishopDirs)
}

func (DumbFillPanopticon) RookAttacks(sq Square, occ uint64) uint64 {
	empty := ^occ
	return slideDumb7Fill(sq.Bit(), empty, rookDirs)
}

func (p DumbFillPanopticon) QueenAttacks(sq Square, occ uint64) uint64 {
	return p.BishopAttacks(sq, occ) | p.RookAttacks(sq, occ)
}

func (p DumbFillPanopticon) AttacksBy(c Color, pieces *[6]uint64, occ uint64) uint64 {
	return attacksByPieces(p, c, pieces, occ)
}

// IsSquareAttacked reports whether any of attacker's pieces on board b
// attack sq. Used by the legality filter (castling safety squares, and
// the mover's king square in ProbeLegality).
func IsSquareAttacked(p AttackProvider, b Board, by Color, sq Square) bool {
	occ := b.OccupancyAll()
	if p.PawnAttacks(by.Opposite(), sq)&b.Planes(by, Pawn) != 0 {
		return true
	}
	if p.KnightAttacks(sq)&b.Planes(by, Knight) != 0 {
		return true
	}
	if p.KingAttacks(sq)&b.Planes(by, King) != 0 {
		return true
	}
	bishopsQueens := b.Planes(by, Bishop) | b.Planes(by, Queen)
	if p.BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.Planes(by, Rook) | b.Planes(by, Queen)
	if p.RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
