// squares.go defines the square, color, and piece-kind enums and the
// closed-form rank/file/diagonal mask arithmetic they support.

package zugzwang

// Square is an ordinal square index in [0,63]: a1=0, b1=1, ..., h8=63.
// Files occupy bits 0..2 and ranks bits 3..5 of the index.
type Square uint8

// Square indices, a1 through h8.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) & 0x7 }

// Rank returns the square's rank, 0 (1st) through 7 (8th).
func (s Square) Rank() int { return int(s) >> 3 }

// Bit returns the single-bit bitboard occupied by the square.
func (s Square) Bit() uint64 { return uint64(1) << uint(s) }

// MirrorNS mirrors the square across the board's horizontal midline
// (rank 1 <-> rank 8).
func (s Square) MirrorNS() Square { return Square(uint8(s) ^ 0x38) }

// MirrorEW mirrors the square across the board's vertical midline
// (file a <-> file h).
func (s Square) MirrorEW() Square { return Square(uint8(s) ^ 0x07) }

// Rotate180 rotates the square 180 degrees (a1 <-> h8).
func (s Square) Rotate180() Square { return Square(63 - uint8(s)) }

// String renders the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	return squareNames[s&63]
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Color is the side to move or the owner of a piece.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// Sign returns +1 for White and -1 for Black, for direction arithmetic
// (e.g. pawn push direction) where a signed form is more convenient than
// a branch.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceKind is a chess piece type, echelon-ordered pawn..king.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	// NoPiece is the sentinel for "no piece"/"no capture" in APIs that
	// need to express absence without an extra bool (e.g. Move.Capture).
	NoPiece
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// pieceSymbols maps (color*6 + kind) to the FEN-style piece letter, used
// only by debug formatting and the non-core fen helper package.
var pieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Symbol returns the FEN letter for a (color, kind) pair.
func Symbol(c Color, k PieceKind) byte {
	return pieceSymbols[int(c)*6+int(k)]
}

// Bitmasks used throughout the bit-primitive and attack kernels.
const (
	fileAMask   uint64 = 0x0101010101010101
	fileHMask   uint64 = 0x8080808080808080
	notFileA    uint64 = ^fileAMask
	notFileH    uint64 = ^fileHMask
	notFileAB   uint64 = ^(fileAMask | (fileAMask << 1))
	notFileGH   uint64 = ^(fileHMask | (fileHMask >> 1))
	rank1Mask   uint64 = 0x00000000000000FF
	rank2Mask   uint64 = 0x000000000000FF00
	rank7Mask   uint64 = 0x00FF000000000000
	rank8Mask   uint64 = 0xFF00000000000000
	allSquares  uint64 = 0xFFFFFFFFFFFFFFFF
	noSquares   uint64 = 0
)

// RankMask returns the 8-bit mask of the rank containing sq, computed
// closed-form by shifting a rank-1 template by (sq & 0x38).
func RankMask(sq Square) uint64 {
	return rank1Mask << (uint(sq) & 0x38)
}

// FileMask returns the 8-bit-per-rank mask of the file containing sq,
// computed closed-form by shifting an a-file template by (sq & 0x7).
func FileMask(sq Square) uint64 {
	return fileAMask << (uint(sq) & 0x7)
}

// DiagMask returns the southwest-northeast diagonal through sq.
func DiagMask(sq Square) uint64 {
	s := uint(sq)
	n := 64 + (s & 0x38) - ((s << 3) & 0x38)
	return shiftDiag128(n)
}

// AntiDiagMask returns the southeast-northwest diagonal through sq.
func AntiDiagMask(sq Square) uint64 {
	s := uint(sq)
	n := 8 + (s & 0x38) + ((s << 3) & 0x38)
	return shiftAntiDiag128(n)
}

// shiftDiag128/shiftAntiDiag128 perform the 128-bit shift-and-truncate
// used by DiagMask/AntiDiagMask, expressed with two uint64 halves since Go
// has no native 128-bit integer type (the teacher's codebase, being pure
// Go, never needed one either; the original Rust source uses a native u128
// for this exact computation in src/bitboard/binary.rs).
func shiftDiag128(n uint) uint64 {
	const lo uint64 = 0x8040201008040201
	return shift128Low(lo, n)
}

func shiftAntiDiag128(n uint) uint64 {
	const lo uint64 = 0x0102040810204080
	return shift128Low(lo, n)
}

// shift128Low computes (uint128(lo) << n) >> 64, i.e. the low 64 bits
// of a 64-bit value shifted left by n within a 128-bit field, using two
// 64-bit halves to emulate the missing 128-bit shift.
func shift128Low(lo uint64, n uint) uint64 {
	if n >= 128 {
		return 0
	}
	if n >= 64 {
		return lo << (n - 64)
	}
	// The shift spans both halves: the low part contributes its top
	// n bits into the result's bottom, and lo's low (64-n) bits stay in
	// the discarded low half of the 128-bit field.
	if n == 0 {
		return 0
	}
	return lo >> (64 - n)
}
