// zobrist.go provides incremental Zobrist hashing. Two table layouts are
// offered behind the same interface (Full, one key per (color, kind,
// square); Compact, one key per color plane XORed with one key per kind
// plane, trading a slightly weaker hash for a smaller table of 512 piece
// keys instead of 768), mirroring
// the two BoardState plane layouts in board_full.go/board_compact.go.
//
// The teacher's original zobrist.go seeded math/rand/v2 with no fixed
// seed, so two runs of the teacher's own test suite hashed the same
// position differently build to build. That's fine for the teacher's
// threefold-repetition use case but fails reproducible perft/fuzz
// regression testing, so this module seeds deterministically instead,
// following original_source's hash.rs (`pi_rng`): the first 32 ASCII
// bytes of pi seed a small, fast PRNG, and the first 1000 outputs are
// discarded before any key is drawn.
package zugzwang

// ZobristTables answers incremental-hash queries. make.go XORs these
// values into a board's running hash as planes, rights, en passant, and
// side to move change; it never recomputes a hash from scratch except in
// sanity.go's Rehash.
type ZobristTables interface {
	PieceSquare(c Color, k PieceKind, sq Square) uint64
	EnPassantFile(hasEP bool, file int) uint64
	Rights(r CastlingRights) uint64
	BlackToMove() uint64
}

// piSeed is the first 32 ASCII bytes of pi, folded into a uint64 by
// newPiSeededRNG to seed the PRNG (original_source seeds rand::rngs::SmallRng::from_seed with the
// same literal byte string).
const piSeed = "3.141592653589793238462643383279"

// splitMix64 is a small, fast, deterministic PRNG (Vigna's SplitMix64),
// good enough for generating hash keys that only need to look random, not
// cryptographically be random.
type splitMix64 struct{ state uint64 }

func (r *splitMix64) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// newPiSeededRNG folds piSeed's 32 bytes into a single uint64 seed (four
// 8-byte groups XORed together) and discards the first 1000 outputs, as
// spec requires, before returning the generator ready for key generation.
func newPiSeededRNG() *splitMix64 {
	var seed uint64
	for i := 0; i < len(piSeed); i += 8 {
		var group uint64
		for j := 0; j < 8 && i+j < len(piSeed); j++ {
			group = group<<8 | uint64(piSeed[i+j])
		}
		seed ^= group
	}
	rng := &splitMix64{state: seed}
	for i := 0; i < 1000; i++ {
		rng.next()
	}
	return rng
}

// FullZobristTables carries one independent key per (color, kind, square)
// triple: 768 piece keys plus rights, en-passant file, and side-to-move
// keys. This is the layout board_full.go and board_fulltotals.go use.
type FullZobristTables struct {
	piece   [2][6][64]uint64
	epFile  [8]uint64
	rights  [2][2]uint64
	blackTM uint64
}

// NewFullZobristTables builds a fresh table set from the pi-seeded PRNG.
func NewFullZobristTables() *FullZobristTables {
	rng := newPiSeededRNG()
	t := &FullZobristTables{}
	for c := 0; c < 2; c++ {
		for k := 0; k < 6; k++ {
			for sq := 0; sq < 64; sq++ {
				t.piece[c][k][sq] = rng.next()
			}
		}
	}
	for f := 0; f < 8; f++ {
		t.epFile[f] = rng.next()
	}
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			t.rights[c][s] = rng.next()
		}
	}
	t.blackTM = rng.next()
	return t
}

func (t *FullZobristTables) PieceSquare(c Color, k PieceKind, sq Square) uint64 {
	return t.piece[c][k][sq]
}

func (t *FullZobristTables) EnPassantFile(hasEP bool, file int) uint64 {
	if !hasEP {
		return 0
	}
	return t.epFile[file]
}

func (t *FullZobristTables) Rights(r CastlingRights) uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			if r[c][s] {
				h ^= t.rights[c][s]
			}
		}
	}
	return h
}

func (t *FullZobristTables) BlackToMove() uint64 { return t.blackTM }

// CompactZobristTables carries one key per color plane and one key per
// kind plane; a piece's key is the XOR of the two. This is weaker (keys
// are not fully independent) but a smaller table (512 piece keys instead
// of 768), matching
// board_compact.go's 8-plane layout philosophy of trading a little
// precision for memory density.
type CompactZobristTables struct {
	colorKey [2][64]uint64
	kindKey  [6][64]uint64
	epFile   [8]uint64
	rights   [2][2]uint64
	blackTM  uint64
}

// NewCompactZobristTables builds a fresh table set from the pi-seeded PRNG.
func NewCompactZobristTables() *CompactZobristTables {
	rng := newPiSeededRNG()
	t := &CompactZobristTables{}
	for c := 0; c < 2; c++ {
		for sq := 0; sq < 64; sq++ {
			t.colorKey[c][sq] = rng.next()
		}
	}
	for k := 0; k < 6; k++ {
		for sq := 0; sq < 64; sq++ {
			t.kindKey[k][sq] = rng.next()
		}
	}
	for f := 0; f < 8; f++ {
		t.epFile[f] = rng.next()
	}
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			t.rights[c][s] = rng.next()
		}
	}
	t.blackTM = rng.next()
	return t
}

func (t *CompactZobristTables) PieceSquare(c Color, k PieceKind, sq Square) uint64 {
	return t.colorKey[c][sq] ^ t.kindKey[k][sq]
}

func (t *CompactZobristTables) EnPassantFile(hasEP bool, file int) uint64 {
	if !hasEP {
		return 0
	}
	return t.epFile[file]
}

func (t *CompactZobristTables) Rights(r CastlingRights) uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		for s := 0; s < 2; s++ {
			if r[c][s] {
				h ^= t.rights[c][s]
			}
		}
	}
	return h
}

func (t *CompactZobristTables) BlackToMove() uint64 { return t.blackTM }
