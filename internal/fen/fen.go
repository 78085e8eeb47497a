// Package fen is test/harness plumbing only: it parses and serializes
// Forsyth-Edwards strings against the three zugzwang.MutableBoard
// layouts, the way the teacher's fen.go did for its single Position
// type. It is deliberately kept out of the module root — board setup
// from a FEN string is not part of the move-generation core's exported
// surface, only of its tests and the perft CLI.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kagenoshin/zugzwang"
)

// StartPos is the FEN for the standard chess starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Layout selects which of the three interchangeable board
// representations Parse builds.
type Layout int

const (
	Compact Layout = iota
	Full
	FullTotals
)

func newBoard(layout Layout, rules *zugzwang.CastlingRules, zt zugzwang.ZobristTables) zugzwang.MutableBoard {
	switch layout {
	case Compact:
		return zugzwang.NewCompactBoard(rules, zt)
	case FullTotals:
		return zugzwang.NewFullTotalsBoard(rules, zt)
	default:
		return zugzwang.NewFullBoard(rules, zt)
	}
}

// Parse builds a board of the requested layout from a FEN string. rules
// and zt are supplied by the caller (most callers share one
// ClassicCastlingRules and one zobrist table set across many positions).
func Parse(layout Layout, s string, rules *zugzwang.CastlingRules, zt zugzwang.ZobristTables) (zugzwang.MutableBoard, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d: %q", len(fields), s)
	}

	b := newBoard(layout, rules, zt)

	rank := 7
	file := 0
	for _, ch := range fields[0] {
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			c, k, ok := pieceFromSymbol(byte(ch))
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece symbol %q", ch)
			}
			if rank < 0 || file > 7 {
				return nil, fmt.Errorf("fen: board field overruns the board: %q", fields[0])
			}
			sq := zugzwang.Square(rank*8 + file)
			b.PlacePiece(c, k, sq)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.SetSideToMove(zugzwang.White)
	case "b":
		b.SetSideToMove(zugzwang.Black)
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	var rights zugzwang.CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				rights[zugzwang.White][zugzwang.West] = true
			case 'Q':
				rights[zugzwang.White][zugzwang.East] = true
			case 'k':
				rights[zugzwang.Black][zugzwang.West] = true
			case 'q':
				rights[zugzwang.Black][zugzwang.East] = true
			default:
				return nil, fmt.Errorf("fen: invalid castling rights %q", fields[2])
			}
		}
	}
	b.SetRights(rights)

	if fields[3] != "-" {
		sq, err := squareFromAlgebraic(fields[3])
		if err != nil {
			return nil, err
		}
		b.SetEnPassant(zugzwang.EnPassant{Valid: true, Square: sq})
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q: %w", fields[4], err)
	}
	b.SetHalfmoveClock(uint16(half))

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number %q: %w", fields[5], err)
	}
	b.SetFullmoveNumber(uint16(full))

	b.SetHash(zugzwang.Rehash(b))
	return b, nil
}

// Serialize renders b back to a FEN string. Round-tripping Serialize(b)
// through Parse reproduces b's planes and metadata exactly, except that
// the reparsed hash is recomputed from scratch rather than copied (it
// will still agree, since Parse always rehashes too).
func Serialize(b zugzwang.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := zugzwang.Square(rank*8 + file)
			c, k, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(zugzwang.Symbol(c, k))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.SideToMove() == zugzwang.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := b.Rights()
	wrote := false
	if rights[zugzwang.White][zugzwang.West] {
		sb.WriteByte('K')
		wrote = true
	}
	if rights[zugzwang.White][zugzwang.East] {
		sb.WriteByte('Q')
		wrote = true
	}
	if rights[zugzwang.Black][zugzwang.West] {
		sb.WriteByte('k')
		wrote = true
	}
	if rights[zugzwang.Black][zugzwang.East] {
		sb.WriteByte('q')
		wrote = true
	}
	if !wrote {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if ep := b.EnPassant(); ep.Valid {
		sb.WriteString(ep.Square.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.HalfmoveClock())))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.FullmoveNumber())))

	return sb.String()
}

func pieceFromSymbol(ch byte) (zugzwang.Color, zugzwang.PieceKind, bool) {
	var k zugzwang.PieceKind
	switch ch | 0x20 {
	case 'p':
		k = zugzwang.Pawn
	case 'n':
		k = zugzwang.Knight
	case 'b':
		k = zugzwang.Bishop
	case 'r':
		k = zugzwang.Rook
	case 'q':
		k = zugzwang.Queen
	case 'k':
		k = zugzwang.King
	default:
		return 0, 0, false
	}
	if ch >= 'a' && ch <= 'z' {
		return zugzwang.Black, k, true
	}
	return zugzwang.White, k, true
}

func squareFromAlgebraic(s string) (zugzwang.Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("fen: invalid square %q", s)
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return 0, fmt.Errorf("fen: invalid square %q", s)
	}
	return zugzwang.Square(int(rank)*8 + int(file)), nil
}
