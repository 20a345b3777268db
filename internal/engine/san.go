package engine

import (
	"strings"

	"github.com/lgbarn/termichess-go/internal/chess"
)

// SAN returns the Standard Algebraic Notation of m, a legal move, relative
// to the position before the move. Check and mate markers are not added.
func SAN(pos *chess.Position, m chess.Move) string {
	board := &pos.Board
	piece := board.Get(m.From)
	pieceType := chess.ExtractPiece(piece)

	if pieceType == chess.King && abs(m.To.Col-m.From.Col) == 2 {
		if m.To.Col == 6 {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if pieceType == chess.Pawn {
		// A pawn only changes file when it captures, en passant included.
		if m.From.Col != m.To.Col {
			sb.WriteByte(m.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(pieceType.Letter())
	sb.WriteString(disambiguation(board, m, piece))
	if !board.IsEmpty(m.To) {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguation returns the origin qualifier SAN needs when another piece
// of the same type and colour could also move to m.To: the file when that
// tells them apart, else the rank, else both.
func disambiguation(board *chess.Board, m chess.Move, piece chess.Piece) string {
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	var ambiguous, sameFile, sameRank bool
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			other := chess.Square{Row: row, Col: col}
			if other == m.From || board.Get(other) != piece {
				continue
			}
			if !canReach(board, other, colour, pieceType, m.To) {
				continue
			}
			ambiguous = true
			sameFile = sameFile || other.Col == m.From.Col
			sameRank = sameRank || other.Row == m.From.Row
		}
	}

	switch {
	case !ambiguous:
		return ""
	case sameFile && sameRank:
		return m.From.String()
	case sameFile:
		return string(m.From.Rank())
	default:
		return string(m.From.File())
	}
}
