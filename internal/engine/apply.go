package engine

import (
	"github.com/lgbarn/termichess-go/internal/chess"
)

// ApplyMove returns the board after making m. The board is passed and
// returned by value, so the caller's board is never modified.
//
// Castling also relocates the rook, an en-passant capture removes the pawn
// that double-stepped (beside the mover, not on the destination), and a
// promotion replaces the pawn with the chosen piece in the mover's colour.
func ApplyMove(board chess.Board, m chess.Move) chess.Board {
	piece := board.Get(m.From)
	colour := chess.ExtractColour(piece)

	switch chess.ExtractPiece(piece) {
	case chess.King:
		if abs(m.To.Col-m.From.Col) == 2 {
			if side, ok := castleSideFor(m); ok {
				board.Set(side.rookTo, board.Get(side.rookFrom))
				board.Set(side.rookFrom, chess.Empty)
			}
		}
	case chess.Pawn:
		if isEnPassantCapture(&board, m) {
			board.Set(chess.Square{Row: m.From.Row, Col: m.To.Col}, chess.Empty)
		}
		if m.IsPromotion() {
			piece = chess.MakeColouredPiece(colour, m.Promotion)
		}
	}

	board.Set(m.From, chess.Empty)
	board.Set(m.To, piece)
	return board
}

// Play returns the position after m: the moved board, the other side to
// move, castling rights reduced by the move, and an en-passant target when
// m is a double pawn push.
func Play(pos chess.Position, m chess.Move) chess.Position {
	next := chess.Position{
		Board:     ApplyMove(pos.Board, m),
		ToMove:    pos.ToMove.Opposite(),
		Castling:  updateCastlingRights(pos.Castling, &pos.Board, m),
		EnPassant: chess.NoSquare,
	}

	if chess.ExtractPiece(pos.Board.Get(m.From)) == chess.Pawn && abs(m.To.Row-m.From.Row) == 2 {
		next.EnPassant = chess.Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	}
	return next
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
