package engine

import "github.com/lgbarn/termichess-go/internal/chess"

// pawnStartRow returns the row from which a colour's pawns may double-push.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return 6
	}
	return 1
}

// enPassantRow returns the row a colour's pawn must stand on to capture
// en passant (the fifth rank from its own side).
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// appendPawnMoves adds the pseudo-legal moves of the side-to-move pawn on
// from: pushes, double push, captures, en passant and promotions.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	colour := pos.ToMove
	board := &pos.Board
	dir := chess.ColourOffset(colour)

	one := from.Offset(dir, 0)
	if !one.OnBoard() {
		return moves
	}

	if board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, colour)
		if from.Row == pawnStartRow(colour) {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		switch {
		case chess.IsColour(target, colour.Opposite()):
			moves = appendPawnMove(moves, from, to, colour)
		case target == chess.Empty && pos.HasEnPassant() && to == pos.EnPassant && from.Row == enPassantRow(colour):
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded to one move per promotion
// piece when it lands on the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Row != chess.HomeRow(colour.Opposite()) {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
	}
	return moves
}

// isEnPassantCapture reports whether a pawn move is a diagonal step onto
// an empty square, which can only be an en-passant capture.
func isEnPassantCapture(board *chess.Board, m chess.Move) bool {
	return chess.ExtractPiece(board.Get(m.From)) == chess.Pawn &&
		m.From.Col != m.To.Col && board.IsEmpty(m.To)
}
