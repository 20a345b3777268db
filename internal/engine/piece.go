package engine

import "github.com/lgbarn/termichess-go/internal/chess"

// appendPieceMoves adds the pseudo-legal moves of a knight, bishop, rook,
// queen or king standing on from. Castling is not included; it depends on
// the position's rights, not just the board.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, pieceType chess.Piece) []chess.Move {
	switch pieceType {
	case chess.Knight:
		return appendStepMoves(moves, board, from, colour, knightOffsets[:])
	case chess.Bishop:
		return appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
	case chess.Rook:
		return appendSlidingMoves(moves, board, from, colour, orthogonalDirs[:])
	case chess.Queen:
		moves = appendSlidingMoves(moves, board, from, colour, orthogonalDirs[:])
		return appendSlidingMoves(moves, board, from, colour, diagonalDirs[:])
	case chess.King:
		return appendStepMoves(moves, board, from, colour, kingOffsets[:])
	}
	return moves
}

// appendStepMoves adds single-step moves to empty or opposing squares.
func appendStepMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if to.OnBoard() && !chess.IsColour(board.Get(to), colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// appendSlidingMoves walks each ray up to the first occupied square, which
// is included only when it holds an opposing piece.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.Get(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// canReach reports whether a piece of the given type on from has a
// pseudo-legal move landing on target.
func canReach(board *chess.Board, from chess.Square, colour chess.Colour, pieceType chess.Piece, target chess.Square) bool {
	for _, m := range appendPieceMoves(nil, board, from, colour, pieceType) {
		if m.To == target {
			return true
		}
	}
	return false
}
