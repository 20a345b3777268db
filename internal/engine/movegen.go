package engine

import "github.com/lgbarn/termichess-go/internal/chess"

// PseudoLegalMoves returns every move of the side to move that obeys piece
// geometry and occupancy, without checking whether the mover's king is left
// attacked. Castling is the exception: it is only generated when the king's
// start, transit and destination squares are safe.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Square{Row: row, Col: col}
			piece := pos.Board.Get(from)
			if !chess.IsColour(piece, pos.ToMove) {
				continue
			}

			switch pieceType := chess.ExtractPiece(piece); pieceType {
			case chess.Pawn:
				moves = appendPawnMoves(moves, pos, from)
			case chess.King:
				moves = appendPieceMoves(moves, &pos.Board, from, pos.ToMove, pieceType)
				moves = appendCastlingMoves(moves, pos)
			default:
				moves = appendPieceMoves(moves, &pos.Board, from, pos.ToMove, pieceType)
			}
		}
	}
	return moves
}
