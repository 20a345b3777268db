package engine

import "github.com/lgbarn/termichess-go/internal/chess"

// IsLegal reports whether m, a pseudo-legal move of the side to move,
// leaves the mover's king unattacked. The check runs on a scratch copy of
// the board.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	after := ApplyMove(pos.Board, m)
	king, err := kingSquare(&after, pos.ToMove)
	if err != nil {
		return false
	}
	return !IsAttacked(&after, king, pos.ToMove)
}

// LegalMoves returns the legal moves of the side to move, in generation
// order. It fails when the side to move does not have exactly one king.
func LegalMoves(pos *chess.Position) ([]chess.Move, error) {
	if _, err := kingSquare(&pos.Board, pos.ToMove); err != nil {
		return nil, err
	}

	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if IsLegal(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal, nil
}
