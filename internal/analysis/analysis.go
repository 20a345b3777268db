// Package analysis builds the per-position report shown by the CLI and the
// server: the sorted SAN moves, optionally narrowed to one piece type, and
// whether the side to move is checkmated or stalemated.
package analysis

import (
	"github.com/lgbarn/termichess-go/internal/chess"
	"github.com/lgbarn/termichess-go/internal/engine"
	"github.com/lgbarn/termichess-go/internal/errors"
)

// Status classifies a position by its legal moves.
type Status string

const (
	Playing   Status = ""
	Checkmate Status = "checkmate"
	Stalemate Status = "stalemate"
)

// Report is the outcome of analysing one position.
type Report struct {
	Moves  []string
	Status Status
}

// Analyse parses fen and reports its legal moves. An empty piece lists
// every move; otherwise only moves of that piece type (p, n, b, r, q, k in
// either case) are listed, and any other letter lists none. Status always
// reflects every legal move.
func Analyse(fen, piece string) (*Report, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return AnalysePosition(&pos, fen, piece)
}

// AnalysePosition is Analyse for an already decoded position. fen is used
// only for error reporting.
func AnalysePosition(pos *chess.Position, fen, piece string) (*Report, error) {
	legal, err := engine.LegalMoves(pos)
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: fen, Field: "board"}
	}

	status, err := classify(pos, len(legal))
	if err != nil {
		return nil, &errors.PositionError{Err: err, FEN: fen, Field: "board"}
	}

	moves := legal
	if piece != "" {
		moves = nil
		if pt, ok := engine.PieceFromLetter(piece); ok {
			moves = engine.MovesOfPiece(pos, legal, pt)
		}
	}
	return &Report{Moves: engine.SANList(pos, moves), Status: status}, nil
}

func classify(pos *chess.Position, legal int) (Status, error) {
	if legal > 0 {
		return Playing, nil
	}
	check, err := engine.InCheck(pos)
	if err != nil {
		return Playing, err
	}
	if check {
		return Checkmate, nil
	}
	return Stalemate, nil
}
