package engine

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/termichess-go/internal/chess"
	"github.com/lgbarn/termichess-go/internal/errors"
)

// Perft counts the leaf nodes of the legal move tree of pos to the given
// depth. Depth 0 counts the position itself. The side to move at the root
// must have exactly one king.
func Perft(pos chess.Position, depth int) (uint64, error) {
	if depth < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidDepth, "depth %d", depth)
	}
	if depth > 0 {
		if _, err := kingSquare(&pos.Board, pos.ToMove); err != nil {
			return 0, err
		}
	}
	return perft(&pos, depth), nil
}

// perft counts leaves below pos. A side to move without exactly one king
// has no legal moves, so a kingless opponent ends the branch.
func perft(pos *chess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves, err := LegalMoves(pos)
	if err != nil {
		return 0
	}
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next := Play(*pos, m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	SAN   string
	Nodes uint64
}

// Divide runs perft to depth-1 below every legal root move, with at most
// workers subtrees counted concurrently (workers < 1 means unbounded).
// Entries are sorted by SAN.
func Divide(ctx context.Context, pos chess.Position, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidDepth, "divide depth %d", depth)
	}
	moves, err := LegalMoves(&pos)
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next := Play(pos, m)
			entries[i] = DivideEntry{Move: m, SAN: SAN(&pos, m), Nodes: perft(&next, depth-1)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].SAN < entries[j].SAN })
	return entries, nil
}
