package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/termichess-go/internal/analysis"
	"github.com/lgbarn/termichess-go/internal/engine"
	"github.com/lgbarn/termichess-go/internal/errors"
	"github.com/lgbarn/termichess-go/internal/output"
)

// BatchRequest is the body of POST /api/moves/batch.
type BatchRequest struct {
	FENs  []string `json:"fens"`
	Piece string   `json:"piece"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleMoves serves GET /api/moves?fen=...&piece=p
func (s *Server) handleMoves(c *fiber.Ctx) error {
	fen := c.Query("fen")
	if fen == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing fen parameter")
	}

	res := s.analyse(GetRequestID(c), fen, c.Query("piece"))
	if res.Failed() {
		return c.Status(fiber.StatusBadRequest).JSON(res)
	}
	return c.JSON(res)
}

// handleBatch serves POST /api/moves/batch. Results keep request order and
// each failed position carries its own error.
func (s *Server) handleBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid batch body: "+err.Error())
	}
	if len(req.FENs) > s.cfg.Server.BatchLimit {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "too many positions")
	}

	rid := GetRequestID(c)
	results := make([]*output.Result, len(req.FENs))
	g, ctx := errgroup.WithContext(c.UserContext())
	if s.cfg.Analysis.Workers > 0 {
		g.SetLimit(s.cfg.Analysis.Workers)
	}
	for i, fen := range req.FENs {
		i, fen := i, fen
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyse(rid, fen, req.Piece)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	}

	return c.JSON(output.JSONOutput{Results: results})
}

// handlePerft serves GET /api/perft?fen=...&depth=N&piece=p. The piece
// narrows the move list only; the divide covers every root move.
func (s *Server) handlePerft(c *fiber.Ctx) error {
	fen := c.Query("fen", engine.InitialFEN)
	depth := c.QueryInt("depth", 1)
	if depth < 1 || depth > s.cfg.Analysis.MaxPerftDepth {
		return fiber.NewError(fiber.StatusBadRequest,
			errors.Wrapf(errors.ErrInvalidDepth, "depth %d outside 1..%d", depth, s.cfg.Analysis.MaxPerftDepth).Error())
	}

	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(output.NewResult(fen, nil, err))
	}
	rep, err := analysis.AnalysePosition(&pos, fen, c.Query("piece"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(output.NewResult(fen, nil, err))
	}
	entries, err := engine.Divide(c.UserContext(), pos, depth, s.cfg.Analysis.Workers)
	if err != nil {
		if c.UserContext().Err() != nil {
			return err
		}
		return c.Status(fiber.StatusBadRequest).JSON(output.NewResult(fen, nil, err))
	}

	res := output.NewReportResult(fen, rep, nil)
	res.SetDivide(depth, entries)
	return c.JSON(res)
}

// analyse lists the moves of one position, restricted to piece when set,
// and logs failures at debug level.
func (s *Server) analyse(rid, fen, piece string) *output.Result {
	rep, err := analysis.Analyse(fen, piece)
	if err != nil {
		var posErr *errors.PositionError
		field := ""
		if stderrors.As(err, &posErr) {
			field = posErr.Field
		}
		s.log.Debug().Str("rid", rid).Str("fen", fen).Str("field", field).Err(err).Msg("rejected position")
	}
	return output.NewReportResult(fen, rep, err)
}
