// Package server exposes the rules engine over HTTP and websockets.
package server

import (
	"context"
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/lgbarn/termichess-go/internal/config"
)

// Server is the termichess HTTP API.
type Server struct {
	app *fiber.App
	cfg *config.Config
	log zerolog.Logger
}

// New builds a server and registers its routes.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	s := &Server{cfg: cfg, log: log}

	s.app = fiber.New(fiber.Config{
		AppName:               "termichess",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(RequestID())
	s.app.Use(RequestLogger(log))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + RequestIDHeader,
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s.app.Get("/healthz", s.handleHealth)

	api := s.app.Group("/api")
	api.Get("/moves", s.handleMoves)
	api.Post("/moves/batch", s.handleBatch)
	api.Get("/perft", s.handlePerft)

	s.app.Use("/ws", requireUpgrade())
	s.app.Get("/ws/moves", websocket.New(s.handleSocket, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown is called.
func (s *Server) Listen() error {
	s.log.Info().Str("addr", s.cfg.Server.ListenAddr).Msg("listening")
	return s.app.Listen(s.cfg.Server.ListenAddr)
}

// Shutdown stops accepting connections and waits for open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// handleError renders every error as {"error": "..."}.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error().Err(err).Str("rid", GetRequestID(c)).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// requireUpgrade rejects plain HTTP requests to websocket routes.
func requireUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}
