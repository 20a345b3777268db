package server

import (
	"strings"

	"github.com/gofiber/websocket/v2"
)

// handleSocket answers every text frame, read as a FEN, with the JSON
// result for that position. The connection stays open across bad input.
func (s *Server) handleSocket(conn *websocket.Conn) {
	rid, _ := conn.Locals(requestIDKey).(string)
	log := s.log.With().Str("rid", rid).Logger()
	log.Debug().Msg("websocket opened")
	defer log.Debug().Msg("websocket closed")

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("websocket read")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		res := s.analyse(rid, strings.TrimSpace(string(message)), "")
		if err := conn.WriteJSON(res); err != nil {
			log.Warn().Err(err).Msg("websocket write")
			return
		}
	}
}
