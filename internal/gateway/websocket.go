package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

const maxFrameSize = 4096

// handleWebSocket answers every request frame with exactly one response
// frame, in order. A bad frame gets an error response; the session stays open.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxFrameSize)
	s.logger.Debug("websocket session opened", r.RemoteAddr)

	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", err.Error())
			}
			return
		}

		if err := conn.WriteJSON(s.answerFrame(frame)); err != nil {
			s.logger.Error("websocket write failed", err)
			return
		}
	}
}

func (s *Server) answerFrame(frame []byte) cipherResponse {
	var req cipherRequest
	if err := json.Unmarshal(frame, &req); err != nil {
		return cipherResponse{Error: "invalid request frame"}
	}

	result, err := s.process(req)
	if err != nil {
		return cipherResponse{Error: err.Error()}
	}
	return cipherResponse{Result: result}
}
