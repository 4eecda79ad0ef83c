package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raspverry/desktop-partner/internal/metrics"
	"github.com/raspverry/desktop-partner/internal/phoneme"
	"github.com/raspverry/desktop-partner/internal/viseme"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // local desktop shell only
}

// StreamMessage is one websocket frame on the viseme stream.
type StreamMessage struct {
	Type     string        `json:"type"` // viseme, done, error
	Event    *viseme.Event `json:"event,omitempty"`
	Duration float64       `json:"duration,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// streamHandler drives an avatar live: the client sends one generate
// request, and the server pushes each viseme event as its own frame at
// the event's start time, closing with a done frame. This lets the
// desktop shell animate without scheduling the timeline itself.
func (s *Server) streamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.ActiveStreams.Inc()
	defer metrics.ActiveStreams.Dec()

	var req GenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(StreamMessage{Type: "error", Message: "invalid request"})
		return
	}
	applyGenerateDefaults(&req)

	result := s.engine.FromText(r.Context(), req.Text, phoneme.Language(req.Language), req.Duration)
	if !result.Success {
		conn.WriteJSON(StreamMessage{Type: "error", Message: result.Message})
		return
	}

	start := time.Now()
	for i := range result.Visemes {
		ev := result.Visemes[i]

		// Pace frames to the event start times.
		due := time.Duration(ev.Time * float64(time.Second))
		if wait := due - time.Since(start); wait > 0 {
			select {
			case <-time.After(wait):
			case <-r.Context().Done():
				return
			}
		}

		if err := conn.WriteJSON(StreamMessage{Type: "viseme", Event: &ev}); err != nil {
			s.logger.Debug().Err(err).Msg("Viseme stream client gone")
			return
		}
	}

	conn.WriteJSON(StreamMessage{Type: "done", Duration: result.Duration})
}
