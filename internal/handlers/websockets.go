package handlers

import (
	"errors"
	"net/http"
	"time"

	"qachat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsAsk is the ask flow over a WebSocket: each {"question": ...} frame
// from the client is answered with one envelope. Session gating happens
// in middleware before the upgrade.
func (h *Handler) wsAsk(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)

	for {
		var req askRequest
		if err := conn.ReadJSON(&req); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}

		if req.Question == "" {
			if !h.wsWrite(conn, wsEnvelope{Type: "error", Error: "question is required"}) {
				return
			}
			continue
		}

		answer, err := h.services.Ask(c.Request.Context(), req.Question)
		if err != nil {
			if h.log != nil {
				h.log.Errorw("ws_ask_failed", "err", err, "question", req.Question)
			}
			msg := errGenerateAnswer
			if errors.Is(err, service.ErrEmptyQuestion) {
				msg = "question is required"
			}
			if !h.wsWrite(conn, wsEnvelope{Type: "error", Error: msg}) {
				return
			}
			continue
		}

		if !h.wsWrite(conn, wsEnvelope{Type: "answer", Data: askResponse{Question: req.Question, Answer: answer}}) {
			return
		}
	}
}

// wsWrite sends one envelope with a write deadline; false means the
// connection is gone.
func (h *Handler) wsWrite(conn *websocket.Conn, env wsEnvelope) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(env); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed", "err", err)
		}
		return false
	}
	return true
}
