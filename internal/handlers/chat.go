package handlers

import (
	"errors"
	"net/http"

	"qachat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errGenerateAnswer = "failed to generate answer"
	errLoadHistory    = "failed to load chat history"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request/response DTOs for the ask flow (HTTP and WebSocket).
type askRequest struct {
	Question string `json:"question" binding:"required"`
}

type askResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Ask a question
// @Description  Returns the cached answer when the exact question was asked before; otherwise generates, caches, and returns a new one.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body   askRequest  true  "Question payload"
// @Success      200   {object}  askResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api [post]
// @Security     SessionCookie
func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	answer, err := h.services.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusBadGateway, errGenerateAnswer, "ask_failed", err, "question", req.Question)
		return
	}

	c.JSON(http.StatusOK, askResponse{Question: req.Question, Answer: answer})
}

// home renders the chat page with the full stored history.
func (h *Handler) home(c *gin.Context) {
	entries, err := h.services.History(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("history_load_failed", "err", err)
		}
		c.String(http.StatusInternalServerError, errLoadHistory)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Username": c.GetString(ctxUsername),
		"Chats":    entries,
	})
}
