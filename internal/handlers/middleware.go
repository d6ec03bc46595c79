package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	ctxUsername   = "username"
)

// sessionUsername resolves the current session to a username. The session
// cookie is checked first; a Bearer token is accepted for non-browser
// clients.
func (h *Handler) sessionUsername(c *gin.Context) (string, bool) {
	token := ""
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		token = cookie
	} else if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}
		token = parts[1]
	}
	if token == "" {
		return "", false
	}

	username, err := h.services.ParseToken(token)
	if err != nil {
		return "", false
	}
	return username, true
}

// sessionPageMiddleware gates HTML pages: anonymous visitors are sent to
// the login page.
func (h *Handler) sessionPageMiddleware(c *gin.Context) {
	username, ok := h.sessionUsername(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Set(ctxUsername, username)
	c.Next()
}

// sessionAPIMiddleware gates JSON endpoints. Anonymous requests fail
// before any cache or generator work happens.
func (h *Handler) sessionAPIMiddleware(c *gin.Context) {
	username, ok := h.sessionUsername(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Set(ctxUsername, username)
	c.Next()
}
