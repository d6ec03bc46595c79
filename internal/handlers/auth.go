package handlers

import (
	"errors"
	"net/http"

	"qachat/internal/service"

	"github.com/gin-gonic/gin"
)

// User-visible plain-text messages for the form flows.
const (
	msgUsernameTaken      = "Username already exists. Try another."
	msgInvalidCredentials = "Invalid credentials. Try again."
	msgRegistrationFailed = "Registration failed. Try again."
)

// sessionMaxAge matches the token TTL issued by the auth service.
const sessionMaxAge = 3600

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "redirect to /login"
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := h.services.Register(username, password); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.String(http.StatusOK, msgUsernameTaken)
			return
		}
		if h.log != nil {
			h.log.Infow("register_failed", "username", username, "err", err)
		}
		c.String(http.StatusBadRequest, msgRegistrationFailed)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "sets session cookie, redirect to /"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.services.GenerateToken(username, password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", username, "err", err)
		}
		c.String(http.StatusOK, msgInvalidCredentials)
		return
	}

	c.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// @Summary      Log out
// @Tags         auth
// @Success      302  "clears session cookie, redirect to /login"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
