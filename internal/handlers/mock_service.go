package handlers

import (
	"context"
	"net/http"
	"sync"

	"qachat/internal/models"
	"qachat/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerErr   error
	genTokenToken string
	genTokenErr   error
	parseUsername string
	parseErr      error

	lastRegisterUsername string
	lastRegisterPassword string
	lastGenUsername      string
	lastGenPassword      string
	lastParseToken       string
}

func (m *mockAuth) Register(username, password string) error {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerErr
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUsername, m.parseErr
}

// mockChat is mutex-guarded: the websocket tests exercise it from the
// server goroutine while assertions run on the test goroutine.
type mockChat struct {
	mu sync.Mutex

	askAnswer   string
	askErr      error
	historyResp []models.ChatEntry
	historyErr  error

	askCalls     int
	lastQuestion string
}

func (m *mockChat) Ask(ctx context.Context, question string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.askCalls++
	m.lastQuestion = question
	return m.askAnswer, m.askErr
}

func (m *mockChat) History(ctx context.Context) ([]models.ChatEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyResp, m.historyErr
}

func (m *mockChat) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.askCalls
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func sessionCookieHeader(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookie, Value: token}
}
