package service

import (
	"context"

	"qachat/internal/models"
	"qachat/internal/repository"
)

type Authorization interface {
	Register(username, password string) error
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Chat exposes the question-answering flow and the stored history.
type Chat interface {
	Ask(ctx context.Context, question string) (string, error)
	History(ctx context.Context) ([]models.ChatEntry, error)
}

// Generator produces an answer for a question that has never been asked
// before. It is the only expensive call in the system; the chat service
// must skip it whenever a cached answer exists.
type Generator interface {
	Generate(ctx context.Context, question string) (string, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Chat
}

// NewService wires the repository layer and the generation client into
// concrete services.
func NewService(repos *repository.Repository, gen Generator, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey),
		Chat:          NewChatService(repos.Chats, gen),
	}
}
