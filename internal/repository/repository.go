package repository

import (
	"context"
	"database/sql"

	"qachat/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Chats is the answer cache: question/answer pairs keyed by exact
// question text. Lookups are case- and whitespace-sensitive.
type Chats interface {
	FindByQuestion(ctx context.Context, question string) (*models.ChatEntry, error)
	Append(ctx context.Context, e models.ChatEntry) error
	ListAll(ctx context.Context) ([]models.ChatEntry, error)
}

type Repository struct {
	Auth  Authorization
	Chats Chats
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:  NewUserRepository(db),
		Chats: NewChatSQLite(db),
	}
}
