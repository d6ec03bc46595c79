package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"qachat/internal/models"
)

type ChatSQLite struct {
	db *sql.DB
}

func NewChatSQLite(db *sql.DB) *ChatSQLite { return &ChatSQLite{db: db} }

var _ Chats = (*ChatSQLite)(nil)

// Fixed-width fractional seconds keep lexicographic and chronological
// order identical, so ORDER BY created_at is stable within one second.
const createdAtLayout = "2006-01-02 15:04:05.000000000"

const (
	insertChatSQL = `INSERT INTO chats (id, question, answer, created_at) VALUES (?, ?, ?, ?)`

	selectChatByQuestionSQL = `SELECT id, question, answer, created_at FROM chats WHERE question = ? ORDER BY created_at ASC LIMIT 1`

	selectAllChatsSQL = `SELECT id, question, answer, created_at FROM chats ORDER BY created_at ASC`
)

// FindByQuestion looks up an entry by exact question text.
// Returns (nil, nil) if no entry exists. If duplicates are present the
// earliest entry wins.
func (r *ChatSQLite) FindByQuestion(ctx context.Context, question string) (*models.ChatEntry, error) {
	var e models.ChatEntry
	err := r.db.QueryRowContext(ctx, selectChatByQuestionSQL, question).
		Scan(&e.ID, &e.Question, &e.Answer, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select chat entry: %w", err)
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return &e, nil
}

// Append inserts a new entry. If ID or CreatedAt are empty, they’re set.
// No uniqueness check happens here; first-ask serialization belongs to
// the service layer.
func (r *ChatSQLite) Append(ctx context.Context, e models.ChatEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	} else {
		e.CreatedAt = e.CreatedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertChatSQL,
		e.ID,
		e.Question,
		e.Answer,
		e.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("insert chat entry: %w", err)
	}
	return nil
}

// ListAll returns every entry ordered by insertion time, ascending.
func (r *ChatSQLite) ListAll(ctx context.Context) ([]models.ChatEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectAllChatsSQL)
	if err != nil {
		return nil, fmt.Errorf("select chat entries: %w", err)
	}
	defer rows.Close()

	out := make([]models.ChatEntry, 0, 64)
	for rows.Next() {
		var e models.ChatEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat entry: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
