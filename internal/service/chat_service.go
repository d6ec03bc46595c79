package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"qachat/internal/models"
	"qachat/internal/repository"
)

// FallbackAnswer is stored and returned when generation succeeds but
// yields no text.
const FallbackAnswer = "Sorry, I couldn't generate a response."

var ErrEmptyQuestion = errors.New("question is empty")

// ChatService is a read-through cache over the generation client: a
// cached question never reaches the generator again.
type ChatService struct {
	chats repository.Chats
	gen   Generator

	// one mutex per in-flight question so concurrent first asks of the
	// same question trigger a single generation call
	locks sync.Map // question -> *sync.Mutex
}

func NewChatService(chats repository.Chats, gen Generator) *ChatService {
	return &ChatService{chats: chats, gen: gen}
}

// Ask answers a question, from the cache when possible. On a miss it
// calls the generator, substitutes FallbackAnswer for blank output, and
// persists the pair. Nothing is persisted when generation fails.
func (s *ChatService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	// Fast path: exact-match lookup, no normalization.
	if answer, ok, err := s.cached(ctx, question); err != nil {
		return "", err
	} else if ok {
		return answer, nil
	}

	mu := s.questionLock(question)
	mu.Lock()
	defer mu.Unlock()

	// A concurrent ask may have filled the cache while we waited.
	if answer, ok, err := s.cached(ctx, question); err != nil {
		return "", err
	} else if ok {
		return answer, nil
	}

	text, err := s.gen.Generate(ctx, question)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		answer = FallbackAnswer
	}

	if err := s.chats.Append(ctx, models.ChatEntry{Question: question, Answer: answer}); err != nil {
		return "", fmt.Errorf("persist answer: %w", err)
	}
	return answer, nil
}

// History returns all stored entries in insertion order.
func (s *ChatService) History(ctx context.Context) ([]models.ChatEntry, error) {
	return s.chats.ListAll(ctx)
}

func (s *ChatService) cached(ctx context.Context, question string) (string, bool, error) {
	e, err := s.chats.FindByQuestion(ctx, question)
	if err != nil {
		return "", false, fmt.Errorf("lookup answer: %w", err)
	}
	if e == nil {
		return "", false, nil
	}
	return e.Answer, true, nil
}

func (s *ChatService) questionLock(question string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(question, &sync.Mutex{})
	return v.(*sync.Mutex)
}
