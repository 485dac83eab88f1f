package repository

import (
	"context"
	"fmt"
	"sync"
)

// Chats remembers which chat belongs to which user, so the daily reporter
// knows where to deliver summaries.
type Chats interface {
	Add(ctx context.Context, userID string, chatID int64) error
	Get(ctx context.Context, userID string) (int64, error)
	All(ctx context.Context) map[string]int64
}

type ChatsLocalStorage struct {
	mu sync.RWMutex
	m  map[string]int64
}

func NewChatsLocalStorage() *ChatsLocalStorage {
	return &ChatsLocalStorage{
		m: make(map[string]int64),
	}
}

func (l *ChatsLocalStorage) Add(_ context.Context, userID string, chatID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[userID] = chatID
	return nil
}

func (l *ChatsLocalStorage) Get(_ context.Context, userID string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.m[userID]
	if !ok {
		return 0, fmt.Errorf("repository.ChatsLocalStorage.Get chat for user %s doesn't exist", userID)
	}
	return v, nil
}

func (l *ChatsLocalStorage) All(_ context.Context) map[string]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := make(map[string]int64, len(l.m))
	for user, chat := range l.m {
		cp[user] = chat
	}
	return cp
}
