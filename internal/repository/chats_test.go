package repository

import (
	"context"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestChatsLocalStorage_AddGet(t *testing.T) {
	s := NewChatsLocalStorage()

	chatID := int64(125)
	userID := "125"

	err := s.Add(context.Background(), userID, chatID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, len(s.m))

	id, err := s.Get(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, chatID, id)
}

func TestChatsLocalStorage_GetUnknownUser(t *testing.T) {
	s := NewChatsLocalStorage()

	_, err := s.Get(context.Background(), "404")
	require.Error(t, err)
}

func TestChatsLocalStorage_AllReturnsCopy(t *testing.T) {
	s := NewChatsLocalStorage()
	require.NoError(t, s.Add(context.Background(), "1", 1))
	require.NoError(t, s.Add(context.Background(), "2", 2))

	all := s.All(context.Background())
	require.Equal(t, map[string]int64{"1": 1, "2": 2}, all)

	all["3"] = 3
	require.Equal(t, 2, len(s.m))
}
