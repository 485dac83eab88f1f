package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

func newTestStore(t *testing.T) *repository.FileStore {
	t.Helper()
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return store
}

func TestRecorder_AddTransaction(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, validator.New())

	tx, err := rec.AddTransaction(context.Background(), "42", model.KindExpense, "food", 300, "обед")
	require.NoError(t, err)
	require.Equal(t, int64(1), tx.ID)
	require.Equal(t, model.KindExpense, tx.Kind)
	require.Equal(t, "food", tx.Category)
	require.Equal(t, float64(300), tx.Amount)
	require.Equal(t, "обед", tx.Description)
	require.NotZero(t, tx.Timestamp)
	require.NotEmpty(t, tx.Date)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Len(t, u.Transactions, 1)
	require.Equal(t, *tx, u.Transactions[len(u.Transactions)-1])

	tx2, err := rec.AddTransaction(context.Background(), "42", model.KindIncome, "salary", 1000, "")
	require.NoError(t, err)
	require.Equal(t, int64(2), tx2.ID)
}

func TestRecorder_AddTransactionInvalidInput(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, validator.New())

	tests := []struct {
		name     string
		userID   string
		kind     string
		category string
		amount   float64
	}{
		{"zero amount", "42", model.KindExpense, "food", 0},
		{"negative amount", "42", model.KindExpense, "food", -100},
		{"unknown kind", "42", "transfer", "food", 100},
		{"empty kind", "42", "", "food", 100},
		{"empty category", "42", model.KindExpense, "", 100},
		{"empty user", "", model.KindExpense, "food", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rec.AddTransaction(context.Background(), tt.userID, tt.kind, tt.category, tt.amount, "")
			require.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Empty(t, u.Transactions)
}

func TestRecorder_DateAndTimestampAgree(t *testing.T) {
	store := newTestStore(t)
	rec := NewRecorder(store, validator.New())

	tx, err := rec.AddTransaction(context.Background(), "42", model.KindIncome, "salary", 50000, "")
	require.NoError(t, err)

	parsed, err := time.Parse(time.RFC3339, tx.Date)
	require.NoError(t, err)
	drift := parsed.Unix() - tx.Timestamp
	if drift < 0 {
		drift = -drift
	}
	require.LessOrEqual(t, drift, int64(1))
}