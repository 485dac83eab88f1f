package repository

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fintrack/internal/model"
)

func TestFileStore_GetCreatesDefaultRecord(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Empty(t, u.Transactions)
	require.Empty(t, u.Goals)
	require.Empty(t, u.Budgets)
	require.Equal(t, model.DefaultCurrency, u.Currency)
	require.Equal(t, "light", u.Settings.Theme)
	require.True(t, u.Settings.Notifications)
	require.Equal(t, "ru", u.Settings.Language)

	again, err := store.Get("42")
	require.NoError(t, err)
	require.Equal(t, u, again)
}

func TestFileStore_GetReturnsCopy(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	u, err := store.Get("42")
	require.NoError(t, err)
	u.Transactions = append(u.Transactions, model.Transaction{ID: 99})

	fresh, err := store.Get("42")
	require.NoError(t, err)
	require.Empty(t, fresh.Transactions)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	err = store.Update("42", func(u *model.User) error {
		u.TxCounter++
		u.Transactions = append(u.Transactions, model.Transaction{
			ID: u.TxCounter, Kind: model.KindExpense, Category: "food",
			Amount: 300, Date: "2025-06-15T12:00:00Z", Timestamp: 1750000000,
		})
		u.Budgets["food"] = model.Budget{Amount: 500, CreatedAt: "2025-06-15T12:00:00Z"}
		u.GoalCounter++
		u.Goals = append(u.Goals, model.Goal{ID: u.GoalCounter, Name: "Trip", Target: 10000, CreatedAt: "2025-06-15T12:00:00Z"})
		return nil
	})
	require.NoError(t, err)

	before, err := store.Get("42")
	require.NoError(t, err)

	// simulated restart
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	after, err := reopened.Get("42")
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestFileStore_UpdateErrorLeavesStoreUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	boom := errors.New("validation failed")
	err = store.Update("42", func(u *model.User) error {
		u.Transactions = append(u.Transactions, model.Transaction{ID: 1})
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	ids, err := store.UserIDs()
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestFileStore_CorruptFileMovedAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	ids, err := store.UserIDs()
	require.NoError(t, err)
	require.Empty(t, ids)

	// the broken file survives under a .corrupt name
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Contains(t, entries[0].Name(), ".corrupt-")
}

func TestFileStore_LegacyLayoutMigrates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	legacy := `{
  "42": {
    "transactions": [
      {"id": 1, "type": "expense", "category": "food", "amount": 300, "description": "", "date": "2025-06-15T12:00:00Z", "timestamp": 1750000000},
      {"id": 2, "type": "income", "category": "salary", "amount": 1000, "description": "", "date": "2025-06-15T12:00:00Z", "timestamp": 1750000000}
    ],
    "budgets": null,
    "goals": null,
    "currency": "RUB",
    "settings": {"theme": "light", "notifications": true, "language": "ru"}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Len(t, u.Transactions, 2)
	require.NotNil(t, u.Budgets)
	require.NotNil(t, u.Goals)
	// the counter catches up with positionally assigned ids
	require.Equal(t, int64(2), u.TxCounter)

	// the next save writes the versioned layout
	require.NoError(t, store.Flush())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "version")
	require.Contains(t, doc, "users")
}

func TestFileStore_SaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Update("1", func(u *model.User) error { return nil }))

	// no temp leftovers beside the data file
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "data.json", entries[0].Name())
}

func TestFileStore_UserIDsSorted(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	for _, id := range []string{"9", "1", "5"} {
		require.NoError(t, store.Update(id, func(u *model.User) error { return nil }))
	}

	ids, err := store.UserIDs()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "5", "9"}, ids)
}
