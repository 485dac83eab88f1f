package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"fintrack/internal/model"
)

func TestPlanner_AddGoal(t *testing.T) {
	store := newTestStore(t)
	pl := NewPlanner(store, validator.New())

	goal, err := pl.AddGoal(context.Background(), "42", "Trip", 10000, "")
	require.NoError(t, err)
	require.Equal(t, int64(1), goal.ID)
	require.Equal(t, "Trip", goal.Name)
	require.Equal(t, float64(10000), goal.Target)
	require.Zero(t, goal.Saved)
	require.Empty(t, goal.Deadline)
	require.NotEmpty(t, goal.CreatedAt)

	second, err := pl.AddGoal(context.Background(), "42", "Car", 500000, "2026-01-01")
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)
	require.Equal(t, "2026-01-01", second.Deadline)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Len(t, u.Goals, 2)
}

func TestPlanner_AddGoalInvalidInput(t *testing.T) {
	store := newTestStore(t)
	pl := NewPlanner(store, validator.New())

	_, err := pl.AddGoal(context.Background(), "42", "", 10000, "")
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = pl.AddGoal(context.Background(), "42", "Trip", 0, "")
	require.ErrorIs(t, err, model.ErrInvalidInput)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Empty(t, u.Goals)
}

func TestPlanner_SetBudgetUpsert(t *testing.T) {
	store := newTestStore(t)
	pl := NewPlanner(store, validator.New())

	_, err := pl.SetBudget(context.Background(), "42", "food", 500)
	require.NoError(t, err)

	budget, err := pl.SetBudget(context.Background(), "42", "food", 700)
	require.NoError(t, err)
	require.Equal(t, float64(700), budget.Amount)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Len(t, u.Budgets, 1)
	require.Equal(t, float64(700), u.Budgets["food"].Amount)
}

func TestPlanner_SetBudgetInvalidInput(t *testing.T) {
	store := newTestStore(t)
	pl := NewPlanner(store, validator.New())

	_, err := pl.SetBudget(context.Background(), "42", "food", -1)
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = pl.SetBudget(context.Background(), "", "food", 100)
	require.ErrorIs(t, err, model.ErrInvalidInput)

	u, err := store.Get("42")
	require.NoError(t, err)
	require.Empty(t, u.Budgets)
}
