package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// Planner manages the goal list and the per-category budget map.
type Planner interface {
	AddGoal(ctx context.Context, userID, name string, target float64, deadline string) (*model.Goal, error)
	SetBudget(ctx context.Context, userID, category string, amount float64) (*model.Budget, error)
}

type planner struct {
	store    repository.Store
	validate *validator.Validate
}

func NewPlanner(store repository.Store, validate *validator.Validate) *planner {
	return &planner{
		store:    store,
		validate: validate,
	}
}

type goalInput struct {
	UserID string  `validate:"required"`
	Name   string  `validate:"required"`
	Target float64 `validate:"required,gt=0"`
}

type budgetInput struct {
	UserID   string  `validate:"required"`
	Category string  `validate:"required"`
	Amount   float64 `validate:"required,gt=0"`
}

// AddGoal appends a goal with saved initialized to zero and an id from the
// user's goal counter. Deadline may be empty.
func (p *planner) AddGoal(_ context.Context, userID, name string, target float64, deadline string) (*model.Goal, error) {
	in := goalInput{UserID: userID, Name: name, Target: target}
	if err := p.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var goal model.Goal
	err := p.store.Update(userID, func(u *model.User) error {
		u.GoalCounter++
		goal = model.Goal{
			ID:        u.GoalCounter,
			Name:      name,
			Target:    target,
			Saved:     0,
			Deadline:  deadline,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
		u.Goals = append(u.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.Planner couldn't add goal: %v", err)
	}
	return &goal, nil
}

// SetBudget upserts the budget for a category: a later call for the same
// category overwrites the earlier one without error.
func (p *planner) SetBudget(_ context.Context, userID, category string, amount float64) (*model.Budget, error) {
	in := budgetInput{UserID: userID, Category: category, Amount: amount}
	if err := p.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var budget model.Budget
	err := p.store.Update(userID, func(u *model.User) error {
		budget = model.Budget{
			Amount:    amount,
			CreatedAt: time.Now().Format(time.RFC3339),
		}
		u.Budgets[category] = budget
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.Planner couldn't set budget: %v", err)
	}
	return &budget, nil
}
