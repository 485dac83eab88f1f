package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

// Recorder appends transactions to a user's ledger. The ledger has no
// update or delete operation.
type Recorder interface {
	AddTransaction(ctx context.Context, userID, kind, category string, amount float64, description string) (*model.Transaction, error)
}

type recorder struct {
	store    repository.Store
	validate *validator.Validate
}

func NewRecorder(store repository.Store, validate *validator.Validate) *recorder {
	return &recorder{
		store:    store,
		validate: validate,
	}
}

type transactionInput struct {
	UserID   string  `validate:"required"`
	Kind     string  `validate:"required,oneof=income expense"`
	Category string  `validate:"required"`
	Amount   float64 `validate:"required,gt=0"`
}

// AddTransaction validates the input, assigns the next id from the user's
// counter, stamps both date representations at the same instant and persists
// the store. Nothing is written when validation fails.
func (r *recorder) AddTransaction(_ context.Context, userID, kind, category string, amount float64, description string) (*model.Transaction, error) {
	in := transactionInput{
		UserID:   userID,
		Kind:     kind,
		Category: category,
		Amount:   amount,
	}
	if err := r.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	var tx model.Transaction
	err := r.store.Update(userID, func(u *model.User) error {
		now := time.Now()
		u.TxCounter++
		tx = model.Transaction{
			ID:          u.TxCounter,
			Kind:        kind,
			Category:    category,
			Amount:      amount,
			Description: description,
			Date:        now.Format(time.RFC3339),
			Timestamp:   now.Unix(),
		}
		u.Transactions = append(u.Transactions, tx)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service.Recorder couldn't add transaction: %v", err)
	}
	return &tx, nil
}
