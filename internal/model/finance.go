package model

import "errors"

// Transaction kinds
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

const DefaultCurrency = "RUB"

var (
	// ErrInvalidInput marks a request rejected before any mutation: a missing
	// field, a non-positive amount or an unknown transaction kind
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptStore marks a backing file that exists but can't be decoded
	ErrCorruptStore = errors.New("corrupt store file")
)

// Transaction is one record of expenses or income in a user's ledger.
// Date and Timestamp are captured at the same instant on insertion.
type Transaction struct {
	ID          int64   `json:"id"`
	Kind        string  `json:"type"` // expense or income
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`      // RFC 3339
	Timestamp   int64   `json:"timestamp"` // unix seconds
}

// Goal is a savings target. Saved starts at zero, Deadline is optional.
type Goal struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Saved     float64 `json:"saved"`
	Deadline  string  `json:"deadline,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// Budget is a per-category spending limit, keyed by category code in the
// user record, so it carries no id of its own.
type Budget struct {
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type Settings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// User holds everything the tracker knows about one user. The ledger is
// append only; the two counters issue ids that stay stable even if deletion
// is ever added, unlike the length-based ids the bot started with.
type User struct {
	Transactions []Transaction     `json:"transactions"`
	Budgets      map[string]Budget `json:"budgets"`
	Goals        []Goal            `json:"goals"`
	Currency     string            `json:"currency"`
	Settings     Settings          `json:"settings"`
	TxCounter    int64             `json:"tx_counter"`
	GoalCounter  int64             `json:"goal_counter"`
}

// NewUser returns a record with empty collections and default settings,
// created on first lookup of an id.
func NewUser() *User {
	return &User{
		Transactions: []Transaction{},
		Budgets:      make(map[string]Budget),
		Goals:        []Goal{},
		Currency:     DefaultCurrency,
		Settings: Settings{
			Theme:         "light",
			Notifications: true,
			Language:      "ru",
		},
	}
}

// Clone returns a deep copy so callers can read a record without holding
// the store lock.
func (u *User) Clone() *User {
	cp := *u
	cp.Transactions = make([]Transaction, len(u.Transactions))
	copy(cp.Transactions, u.Transactions)
	cp.Goals = make([]Goal, len(u.Goals))
	copy(cp.Goals, u.Goals)
	cp.Budgets = make(map[string]Budget, len(u.Budgets))
	for code, b := range u.Budgets {
		cp.Budgets[code] = b
	}
	return &cp
}

// CategoryTotal is one row of a top-expenses ranking.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Statistics is a period-bounded summary of a user's ledger.
type Statistics struct {
	Period        string          `json:"period"`
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	Balance       float64         `json:"balance"`
	TopExpenses   []CategoryTotal `json:"top_expenses"`
	Currency      string          `json:"currency"`
}
