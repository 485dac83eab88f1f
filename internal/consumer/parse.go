package consumer

import (
	"fmt"
	"strconv"
	"strings"

	"fintrack/internal/model"
)

// quickEntryKind reports whether text is a quick entry and which kind it
// records: a leading + is income, a leading - is expense.
func quickEntryKind(text string) (string, bool) {
	switch {
	case strings.HasPrefix(text, "+"):
		return model.KindIncome, true
	case strings.HasPrefix(text, "-"):
		return model.KindExpense, true
	}
	return "", false
}

// parseAmountInput splits "<amount> [описание]" and requires a positive
// amount.
func parseAmountInput(text string) (float64, string, error) {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("couldn't parse amount %q: %v", parts[0], err)
	}
	if amount <= 0 {
		return 0, "", fmt.Errorf("amount must be positive, got %v", amount)
	}
	description := ""
	if len(parts) == 2 {
		description = strings.TrimSpace(parts[1])
	}
	return amount, description, nil
}

func formatUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}
