package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fintrack/internal/model"
	"fintrack/internal/repository"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	periodDay   = "day"
)

// Reporter aggregates a user's ledger into period-bounded statistics.
type Reporter interface {
	Statistics(ctx context.Context, userID, period string, topN int) (*model.Statistics, error)
	Balance(ctx context.Context, userID string) (*model.Statistics, error)
	DailySummary(ctx context.Context, userID string) (*model.Statistics, error)
}

type reporter struct {
	store repository.Store
	now   func() time.Time
}

func NewReporter(store repository.Store) *reporter {
	return &reporter{
		store: store,
		now:   time.Now,
	}
}

// Statistics sums income and expenses over the period and ranks the topN
// expense categories. An unknown period falls back to month.
func (r *reporter) Statistics(_ context.Context, userID, period string, topN int) (*model.Statistics, error) {
	u, err := r.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("service.Reporter couldn't get user in Statistics: %v", err)
	}
	if period != PeriodWeek && period != PeriodMonth && period != PeriodYear {
		period = PeriodMonth
	}
	start := periodStart(r.now(), period)
	return summarize(u, period, start.Unix(), topN), nil
}

// Balance sums the whole ledger with no period bound, the /balance view.
func (r *reporter) Balance(_ context.Context, userID string) (*model.Statistics, error) {
	u, err := r.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("service.Reporter couldn't get user in Balance: %v", err)
	}
	return summarize(u, "", 0, 3), nil
}

// DailySummary covers today from local midnight, for the daily report.
func (r *reporter) DailySummary(_ context.Context, userID string) (*model.Statistics, error) {
	u, err := r.store.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("service.Reporter couldn't get user in DailySummary: %v", err)
	}
	now := r.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return summarize(u, periodDay, start.Unix(), 3), nil
}

// periodStart computes the lower bound of a period. The week bound uses
// calendar-aware subtraction, so near a month start it lands in the previous
// month instead of producing a wrapped day-of-month.
func periodStart(now time.Time, period string) time.Time {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// summarize filters the ledger by timestamp >= since, totals both kinds and
// ranks expense categories. Ties keep the order in which a category first
// appears in the ledger.
func summarize(u *model.User, period string, since int64, topN int) *model.Statistics {
	totals := make(map[string]float64)
	var order []string
	stats := &model.Statistics{
		Period:      period,
		TopExpenses: []model.CategoryTotal{},
		Currency:    u.Currency,
	}

	for _, tx := range u.Transactions {
		if tx.Timestamp < since {
			continue
		}
		switch tx.Kind {
		case model.KindIncome:
			stats.TotalIncome += tx.Amount
		case model.KindExpense:
			stats.TotalExpenses += tx.Amount
			if _, ok := totals[tx.Category]; !ok {
				order = append(order, tx.Category)
			}
			totals[tx.Category] += tx.Amount
		}
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpenses

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	for _, category := range order {
		stats.TopExpenses = append(stats.TopExpenses, model.CategoryTotal{
			Category: category,
			Amount:   totals[category],
		})
	}
	return stats
}
