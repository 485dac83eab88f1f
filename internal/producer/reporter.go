// Package producer pushes messages to users without a request from them.
package producer

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"fintrack/internal/category"
	"fintrack/internal/model"
	"fintrack/internal/repository"
	"fintrack/internal/service"
)

// Reporter sends a daily summary to every user who kept notifications on
// and whose chat the bot has seen since startup.
type Reporter struct {
	bot      *tgbotapi.BotAPI
	reporter service.Reporter
	store    repository.Store
	chats    repository.Chats
	cron     *cron.Cron
	schedule string
}

func NewReporter(bot *tgbotapi.BotAPI, reporter service.Reporter, store repository.Store, chats repository.Chats,
	schedule string) *Reporter {
	return &Reporter{
		bot:      bot,
		reporter: reporter,
		store:    store,
		chats:    chats,
		cron:     cron.New(),
		schedule: schedule,
	}
}

func (r *Reporter) Produce(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		r.sendDailyReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("reporter producer couldn't add cron job: %v", err)
	}
	r.cron.Start()
	logrus.Infof("reporter producer started with schedule %q", r.schedule)
	return nil
}

func (r *Reporter) Stop() {
	<-r.cron.Stop().Done()
	logrus.Info("reporter producer stopped")
}

func (r *Reporter) sendDailyReports(ctx context.Context) {
	logrus.Info("reporter producer: sending daily reports")

	for userID, chatID := range r.chats.All(ctx) {
		user, err := r.store.Get(userID)
		if err != nil {
			logrus.Errorf("reporter producer couldn't get user %s: %v", userID, err)
			continue
		}
		if !user.Settings.Notifications {
			continue
		}

		stats, err := r.reporter.DailySummary(ctx, userID)
		if err != nil {
			logrus.Errorf("reporter producer couldn't build summary for user %s: %v", userID, err)
			continue
		}
		if stats.TotalIncome == 0 && stats.TotalExpenses == 0 {
			continue
		}

		msg := tgbotapi.NewMessage(chatID, formatDailyReport(stats))
		if _, err = r.bot.Send(msg); err != nil {
			logrus.Errorf("reporter producer couldn't send report to chat %d: %v", chatID, err)
			continue
		}
		logrus.Infof("reporter producer sent daily report to user %s", userID)
	}
}

func formatDailyReport(stats *model.Statistics) string {
	report := fmt.Sprintf(`📅 Итоги дня

📈 Доходы: %.0f₽
📉 Расходы: %.0f₽
💰 Баланс: %.0f₽
`, stats.TotalIncome, stats.TotalExpenses, stats.Balance)

	if len(stats.TopExpenses) > 0 {
		report += "\n🔝 Топ расходов:\n"
		for i, top := range stats.TopExpenses {
			report += fmt.Sprintf("%d. %s: %.0f₽\n", i+1, category.NameForCode(model.KindExpense, top.Category), top.Amount)
		}
	}
	return report
}
