package consumer

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"fintrack/internal/category"
	"fintrack/internal/model"
)

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if _, err := b.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		logrus.Errorf("couldn't answer callback query: %v", err)
	}

	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	logrus.Infof("received callback %q from chat %d", query.Data, chatID)

	switch {
	case query.Data == "main_menu":
		delete(b.pending, chatID)
		return b.sendStartMenu(chatID, query.From.FirstName)
	case query.Data == "finance_menu":
		delete(b.pending, chatID)
		return b.sendFinanceMenu(chatID, messageID)
	case query.Data == "show_stats":
		return b.sendStatistics(ctx, query.From.ID, chatID, messageID)
	case query.Data == "settings":
		return b.sendSettings(chatID, messageID)
	case query.Data == "add_income":
		return b.sendCategorySelection(chatID, messageID, model.KindIncome)
	case query.Data == "add_expense":
		return b.sendCategorySelection(chatID, messageID, model.KindExpense)
	case strings.HasPrefix(query.Data, "category_"):
		return b.handleCategoryPick(chatID, messageID, query.Data)
	default:
		logrus.Infof("unknown callback: %s", query.Data)
		return nil
	}
}

// handleCategoryPick parses "category_<kind>_<code>" and arms the pending
// transaction for the chat. Codes always come from our own keyboards, but a
// stale keyboard can still deliver one the registry no longer knows.
func (b *Bot) handleCategoryPick(chatID int64, messageID int, data string) error {
	parts := strings.SplitN(data, "_", 3)
	if len(parts) != 3 || !category.Known(parts[1], parts[2]) {
		return fmt.Errorf("handleCategoryPick received invalid callback data: %s", data)
	}
	kind, code := parts[1], parts[2]

	b.pending[chatID] = pendingTransaction{kind: kind, category: code}

	kindText := "расхода"
	if kind == model.KindIncome {
		kindText = "дохода"
	}
	text := fmt.Sprintf(`💰 Введите сумму %s для категории '%s':

Примеры:
• 5000
• 5000 зарплата
• 1500.50 обед`, kindText, category.NameForCode(kind, code))

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Отмена", "finance_menu")),
	)
	return b.editOrSend(chatID, messageID, text, &markup)
}
