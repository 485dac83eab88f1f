package consumer

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"fintrack/internal/category"
	"fintrack/internal/model"
)

func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	if pending, ok := b.pending[chatID]; ok {
		return b.completePendingTransaction(ctx, message, pending)
	}

	if kind, ok := quickEntryKind(message.Text); ok {
		return b.handleQuickEntry(ctx, message, kind)
	}

	return b.sendText(chatID, `💡 Используйте команды:
• /start - главное меню
• /finance - управление финансами
• /help - справка

Или введите сумму с + или - для быстрого добавления транзакции!`)
}

// completePendingTransaction finishes the category→amount flow: the message
// carries "<amount> [описание]" for the category picked earlier.
func (b *Bot) completePendingTransaction(ctx context.Context, message *tgbotapi.Message, pending pendingTransaction) error {
	amount, description, err := parseAmountInput(message.Text)
	if err != nil {
		logrus.Errorf("pending transaction input error: %v", err)
		return b.sendText(message.Chat.ID, "❌ Неверный формат суммы! Введите число больше 0.")
	}

	tx, err := b.recorder.AddTransaction(ctx, formatUserID(message.From.ID), pending.kind, pending.category, amount, description)
	if err != nil {
		logrus.Errorf("couldn't add transaction: %v", err)
		return b.sendText(message.Chat.ID, "❌ Ошибка при добавлении транзакции!")
	}
	delete(b.pending, message.Chat.ID)

	return b.sendText(message.Chat.ID, fmt.Sprintf(`✅ %s добавлен!

💰 Сумма: %.0f₽
📂 Категория: %s
📝 Описание: %s

Используйте /stats для просмотра статистики!`,
		kindTitle(tx.Kind), tx.Amount, category.NameForCode(tx.Kind, tx.Category), orNotSet(tx.Description)))
}

// handleQuickEntry records "+5000 зарплата" / "-1500 обед" style messages
// against the default category.
func (b *Bot) handleQuickEntry(ctx context.Context, message *tgbotapi.Message, kind string) error {
	amount, description, err := parseAmountInput(message.Text[1:])
	if err != nil {
		logrus.Errorf("quick entry input error: %v", err)
		return b.sendText(message.Chat.ID, "❌ Неверный формат суммы! Пример: +5000 или -1500")
	}

	tx, err := b.recorder.AddTransaction(ctx, formatUserID(message.From.ID), kind, "other", amount, description)
	if err != nil {
		logrus.Errorf("couldn't add quick transaction: %v", err)
		return b.sendText(message.Chat.ID, "❌ Ошибка при добавлении транзакции!")
	}

	logrus.Infof("user %d quick-added %s %.2f", message.From.ID, tx.Kind, tx.Amount)
	return b.sendText(message.Chat.ID, fmt.Sprintf(`✅ %s добавлен!

💰 Сумма: %.0f₽
📝 Описание: %s

💡 Для более детального учета используйте /finance или /app!`,
		kindTitle(tx.Kind), tx.Amount, orNotSet(tx.Description)))
}

func kindTitle(kind string) string {
	if kind == model.KindIncome {
		return "Доход"
	}
	return "Расход"
}

func orNotSet(description string) string {
	if description == "" {
		return "Не указано"
	}
	return description
}
