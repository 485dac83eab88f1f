package consumer

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fintrack/internal/category"
	"fintrack/internal/model"
	"fintrack/internal/service"
)

func (b *Bot) sendStartMenu(chatID int64, firstName string) error {
	text := fmt.Sprintf(`🎉 Привет, %s!

Я ваш персональный финансовый помощник! 💰

📱 Доступные функции:
• /app - Открыть веб-приложение
• /finance - Быстрый учет финансов
• /stats - Статистика
• /balance - Текущий баланс
• /help - Помощь

Выберите действие:`, firstName)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📱 Открыть приложение", b.webAppURL),
			tgbotapi.NewInlineKeyboardButtonData("💰 Финансы", "finance_menu"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", "show_stats"),
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", "settings"),
		),
	)
	return b.sendMarkdown(chatID, text, &markup)
}

func (b *Bot) sendHelp(chatID int64) error {
	text := `📖 Справка по командам:

🔹 Основные команды:
• /start - Главное меню
• /app - Открыть веб-приложение
• /finance - Быстрый учет финансов
• /stats - Показать статистику
• /balance - Текущий баланс

🔹 Быстрые действия:
• Напишите сумму с + для дохода: +5000
• Напишите сумму с - для расхода: -1500
• Добавьте описание: +5000 зарплата

💡 Совет: используйте веб-приложение для более удобной работы!`

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📱 Открыть приложение", b.webAppURL)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "main_menu")),
	)
	return b.sendMarkdown(chatID, text, &markup)
}

func (b *Bot) sendWebApp(chatID int64) error {
	text := `🚀 Finance Tracker App

Откройте веб-приложение для управления финансами:
• 📊 Дашборд со статистикой
• 💰 Управление транзакциями
• 🎯 Финансовые цели

Нажмите кнопку ниже, чтобы открыть приложение:`

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📱 Открыть Finance Tracker", b.webAppURL)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "main_menu")),
	)
	return b.sendMarkdown(chatID, text, &markup)
}

func (b *Bot) sendFinanceMenu(chatID int64, messageID int) error {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Доход", "add_income"),
			tgbotapi.NewInlineKeyboardButtonData("➖ Расход", "add_expense"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Статистика", "show_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "main_menu"),
		),
	)
	return b.editOrSend(chatID, messageID, "💰 Управление финансами\n\nВыберите действие:", &markup)
}

// sendCategorySelection shows the category grid of one kind, two per row.
func (b *Bot) sendCategorySelection(chatID int64, messageID int, kind string) error {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range category.ForKind(kind) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Label, fmt.Sprintf("category_%s_%s", kind, c.Code)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "finance_menu")))

	kindText := "расхода"
	if kind == model.KindIncome {
		kindText = "дохода"
	}
	markup := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	return b.editOrSend(chatID, messageID, fmt.Sprintf("Выберите категорию для %s:", kindText), &markup)
}

func (b *Bot) sendStatistics(ctx context.Context, userID, chatID int64, messageID int) error {
	stats, err := b.reporter.Statistics(ctx, formatUserID(userID), service.PeriodMonth, 3)
	if err != nil {
		return fmt.Errorf("sendStatistics couldn't compute statistics: %v", err)
	}

	text := fmt.Sprintf(`📊 Статистика за месяц

💰 Баланс: %.0f₽
📈 Доходы: %.0f₽
📉 Расходы: %.0f₽

🔝 Топ расходов:
`, stats.Balance, stats.TotalIncome, stats.TotalExpenses)

	for i, top := range stats.TopExpenses {
		text += fmt.Sprintf("%d. %s: %.0f₽\n", i+1, category.NameForCode(model.KindExpense, top.Category), top.Amount)
	}
	if len(stats.TopExpenses) == 0 {
		text += "Нет данных о расходах\n"
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📱 Подробная статистика", b.webAppURL)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "finance_menu")),
	)
	return b.editOrSend(chatID, messageID, text, &markup)
}

func (b *Bot) sendBalance(ctx context.Context, userID, chatID int64) error {
	stats, err := b.reporter.Balance(ctx, formatUserID(userID))
	if err != nil {
		return fmt.Errorf("sendBalance couldn't compute balance: %v", err)
	}

	mood := "⚖️ Баланс сбалансирован!"
	if stats.Balance > 0 {
		mood = "🎉 Отличная работа!"
	} else if stats.Balance < 0 {
		mood = "⚠️ Внимание к расходам!"
	}

	text := fmt.Sprintf(`💰 Текущий баланс

💵 Баланс: %.0f₽
📈 Доходы: %.0f₽
📉 Расходы: %.0f₽

%s`, stats.Balance, stats.TotalIncome, stats.TotalExpenses, mood)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "main_menu")),
	)
	return b.sendMarkdown(chatID, text, &markup)
}

func (b *Bot) sendSettings(chatID int64, messageID int) error {
	text := `⚙️ Настройки

Для изменения настроек используйте веб-приложение:
• 💱 Валюта
• 🎨 Тема оформления
• 🔔 Уведомления`

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL("📱 Открыть приложение", b.webAppURL)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔙 Назад", "main_menu")),
	)
	return b.editOrSend(chatID, messageID, text, &markup)
}
