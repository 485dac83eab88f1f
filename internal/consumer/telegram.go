// Package consumer
package consumer

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"fintrack/internal/repository"
	"fintrack/internal/service"
)

const (
	startCommand   = "start"
	helpCommand    = "help"
	appCommand     = "app"
	financeCommand = "finance"
	statsCommand   = "stats"
	balanceCommand = "balance"
)

// pendingTransaction is the state of a chat that picked a category and owes
// the bot an amount.
type pendingTransaction struct {
	kind     string
	category string
}

// Bot polls the telegram server for updates and drives the finance tracker.
// Updates are handled one at a time, so pending needs no lock.
type Bot struct {
	bot         *tgbotapi.BotAPI
	updatesChan tgbotapi.UpdatesChannel
	recorder    service.Recorder
	reporter    service.Reporter
	chats       repository.Chats
	webAppURL   string
	pending     map[int64]pendingTransaction
}

func NewBot(bot *tgbotapi.BotAPI, updatesChan tgbotapi.UpdatesChannel, recorder service.Recorder, reporter service.Reporter,
	chats repository.Chats, webAppURL string) *Bot {
	return &Bot{
		bot:         bot,
		updatesChan: updatesChan,
		recorder:    recorder,
		reporter:    reporter,
		chats:       chats,
		webAppURL:   webAppURL,
		pending:     make(map[int64]pendingTransaction),
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Infof("telegram bot %s started consuming", b.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("bot consumer stopped: %v", ctx.Err())
			return

		case update := <-b.updatesChan:
			switch {
			case update.CallbackQuery != nil:
				b.rememberChat(ctx, update.CallbackQuery.From.ID, update.CallbackQuery.Message.Chat.ID)
				if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
					logrus.Errorf("callback error: %v", err)
				}
			case update.Message != nil:
				b.rememberChat(ctx, update.Message.From.ID, update.Message.Chat.ID)
				if err := b.handleMessage(ctx, update.Message); err != nil {
					logrus.Errorf("message error: %v", err)
				}
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	if message.IsCommand() {
		return b.handleCommand(ctx, message)
	}
	return b.handleText(ctx, message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) error {
	logrus.Infof("received command /%s from chat %d", message.Command(), message.Chat.ID)

	switch message.Command() {
	case startCommand:
		return b.sendStartMenu(message.Chat.ID, message.From.FirstName)
	case helpCommand:
		return b.sendHelp(message.Chat.ID)
	case appCommand:
		return b.sendWebApp(message.Chat.ID)
	case financeCommand:
		return b.sendFinanceMenu(message.Chat.ID, 0)
	case statsCommand:
		return b.sendStatistics(ctx, message.From.ID, message.Chat.ID, 0)
	case balanceCommand:
		return b.sendBalance(ctx, message.From.ID, message.Chat.ID)
	default:
		logrus.Infof("unknown command: %s", message.Text)
		return b.sendText(message.Chat.ID, "Неизвестная команда. Используйте /help")
	}
}

func (b *Bot) rememberChat(ctx context.Context, userID int64, chatID int64) {
	if err := b.chats.Add(ctx, strconv.FormatInt(userID, 10), chatID); err != nil {
		logrus.Errorf("couldn't remember chat %d: %v", chatID, err)
	}
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		return fmt.Errorf("sendText, telegram bot couldn't send message: %v", err)
	}
	return nil
}

func (b *Bot) sendMarkdown(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := b.bot.Send(msg); err != nil {
		return fmt.Errorf("sendMarkdown, telegram bot couldn't send message: %v", err)
	}
	return nil
}

// editOrSend replaces the message a callback came from, or sends a fresh one
// for command-driven entry points (messageID 0).
func (b *Bot) editOrSend(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	if messageID == 0 {
		return b.sendMarkdown(chatID, text, markup)
	}
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		edit.ReplyMarkup = markup
	}
	if _, err := b.bot.Send(edit); err != nil {
		return fmt.Errorf("editOrSend, telegram bot couldn't edit message: %v", err)
	}
	return nil
}
