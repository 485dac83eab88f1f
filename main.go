package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fintrack/internal/config"
	"fintrack/internal/consumer"
	apphttp "fintrack/internal/http"
	"fintrack/internal/producer"
	"fintrack/internal/repository"
	"fintrack/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("%+v\n", err)
	}

	store, err := repository.NewFileStore(cfg.Storage.DataFile)
	if err != nil {
		logrus.Fatal(err)
	}
	chats := repository.NewChatsLocalStorage()

	validate := validator.New()
	recorder := service.NewRecorder(store, validate)
	reporter := service.NewReporter(store)
	planner := service.NewPlanner(store, validate)

	bot, err := tgbotapi.NewBotAPI(os.Getenv("TG_TOKEN"))
	if err != nil {
		logrus.Fatal(err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = cfg.Telegram.Timeout
	updatesChan := bot.GetUpdatesChan(updateConfig)

	tgBot := consumer.NewBot(bot, updatesChan, recorder, reporter, chats, cfg.Telegram.WebAppURL)
	go tgBot.Consume(ctx)

	dailyReporter := producer.NewReporter(bot, reporter, store, chats, cfg.Report.DailySchedule)
	if err = dailyReporter.Produce(ctx); err != nil {
		logrus.Fatal(err)
	}

	srv := apphttp.NewServer(":"+cfg.HTTP.Port, store, recorder, reporter, planner)
	go func() {
		logrus.Infof("http server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http server shutdown error: %v", err)
	}
	dailyReporter.Stop()
	if err = store.Flush(); err != nil {
		logrus.Errorf("couldn't flush store on shutdown: %v", err)
	}
	<-time.After(2 * time.Second)
}
