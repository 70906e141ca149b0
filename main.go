package main

import (
	"log"

	"telegram-health-coach/internal/config"
	"telegram-health-coach/internal/gateways"
	"telegram-health-coach/internal/handlers"
	"telegram-health-coach/internal/scheduler"
	"telegram-health-coach/internal/storage"
	"telegram-health-coach/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.Load()
	utils.Must(err)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)
	log.Printf("Авторизован как @%s", bot.Self.UserName)

	cache, err := storage.NewFoodCache(cfg.FoodCachePath)
	utils.Must(err)
	defer cache.Close()

	h := handlers.NewHandler(
		bot,
		storage.NewStore(),
		gateways.NewWeatherClient(cfg.WeatherAPIKey),
		gateways.NewFoodClient(cache),
		gateways.NewExerciseClient(cfg.NinjasAPIKey),
	)

	sch, err := scheduler.Start(h, cfg.ReminderInterval)
	utils.Must(err)
	if sch != nil {
		defer func() { _ = sch.Shutdown() }()
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		go h.HandleUpdate(upd)
	}
}
