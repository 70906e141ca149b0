package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	WeatherAPIKey string // OpenWeatherMap
	NinjasAPIKey  string // API Ninjas (caloriesburned)

	FoodCachePath    string
	ReminderInterval time.Duration // 0 — напоминания выключены
}

// Load читает конфигурацию из окружения (.env подхватывается, если есть).
// Без токена бота запускаться бессмысленно; ключи внешних API опциональны —
// шлюзы при отказе отрабатывают свои фолбэки.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token == "" {
		return nil, fmt.Errorf("переменная окружения TELEGRAM_BOT_TOKEN не установлена")
	}

	cfg := &Config{
		TelegramToken: token,
		WeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		NinjasAPIKey:  os.Getenv("API_NINJAS_KEY"),
		FoodCachePath: os.Getenv("FOOD_CACHE_PATH"),
	}
	if cfg.FoodCachePath == "" {
		cfg.FoodCachePath = "food_cache.db"
	}

	if raw := os.Getenv("REMINDER_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("REMINDER_INTERVAL: %w", err)
		}
		cfg.ReminderInterval = d
	}

	return cfg, nil
}
