// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	TelegramToken    string
	DatabaseURL      string
	AppEnv           string
	BotUsername      string
	WebAppName       string // короткое имя Mini App для ссылки t.me/<bot>/<app>
	Port             string
	LeaderboardLimit int // число строк рейтинга по умолчанию
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AppEnv:        os.Getenv("ENV"),
		BotUsername:   os.Getenv("BOT_USERNAME"),
		WebAppName:    os.Getenv("WEBAPP_NAME"),
		Port:          os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	limitStr := os.Getenv("LEADERBOARD_LIMIT")
	if limitStr == "" {
		cfg.LeaderboardLimit = 5
	} else {
		limit, errParse := strconv.Atoi(limitStr)
		if errParse != nil || limit <= 0 {
			log.Printf("Предупреждение: некорректное значение LEADERBOARD_LIMIT ('%s'): %v. Используется значение по умолчанию 5.", limitStr, errParse)
			cfg.LeaderboardLimit = 5
		} else {
			cfg.LeaderboardLimit = limit
		}
	}

	if cfg.TelegramToken == "" {
		log.Println("Критическая ошибка: TELEGRAM_APITOKEN не установлен.")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Критическая ошибка: DATABASE_URL не установлен.")
	}
	if cfg.BotUsername == "" {
		log.Println("Предупреждение: BOT_USERNAME не установлен. Ссылки на Mini App работать не будут.")
	}
	if cfg.WebAppName == "" {
		log.Println("Предупреждение: WEBAPP_NAME не установлен, используется 'app'.")
		cfg.WebAppName = "app"
	}

	log.Println("Конфигурация загружена.")
	return cfg, nil
}

// WebAppLink возвращает прямую ссылку на Mini App.
func (c *Config) WebAppLink() string {
	if c.BotUsername == "" {
		return ""
	}
	return "https://t.me/" + c.BotUsername + "/" + c.WebAppName
}
