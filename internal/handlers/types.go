package handlers

import (
	"courierfin/internal/config"
	"courierfin/internal/telegram_api"
)

// HandlerDependencies содержит все зависимости, необходимые для обработчиков.
// HandlerDependencies contains all dependencies required for handlers.
type HandlerDependencies struct {
	Config    *config.Config
	BotClient *telegram_api.BotClient
}

// BotHandler инкапсулирует логику обработки сообщений бота.
// Вся работа курьера идёт в Mini App; бот нужен только для входа.
type BotHandler struct {
	Deps HandlerDependencies
}

// NewBotHandler создает новый экземпляр BotHandler.
func NewBotHandler(deps HandlerDependencies) *BotHandler {
	if deps.Config == nil || deps.BotClient == nil {
		// Это критическая ошибка конфигурации, приложение не сможет работать корректно.
		panic("Не все зависимости для BotHandler были предоставлены.")
	}
	return &BotHandler{Deps: deps}
}
