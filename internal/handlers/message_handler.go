// Файл: internal/handlers/message_handler.go

package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"courierfin/internal/db"
)

// HandleMessage обрабатывает входящие сообщения от Telegram.
// Бот намеренно простой: /start регистрирует курьера и даёт кнопку
// Mini App, всё остальное — подсказка воспользоваться приложением.
func (bh *BotHandler) HandleMessage(update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	message := update.Message
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	log.Printf("HandleMessage: ChatID=%d, Text='%s'", chatID, text)

	if message.IsCommand() {
		switch message.Command() {
		case "start":
			var username, firstName, lastName string
			if message.From != nil {
				username = message.From.UserName
				firstName = message.From.FirstName
				lastName = message.From.LastName
			}
			user, err := db.RegisterUser(chatID, username, firstName, lastName)
			if err != nil {
				log.Printf("HandleMessage: /start: ошибка регистрации курьера chatID %d: %v", chatID, err)
				bh.Deps.BotClient.SendMessage(chatID, "❌ Произошла ошибка при обработке ваших данных. Попробуйте еще раз.")
				return
			}
			bh.sendWelcome(chatID, user.FirstName)
		case "help":
			bh.Deps.BotClient.SendMessage(chatID,
				"Бот ведёт учёт смен курьера: доход за время и заказы, вычет, чистая прибыль, рейтинг за месяц.\n"+
					"Все действия — в приложении по кнопке из /start.")
		default:
			bh.Deps.BotClient.SendMessage(chatID, "Неизвестная команда. Откройте приложение через /start.")
		}
		return
	}

	// Обычный текст бот не обрабатывает: ввод смен идёт через Mini App.
	bh.Deps.BotClient.SendMessage(chatID, "Для работы со сменами откройте приложение: /start")
}

// sendWelcome отправляет приветствие с кнопкой открытия Mini App.
func (bh *BotHandler) sendWelcome(chatID int64, firstName string) {
	greeting := "Привет"
	if firstName != "" {
		greeting = "Привет, " + firstName
	}
	text := greeting + "! Это учёт финансов курьера: смены, доходы, рейтинг.\nОткройте приложение кнопкой ниже."

	msg := tgbotapi.NewMessage(chatID, text)

	link := bh.Deps.Config.WebAppLink()
	if link != "" {
		// Кнопка WebApp открывает Mini App прямо из чата.
		webAppButton := tgbotapi.NewInlineKeyboardButtonWebApp(
			"📱 Открыть приложение",
			tgbotapi.WebAppInfo{URL: link},
		)
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(webAppButton),
		)
	} else {
		log.Println("sendWelcome: ссылка на Mini App не настроена, кнопка не добавлена.")
	}

	if _, err := bh.Deps.BotClient.Send(msg); err != nil {
		log.Printf("sendWelcome: ошибка отправки приветствия chatID %d: %v", chatID, err)
	}
}
