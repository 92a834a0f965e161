// Файл: internal/api/test_handlers.go
package api

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"courierfin/internal/calc"
	"courierfin/internal/db"
	"courierfin/internal/models"
	"courierfin/internal/utils"
)

// SeedLeaderboard наполняет БД демо-курьерами со сменами за текущий
// месяц. Доступно только в dev-окружении — маршрут регистрируется
// в router.go при ENV=dev. Смены считаются настоящим движком расчёта,
// чтобы рейтинг на демо-данных вёл себя как боевой.
func SeedLeaderboard(w http.ResponseWriter, r *http.Request) {
	log.Println("⚠️ ТЕСТОВЫЙ ЗАПРОС: наполнение рейтинга демо-данными")

	pricing := models.PricingConfig{
		RatePerMinute: 0.54,
		PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
		TaxCoefficient: 0.9364,
	}

	demoNames := []struct {
		first string
		last  string
	}{
		{"Мария", "Петрова"},
		{"Иван", "Сидоров"},
		{"Андрей", "Кузнецов"},
		{"Елена", "Васильева"},
		{"Сергей", "Морозов"},
	}

	startDate, _ := utils.CurrentMonthRange(time.Now())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var seeded []int64
	for i, name := range demoNames {
		// Демо-курьеры живут в отрицательном диапазоне telegram_id,
		// чтобы не пересекаться с настоящими.
		telegramID := -int64(1000 + i)
		username := "demo_" + uuid.NewString()[:8]

		user, err := db.RegisterUser(telegramID, username, name.first, name.last)
		if err != nil {
			log.Printf("SeedLeaderboard: ошибка регистрации демо-курьера %s: %v", username, err)
			continue
		}

		settings := user.Settings
		settings.RatePerMinute = pricing.RatePerMinute
		settings.PriceZone1 = pricing.PriceZone1
		settings.PriceZone2 = pricing.PriceZone2
		settings.PriceZone3 = pricing.PriceZone3
		settings.TaxCoefficient = pricing.TaxCoefficient
		settings.LeaderboardOptIn = i != 1 // один демо-курьер без согласия, для проверки фильтра
		if err := db.UpdateUserSettings(telegramID, settings); err != nil {
			log.Printf("SeedLeaderboard: ошибка настройки демо-курьера %s: %v", username, err)
			continue
		}

		monthStart, _ := time.Parse("2006-01-02", startDate)
		days := 5 + rng.Intn(10)
		for day := 0; day < days; day++ {
			input := models.ShiftInput{
				Minutes:    240 + rng.Intn(360),
				Zone1:      rng.Intn(8),
				Zone2:      rng.Intn(6),
				Zone3:      rng.Intn(4),
				Kilometers: 40 + float64(rng.Intn(120)),
				FuelCost:   float64(300 + rng.Intn(900)),
			}
			derived := calc.CalculateShift(input, pricing)
			_, err := db.UpsertShift(models.ShiftRecord{
				TelegramID:   telegramID,
				Date:         monthStart.AddDate(0, 0, day).Format("2006-01-02"),
				ShiftInput:   input,
				ShiftDerived: derived,
			})
			if err != nil {
				log.Printf("SeedLeaderboard: ошибка сохранения демо-смены: %v", err)
			}
		}
		seeded = append(seeded, telegramID)
	}

	writeJSONSuccess(w, "Demo leaderboard seeded", map[string]interface{}{
		"couriers": seeded,
	})
}
