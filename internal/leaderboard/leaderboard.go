// Файл: internal/leaderboard/leaderboard.go
// Агрегатор рейтинга: группировка смен по курьерам за период,
// суммирование чистой прибыли и построение упорядоченного списка.
// Работает над уже загруженной коллекцией, сам в БД не ходит.
package leaderboard

import (
	"sort"

	"courierfin/internal/models"
)

// Compute строит рейтинг курьеров за период [startDate, endDate]
// (обе границы включительно, формат YYYY-MM-DD, startDate <= endDate —
// обязанность вызывающего кода).
//
// Алгоритм:
//  1. Отбор смен по дате (строковое сравнение корректно для YYYY-MM-DD).
//  2. Группировка по TelegramID и суммирование NetProfit — именно
//     NetProfit, а не TotalWithoutTax: расходы на топливо учитываются
//     в рейтинге.
//  3. Курьеры без согласия на участие (OptedIn = false) отбрасываются.
//  4. Стабильная сортировка по TotalEarnings по убыванию; при равенстве
//     сумм сохраняется порядок первого появления курьера во входной
//     коллекции.
//  5. Rank = позиция в полном отсортированном списке (с единицы).
//  6. Усечение до limit записей — ПОСЛЕ присвоения рангов.
//
// Пустой отбор, отсутствие участников или limit <= 0 дают пустой
// список, не ошибку. Курьер с нулевой суммой за период участвует
// наравне с остальными.
func Compute(records []models.ShiftRecord, couriers map[int64]models.CourierInfo, startDate, endDate string, limit int) []models.LeaderboardEntry {
	if limit <= 0 {
		return []models.LeaderboardEntry{}
	}

	totals := make(map[int64]float64)
	var order []int64 // порядок первого появления — тай-брейк при равных суммах

	for _, rec := range records {
		if rec.Date < startDate || rec.Date > endDate {
			continue
		}
		if _, seen := totals[rec.TelegramID]; !seen {
			order = append(order, rec.TelegramID)
		}
		totals[rec.TelegramID] += rec.NetProfit
	}

	entries := make([]models.LeaderboardEntry, 0, len(order))
	for _, id := range order {
		info, ok := couriers[id]
		if !ok || !info.OptedIn {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			TelegramID:    id,
			DisplayName:   info.DisplayName,
			TotalEarnings: totals[id],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalEarnings > entries[j].TotalEarnings
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// PeriodStats считает агрегаты одного курьера по его сменам за период.
// Используется карточкой «Ваш результат» и экраном статистики.
func PeriodStats(records []models.ShiftRecord, telegramID int64, startDate, endDate string) models.PeriodStats {
	var stats models.PeriodStats
	for _, rec := range records {
		if rec.TelegramID != telegramID {
			continue
		}
		if rec.Date < startDate || rec.Date > endDate {
			continue
		}
		stats.Earnings += rec.NetProfit
		stats.OrdersCount += rec.OrdersCount()
		stats.Minutes += rec.Minutes
		stats.Kilometers += rec.Kilometers
		stats.FuelCost += rec.FuelCost
		stats.ShiftsCount++
	}
	stats.HoursWorked = float64(stats.Minutes) / 60.0
	return stats
}
