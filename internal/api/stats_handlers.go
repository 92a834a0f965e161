// Файл: internal/api/stats_handlers.go
package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"courierfin/internal/db"
	"courierfin/internal/leaderboard"
	"courierfin/internal/models"
	"courierfin/internal/utils"
)

// resolvePeriod читает ?start и ?end; если оба пусты — подставляет
// текущий календарный месяц (окно рейтинга по умолчанию).
func resolvePeriod(r *http.Request) (startDate, endDate string, err error) {
	startDate = r.URL.Query().Get("start")
	endDate = r.URL.Query().Get("end")
	if startDate == "" && endDate == "" {
		startDate, endDate = utils.CurrentMonthRange(time.Now())
		return startDate, endDate, nil
	}
	return startDate, endDate, utils.ValidateDateRange(startDate, endDate)
}

// GetLeaderboard строит рейтинг курьеров за период.
// Недоступность данных деградирует до пустого списка, а не до ошибки
// транспорта: фронт показывает «пока нет данных» и молча повторяет запрос.
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	cfg := configFromContext(r)

	startDate, endDate, err := resolvePeriod(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit := 0
	if cfg != nil {
		limit = cfg.LeaderboardLimit
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, errParse := strconv.Atoi(limitStr)
		if errParse != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	records, err := db.GetAllShiftsInRange(startDate, endDate)
	if err != nil {
		log.Printf("GetLeaderboard: ошибка загрузки смен, отдаём пустой рейтинг: %v", err)
		records = nil
	}

	couriers, err := db.GetCourierInfoMap()
	if err != nil {
		log.Printf("GetLeaderboard: ошибка загрузки курьеров, отдаём пустой рейтинг: %v", err)
		couriers = map[int64]models.CourierInfo{}
	}

	entries := leaderboard.Compute(records, couriers, startDate, endDate, limit)

	writeJSONSuccess(w, "Leaderboard computed", map[string]interface{}{
		"start":   startDate,
		"end":     endDate,
		"entries": entries,
	})
}

// GetUserStats возвращает агрегаты текущего курьера за период:
// заработок, заказы, часы, километраж, топливо.
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	startDate, endDate, err := resolvePeriod(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := db.GetShiftsInRange(user.TelegramID, startDate, endDate)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}

	stats := leaderboard.PeriodStats(records, user.TelegramID, startDate, endDate)

	writeJSONSuccess(w, "Stats computed", map[string]interface{}{
		"start": startDate,
		"end":   endDate,
		"stats": stats,
	})
}
