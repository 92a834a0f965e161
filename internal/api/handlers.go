// Файл: internal/api/handlers.go
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"

	"courierfin/internal/calc"
	"courierfin/internal/config"
	"courierfin/internal/db"
	"courierfin/internal/models"
	"courierfin/internal/utils"
)

// jsonResponse - вспомогательная структура для стандартного ответа API
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SaveShiftRequest - структура запроса на расчёт и сохранение смены.
type SaveShiftRequest struct {
	Date string `json:"date"`
	models.ShiftInput
}

// --- Вспомогательные функции для JSON-ответов ---
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message})
}

func writeJSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

func configFromContext(r *http.Request) *config.Config {
	cfg, _ := r.Context().Value(ConfigContextKey).(*config.Config)
	return cfg
}

// GetClientConfig отдаёт публичную конфигурацию для Mini App.
func GetClientConfig(w http.ResponseWriter, r *http.Request) {
	cfg := configFromContext(r)
	if cfg == nil {
		writeJSONError(w, http.StatusInternalServerError, "Config not found in context")
		return
	}
	writeJSONSuccess(w, "Client config", map[string]interface{}{
		"botUsername":      cfg.BotUsername,
		"webAppLink":       cfg.WebAppLink(),
		"leaderboardLimit": cfg.LeaderboardLimit,
		"env":              cfg.AppEnv,
	})
}

// GetUserProfile возвращает курьера вместе с его настройками.
func GetUserProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}
	writeJSONSuccess(w, "Profile retrieved", user)
}

// SaveUserSettings сохраняет настройки курьера после граничной валидации.
// Исторические смены не пересчитываются: тарифы зафиксированы в записях.
func SaveUserSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var settings models.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := utils.ValidateSettings(settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.UpdateUserSettings(user.TelegramID, settings); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSONSuccess(w, "Settings saved", settings)
}

// SaveShift рассчитывает смену по текущим тарифам курьера и сохраняет её.
// Повторное сохранение за ту же дату перезаписывает запись (upsert).
// Расчёт выполняется ЗДЕСЬ, в момент сохранения — при чтении истории
// ничего не пересчитывается.
func SaveShift(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req SaveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := utils.ValidateDate(req.Date); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateShiftInput(req.ShiftInput); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := req.ShiftInput
	// Если курьер отключил учёт топлива, в расчёт уходит ноль —
	// шаг вычитания топлива из конвейера не выпадает.
	if !user.Settings.FuelTrackingEnabled {
		input.FuelCost = 0
	}

	derived := calc.CalculateShift(input, user.Settings.Pricing())

	saved, err := db.UpsertShift(models.ShiftRecord{
		TelegramID:   user.TelegramID,
		Date:         req.Date,
		ShiftInput:   input,
		ShiftDerived: derived,
	})
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to save shift")
		return
	}

	writeJSONSuccess(w, "Shift saved", saved)
}

// GetShifts возвращает смены курьера за период ?start=...&end=...
func GetShifts(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	startDate := r.URL.Query().Get("start")
	endDate := r.URL.Query().Get("end")
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	shifts, err := db.GetShiftsInRange(user.TelegramID, startDate, endDate)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}
	if shifts == nil {
		shifts = []models.ShiftRecord{}
	}

	writeJSONSuccess(w, "Shifts retrieved", shifts)
}

// DeleteShift удаляет смену курьера за указанную дату.
func DeleteShift(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	date := chi.URLParam(r, "date")
	if err := utils.ValidateDate(date); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.DeleteShift(user.TelegramID, date); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to delete shift")
		return
	}

	writeJSONSuccess(w, "Shift deleted", map[string]string{"date": date})
}

// GetShareQR отдаёт PNG с QR-кодом ссылки на Mini App,
// чтобы курьер мог позвать коллег в рейтинг.
func GetShareQR(w http.ResponseWriter, r *http.Request) {
	cfg := configFromContext(r)
	if cfg == nil || cfg.WebAppLink() == "" {
		writeJSONError(w, http.StatusServiceUnavailable, "Share link is not configured")
		return
	}

	// qrcode.Medium - уровень коррекции ошибок, 256 - размер QR-кода в пикселях.
	qrBytes, err := qrcode.Encode(cfg.WebAppLink(), qrcode.Medium, 256)
	if err != nil {
		log.Printf("GetShareQR: ошибка кодирования QR-кода для ссылки '%s': %v", cfg.WebAppLink(), err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrBytes)
}
