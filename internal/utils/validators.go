// Файл: internal/utils/validators.go
// Граничная валидация входных данных. Движок расчёта и агрегатор
// рейтинга вход НЕ перепроверяют: всё отсеивается здесь, до ядра.
package utils

import (
	"fmt"
	"time"

	"courierfin/internal/constants"
	"courierfin/internal/models"
)

// ValidateDate проверяет строку даты в формате YYYY-MM-DD.
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("дата не указана")
	}
	parsed, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return fmt.Errorf("неверный формат даты '%s', ожидается YYYY-MM-DD", date)
	}
	// time.Parse принимает, например, 2025-1-02; требуем канонический вид,
	// иначе строковое сравнение дат в агрегаторе сломается.
	if parsed.Format(constants.DateLayout) != date {
		return fmt.Errorf("неверный формат даты '%s', ожидается YYYY-MM-DD", date)
	}
	return nil
}

// ValidateDateRange проверяет обе границы периода и их порядок.
func ValidateDateRange(startDate, endDate string) error {
	if err := ValidateDate(startDate); err != nil {
		return fmt.Errorf("начало периода: %v", err)
	}
	if err := ValidateDate(endDate); err != nil {
		return fmt.Errorf("конец периода: %v", err)
	}
	if startDate > endDate {
		return fmt.Errorf("начало периода %s позже конца %s", startDate, endDate)
	}
	return nil
}

// ValidateShiftInput проверяет сырые данные смены перед расчётом.
func ValidateShiftInput(input models.ShiftInput) error {
	if input.Minutes < 0 {
		return fmt.Errorf("минуты не могут быть отрицательными: %d", input.Minutes)
	}
	if input.Zone1 < 0 || input.Zone2 < 0 || input.Zone3 < 0 {
		return fmt.Errorf("число заказов по зоне не может быть отрицательным: %d/%d/%d",
			input.Zone1, input.Zone2, input.Zone3)
	}
	if input.Kilometers < 0 {
		return fmt.Errorf("километраж не может быть отрицательным: %g", input.Kilometers)
	}
	if input.FuelCost < 0 {
		return fmt.Errorf("расходы на топливо не могут быть отрицательными: %g", input.FuelCost)
	}
	return nil
}

// ValidateSettings проверяет настройки курьера перед сохранением.
// Налоговый коэффициент — доля ОСТАЮЩЕГОСЯ дохода, допустимый
// диапазон (0, 1]: ноль означал бы полное изъятие заработка.
func ValidateSettings(s models.UserSettings) error {
	if s.RatePerMinute < 0 {
		return fmt.Errorf("ставка за минуту не может быть отрицательной: %g", s.RatePerMinute)
	}
	if s.PriceZone1 < 0 || s.PriceZone2 < 0 || s.PriceZone3 < 0 {
		return fmt.Errorf("цена заказа по зоне не может быть отрицательной: %g/%g/%g",
			s.PriceZone1, s.PriceZone2, s.PriceZone3)
	}
	if s.TaxCoefficient <= 0 || s.TaxCoefficient > 1 {
		return fmt.Errorf("налоговый коэффициент %g вне диапазона (0, 1]", s.TaxCoefficient)
	}
	if s.EarningsGoal < 0 {
		return fmt.Errorf("цель по заработку не может быть отрицательной: %g", s.EarningsGoal)
	}
	return nil
}
