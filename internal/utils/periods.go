// Файл: internal/utils/periods.go
package utils

import (
	"time"

	"courierfin/internal/constants"
)

// CurrentMonthRange возвращает первый и последний день месяца даты now —
// окно рейтинга по умолчанию.
func CurrentMonthRange(now time.Time) (startDate, endDate string) {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(constants.DateLayout), last.Format(constants.DateLayout)
}
