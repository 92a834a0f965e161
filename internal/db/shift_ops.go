// Файл: internal/db/shift_ops.go
package db

import (
	"database/sql"
	"log"

	"courierfin/internal/models"
)

const shiftColumns = `
        id, telegram_id, to_char(date, 'YYYY-MM-DD'),
        minutes, zone1, zone2, zone3, kilometers, fuel_cost,
        time_income, orders_income, total_with_tax, total_without_tax, net_profit,
        created_at, updated_at`

// UpsertShift сохраняет смену курьера за дату. Повторное сохранение за ту
// же дату перезаписывает запись целиком (ON CONFLICT по telegram_id, date):
// в хранилище всегда не больше одной смены на курьера на дату.
func UpsertShift(rec models.ShiftRecord) (models.ShiftRecord, error) {
	var saved models.ShiftRecord
	err := DB.QueryRow(`
        INSERT INTO shifts (
            telegram_id, date, minutes, zone1, zone2, zone3, kilometers, fuel_cost,
            time_income, orders_income, total_with_tax, total_without_tax, net_profit,
            created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
        ON CONFLICT (telegram_id, date) DO UPDATE SET
            minutes=EXCLUDED.minutes, zone1=EXCLUDED.zone1, zone2=EXCLUDED.zone2,
            zone3=EXCLUDED.zone3, kilometers=EXCLUDED.kilometers, fuel_cost=EXCLUDED.fuel_cost,
            time_income=EXCLUDED.time_income, orders_income=EXCLUDED.orders_income,
            total_with_tax=EXCLUDED.total_with_tax, total_without_tax=EXCLUDED.total_without_tax,
            net_profit=EXCLUDED.net_profit, updated_at=NOW()
        RETURNING`+shiftColumns,
		rec.TelegramID, rec.Date, rec.Minutes, rec.Zone1, rec.Zone2, rec.Zone3,
		rec.Kilometers, rec.FuelCost,
		rec.TimeIncome, rec.OrdersIncome, rec.TotalWithTax, rec.TotalWithoutTax, rec.NetProfit).
		Scan(
			&saved.ID, &saved.TelegramID, &saved.Date,
			&saved.Minutes, &saved.Zone1, &saved.Zone2, &saved.Zone3,
			&saved.Kilometers, &saved.FuelCost,
			&saved.TimeIncome, &saved.OrdersIncome, &saved.TotalWithTax,
			&saved.TotalWithoutTax, &saved.NetProfit,
			&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		log.Printf("UpsertShift: ошибка сохранения смены telegramID %d за %s: %v", rec.TelegramID, rec.Date, err)
		return saved, err
	}
	return saved, nil
}

// GetShiftsInRange возвращает смены одного курьера за период
// [startDate, endDate] включительно, новые сверху.
func GetShiftsInRange(telegramID int64, startDate, endDate string) ([]models.ShiftRecord, error) {
	rows, err := DB.Query(`
        SELECT`+shiftColumns+`
        FROM shifts
        WHERE telegram_id=$1 AND date >= $2 AND date <= $3
        ORDER BY date DESC`,
		telegramID, startDate, endDate)
	if err != nil {
		log.Printf("GetShiftsInRange: ошибка запроса смен telegramID %d: %v", telegramID, err)
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

// GetAllShiftsInRange возвращает смены ВСЕХ курьеров за период — вход
// агрегатора рейтинга. Порядок date ASC, telegram_id ASC фиксирован,
// чтобы тай-брейк по порядку появления был воспроизводимым.
func GetAllShiftsInRange(startDate, endDate string) ([]models.ShiftRecord, error) {
	rows, err := DB.Query(`
        SELECT`+shiftColumns+`
        FROM shifts
        WHERE date >= $1 AND date <= $2
        ORDER BY date ASC, telegram_id ASC`,
		startDate, endDate)
	if err != nil {
		log.Printf("GetAllShiftsInRange: ошибка запроса смен за период %s..%s: %v", startDate, endDate, err)
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

// DeleteShift удаляет смену курьера за дату. Отсутствие записи ошибкой
// не считается.
func DeleteShift(telegramID int64, date string) error {
	_, err := DB.Exec("DELETE FROM shifts WHERE telegram_id=$1 AND date=$2", telegramID, date)
	if err != nil {
		log.Printf("DeleteShift: ошибка удаления смены telegramID %d за %s: %v", telegramID, date, err)
		return err
	}
	return nil
}

func scanShifts(rows *sql.Rows) ([]models.ShiftRecord, error) {
	var shifts []models.ShiftRecord
	for rows.Next() {
		var s models.ShiftRecord
		if err := rows.Scan(
			&s.ID, &s.TelegramID, &s.Date,
			&s.Minutes, &s.Zone1, &s.Zone2, &s.Zone3,
			&s.Kilometers, &s.FuelCost,
			&s.TimeIncome, &s.OrdersIncome, &s.TotalWithTax,
			&s.TotalWithoutTax, &s.NetProfit,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			log.Printf("scanShifts: ошибка сканирования строки смены: %v", err)
			continue
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
