// Файл: internal/db/user_ops.go
package db

import (
	"database/sql"
	"log"

	"courierfin/internal/models"
)

const userColumns = `
        id, telegram_id, username, first_name, last_name,
        rate_per_minute, price_zone1, price_zone2, price_zone3, tax_coefficient,
        currency, fuel_tracking_enabled, leaderboard_opt_in, earnings_goal,
        created_at, updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.TelegramID, &u.Username, &u.FirstName, &u.LastName,
		&u.Settings.RatePerMinute, &u.Settings.PriceZone1, &u.Settings.PriceZone2,
		&u.Settings.PriceZone3, &u.Settings.TaxCoefficient,
		&u.Settings.Currency, &u.Settings.FuelTrackingEnabled,
		&u.Settings.LeaderboardOptIn, &u.Settings.EarningsGoal,
		&u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// RegisterUser регистрирует нового курьера или возвращает существующего.
// Вызывается при /start в боте и при первом запросе Mini App.
func RegisterUser(telegramID int64, username, firstName, lastName string) (models.User, error) {
	var user models.User
	var exists bool
	err := DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE telegram_id=$1)", telegramID).Scan(&exists)
	if err != nil {
		log.Printf("RegisterUser: ошибка проверки существования курьера telegramID %d: %v", telegramID, err)
		return user, err
	}

	if !exists {
		_, err = DB.Exec(`
            INSERT INTO users (telegram_id, username, first_name, last_name, created_at, updated_at)
            VALUES ($1, NULLIF($2, ''), $3, $4, NOW(), NOW())`,
			telegramID, username, firstName, lastName)
		if err != nil {
			log.Printf("RegisterUser: ошибка вставки нового курьера telegramID %d: %v", telegramID, err)
			return user, err
		}
		log.Printf("Зарегистрирован новый курьер с telegramID %d", telegramID)
	}

	return GetUserByTelegramID(telegramID)
}

// GetUserByTelegramID извлекает курьера по его telegram_id.
// Возвращает sql.ErrNoRows, если курьер не найден.
func GetUserByTelegramID(telegramID int64) (models.User, error) {
	u, err := scanUser(DB.QueryRow(
		"SELECT"+userColumns+" FROM users WHERE telegram_id=$1", telegramID))
	if err != nil {
		if err == sql.ErrNoRows {
			return u, err
		}
		log.Printf("GetUserByTelegramID: ошибка получения курьера telegramID %d: %v", telegramID, err)
		return u, err
	}
	return u, nil
}

// UpdateUserSettings сохраняет настройки курьера.
// Исторические смены при этом НЕ пересчитываются: расчётные поля
// фиксируются в момент сохранения смены.
func UpdateUserSettings(telegramID int64, s models.UserSettings) error {
	_, err := DB.Exec(`
        UPDATE users SET
            rate_per_minute=$1, price_zone1=$2, price_zone2=$3, price_zone3=$4,
            tax_coefficient=$5, currency=$6, fuel_tracking_enabled=$7,
            leaderboard_opt_in=$8, earnings_goal=$9, updated_at=NOW()
        WHERE telegram_id=$10`,
		s.RatePerMinute, s.PriceZone1, s.PriceZone2, s.PriceZone3,
		s.TaxCoefficient, s.Currency, s.FuelTrackingEnabled,
		s.LeaderboardOptIn, s.EarningsGoal, telegramID)
	if err != nil {
		log.Printf("UpdateUserSettings: ошибка обновления настроек для telegramID %d: %v", telegramID, err)
		return err
	}
	return nil
}

// GetCourierInfoMap загружает участие в рейтинге и отображаемые имена
// всех курьеров одним запросом. Карта подаётся в агрегатор рейтинга.
func GetCourierInfoMap() (map[int64]models.CourierInfo, error) {
	rows, err := DB.Query(`
        SELECT telegram_id, username, first_name, last_name, leaderboard_opt_in
        FROM users`)
	if err != nil {
		log.Printf("GetCourierInfoMap: ошибка запроса курьеров: %v", err)
		return nil, err
	}
	defer rows.Close()

	couriers := make(map[int64]models.CourierInfo)
	for rows.Next() {
		var telegramID int64
		var username sql.NullString
		var firstName, lastName string
		var optedIn bool
		if err := rows.Scan(&telegramID, &username, &firstName, &lastName, &optedIn); err != nil {
			log.Printf("GetCourierInfoMap: ошибка сканирования строки: %v", err)
			continue
		}
		couriers[telegramID] = models.CourierInfo{
			OptedIn:     optedIn,
			DisplayName: displayName(username, firstName, lastName),
		}
	}
	return couriers, rows.Err()
}

func displayName(username sql.NullString, firstName, lastName string) string {
	if username.Valid && username.String != "" {
		return username.String
	}
	if lastName != "" {
		return firstName + " " + lastName
	}
	if firstName != "" {
		return firstName
	}
	return "Unknown"
}
