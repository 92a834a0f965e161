// Файл: internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB // Глобальная переменная для хранения подключения к БД

// InitDB инициализирует соединение с базой данных и создаёт схему.
func InitDB() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL не установлена")
	}

	var err error
	DB, err = sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("ошибка подключения к базе данных: %v", err)
	}

	DB.SetMaxOpenConns(50)
	DB.SetMaxIdleConns(20)
	DB.SetConnMaxLifetime(5 * time.Minute)

	if err := DB.Ping(); err != nil {
		return fmt.Errorf("ошибка проверки соединения с базой данных: %v", err)
	}

	log.Println("Успешное подключение к базе данных.")

	return createSchema()
}

// createSchema создаёт таблицы, если их ещё нет.
// users хранит курьера вместе с его настройками; shifts — смены,
// уникальные по паре (telegram_id, date), что обеспечивает
// идемпотентность повторного сохранения за один день.
func createSchema() (err error) {
	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции для создания таблиц: %v", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Printf("Откат транзакции из-за ошибки: %v", err)
			tx.Rollback()
		}
	}()

	createTablesSQL := `
        CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            telegram_id BIGINT UNIQUE NOT NULL,
            username VARCHAR(100),
            first_name VARCHAR(100),
            last_name VARCHAR(100),
            rate_per_minute DOUBLE PRECISION DEFAULT 0,
            price_zone1 DOUBLE PRECISION DEFAULT 0,
            price_zone2 DOUBLE PRECISION DEFAULT 0,
            price_zone3 DOUBLE PRECISION DEFAULT 0,
            tax_coefficient DOUBLE PRECISION DEFAULT 1,
            currency VARCHAR(10) DEFAULT 'RUB',
            fuel_tracking_enabled BOOLEAN DEFAULT TRUE,
            leaderboard_opt_in BOOLEAN DEFAULT FALSE,
            earnings_goal DOUBLE PRECISION DEFAULT 0,
            created_at TIMESTAMP DEFAULT NOW(),
            updated_at TIMESTAMP DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS shifts (
            id SERIAL PRIMARY KEY,
            telegram_id BIGINT NOT NULL REFERENCES users(telegram_id),
            date DATE NOT NULL,
            minutes INTEGER NOT NULL DEFAULT 0,
            zone1 INTEGER NOT NULL DEFAULT 0,
            zone2 INTEGER NOT NULL DEFAULT 0,
            zone3 INTEGER NOT NULL DEFAULT 0,
            kilometers DOUBLE PRECISION NOT NULL DEFAULT 0,
            fuel_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            time_income BIGINT NOT NULL DEFAULT 0,
            orders_income BIGINT NOT NULL DEFAULT 0,
            total_with_tax BIGINT NOT NULL DEFAULT 0,
            total_without_tax BIGINT NOT NULL DEFAULT 0,
            net_profit DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMP DEFAULT NOW(),
            updated_at TIMESTAMP DEFAULT NOW(),
            UNIQUE (telegram_id, date)
        );
        CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date);
        CREATE INDEX IF NOT EXISTS idx_shifts_telegram_id_date ON shifts(telegram_id, date);
    `
	if _, err = tx.Exec(createTablesSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции создания таблиц: %v", err)
	}

	log.Println("Схема базы данных проверена/создана.")
	return nil
}

// CloseDB закрывает соединение с базой данных.
func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", err)
		}
	}
}
