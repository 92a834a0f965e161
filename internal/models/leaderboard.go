package models

// CourierInfo — участие курьера в рейтинге и его отображаемое имя.
// Загружается из таблицы users одним запросом перед агрегацией.
type CourierInfo struct {
	OptedIn     bool   `json:"optedIn"`
	DisplayName string `json:"displayName"`
}

// LeaderboardEntry — строка рейтинга за период.
// Rank присваивается по полному отсортированному списку ДО усечения
// по limit, поэтому отражает реальное место курьера.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	TelegramID    int64   `json:"telegram_id"`
	DisplayName   string  `json:"username"`
	TotalEarnings float64 `json:"total_earnings"`
}

// PeriodStats — агрегаты одного курьера за период для экрана статистики.
type PeriodStats struct {
	Earnings    float64 `json:"earnings"`
	OrdersCount int     `json:"ordersCount"`
	Minutes     int     `json:"minutes"`
	HoursWorked float64 `json:"hoursWorked"`
	Kilometers  float64 `json:"kilometers"`
	FuelCost    float64 `json:"fuelCost"`
	ShiftsCount int     `json:"shiftsCount"`
}
