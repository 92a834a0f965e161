package models

import "time"

// ShiftInput — сырые данные смены, введённые курьером в Mini App.
// Километраж информационный и на деньги не влияет.
type ShiftInput struct {
	Minutes    int     `json:"minutes"`
	Zone1      int     `json:"zone1"`
	Zone2      int     `json:"zone2"`
	Zone3      int     `json:"zone3"`
	Kilometers float64 `json:"kilometers"`
	FuelCost   float64 `json:"fuelCost"`
}

// PricingConfig — тарифы курьера, действующие на момент расчёта.
// TaxCoefficient — доля дохода, остающаяся после обязательного
// вычета (например, 0.9364 означает вычет 6.36%).
type PricingConfig struct {
	RatePerMinute  float64 `json:"ratePerMinute"`
	PriceZone1     float64 `json:"priceZone1"`
	PriceZone2     float64 `json:"priceZone2"`
	PriceZone3     float64 `json:"priceZone3"`
	TaxCoefficient float64 `json:"taxCoefficient"`
}

// ShiftDerived — пять расчётных полей смены.
// NetProfit может быть отрицательным, если топливо съело весь доход.
type ShiftDerived struct {
	TimeIncome      int64   `json:"timeIncome"`
	OrdersIncome    int64   `json:"ordersIncome"`
	TotalWithTax    int64   `json:"totalWithTax"`
	TotalWithoutTax int64   `json:"totalWithoutTax"`
	NetProfit       float64 `json:"netProfit"`
}

// ShiftRecord — сохранённая смена: одна на курьера на календарную дату.
// Дата хранится строкой в формате YYYY-MM-DD (ключ вместе с TelegramID).
type ShiftRecord struct {
	ID         int64     `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	Date       string    `json:"date"`
	ShiftInput
	ShiftDerived
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrdersCount возвращает суммарное число заказов смены по всем зонам.
func (s ShiftInput) OrdersCount() int {
	return s.Zone1 + s.Zone2 + s.Zone3
}
