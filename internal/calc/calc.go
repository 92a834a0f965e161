// Файл: internal/calc/calc.go
// Движок расчёта смены. Чистая функция без побочных эффектов:
// валидация входа — обязанность вызывающего кода (internal/utils).
package calc

import (
	"math"

	"courierfin/internal/models"
)

// round округляет до ближайшего целого, половинки — от нуля.
// math.Round делает ровно это.
func round(v float64) int64 {
	return int64(math.Round(v))
}

// TimeIncome — шаг 1: доход за отработанные минуты.
func TimeIncome(minutes int, ratePerMinute float64) int64 {
	return round(float64(minutes) * ratePerMinute)
}

// OrdersIncome — шаг 2: доход за заказы по трём зонам.
func OrdersIncome(zone1, zone2, zone3 int, priceZone1, priceZone2, priceZone3 float64) int64 {
	return round(float64(zone1)*priceZone1 + float64(zone2)*priceZone2 + float64(zone3)*priceZone3)
}

// TotalWithTax — шаг 3: доход до вычета. Слагаемые уже округлены,
// повторное округление не нужно.
func TotalWithTax(timeIncome, ordersIncome int64) int64 {
	return timeIncome + ordersIncome
}

// TotalWithoutTax — шаг 4: применение налогового коэффициента.
// ВАЖНО: коэффициент применяется РОВНО ОДИН РАЗ и именно здесь —
// к общей сумме, а не к слагаемым по отдельности.
func TotalWithoutTax(totalWithTax int64, taxCoefficient float64) int64 {
	return round(float64(totalWithTax) * taxCoefficient)
}

// NetProfit — шаг 5: чистая прибыль после топлива. Без округления;
// результат может быть отрицательным, к нулю не прижимается.
// Если курьер не учитывает топливо, вызывающий код передаёт fuelCost = 0.
func NetProfit(totalWithoutTax int64, fuelCost float64) float64 {
	return float64(totalWithoutTax) - fuelCost
}

// CalculateShift выполняет весь конвейер расчёта смены по порядку шагов 1-5.
// Детерминирован: одинаковый вход всегда даёт одинаковый результат.
func CalculateShift(input models.ShiftInput, pricing models.PricingConfig) models.ShiftDerived {
	timeIncome := TimeIncome(input.Minutes, pricing.RatePerMinute)
	ordersIncome := OrdersIncome(
		input.Zone1, input.Zone2, input.Zone3,
		pricing.PriceZone1, pricing.PriceZone2, pricing.PriceZone3,
	)
	totalWithTax := TotalWithTax(timeIncome, ordersIncome)
	totalWithoutTax := TotalWithoutTax(totalWithTax, pricing.TaxCoefficient)
	netProfit := NetProfit(totalWithoutTax, input.FuelCost)

	return models.ShiftDerived{
		TimeIncome:      timeIncome,
		OrdersIncome:    ordersIncome,
		TotalWithTax:    totalWithTax,
		TotalWithoutTax: totalWithoutTax,
		NetProfit:       netProfit,
	}
}
