package calc

import (
	"testing"

	"courierfin/internal/models"
)

func TestCalculateShift(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ShiftInput
		pricing models.PricingConfig
		want    models.ShiftDerived
	}{
		{
			// Контрольный сценарий: полная смена с топливом.
			name: "полная смена",
			input: models.ShiftInput{
				Minutes: 480, Zone1: 5, Zone2: 3, Zone3: 2,
				Kilometers: 120, FuelCost: 1000,
			},
			pricing: models.PricingConfig{
				RatePerMinute: 0.54,
				PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
				TaxCoefficient: 0.9364,
			},
			want: models.ShiftDerived{
				TimeIncome:      259,  // round(480 * 0.54) = round(259.2)
				OrdersIncome:    2094, // 980 + 636 + 478
				TotalWithTax:    2353,
				TotalWithoutTax: 2203, // round(2353 * 0.9364)
				NetProfit:       1203,
			},
		},
		{
			name:  "нулевая смена",
			input: models.ShiftInput{},
			pricing: models.PricingConfig{
				RatePerMinute: 0.54,
				PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
				TaxCoefficient: 0.9364,
			},
			want: models.ShiftDerived{},
		},
		{
			// Топливо дороже заработанного: прибыль отрицательная,
			// к нулю не прижимается.
			name: "топливо превышает доход",
			input: models.ShiftInput{
				Minutes: 60, FuelCost: 500,
			},
			pricing: models.PricingConfig{
				RatePerMinute:  1.0,
				TaxCoefficient: 0.9364,
			},
			want: models.ShiftDerived{
				TimeIncome:      60,
				TotalWithTax:    60,
				TotalWithoutTax: 56, // round(60 * 0.9364) = round(56.184)
				NetProfit:       -444,
			},
		},
		{
			name: "коэффициент 1 ничего не вычитает",
			input: models.ShiftInput{
				Minutes: 100, Zone1: 1,
			},
			pricing: models.PricingConfig{
				RatePerMinute: 2, PriceZone1: 150,
				TaxCoefficient: 1,
			},
			want: models.ShiftDerived{
				TimeIncome:      200,
				OrdersIncome:    150,
				TotalWithTax:    350,
				TotalWithoutTax: 350,
				NetProfit:       350,
			},
		},
		{
			// Округление половинок — от нуля: 0.5 -> 1.
			name: "округление половинки вверх",
			input: models.ShiftInput{
				Minutes: 1,
			},
			pricing: models.PricingConfig{
				RatePerMinute:  0.5,
				TaxCoefficient: 1,
			},
			want: models.ShiftDerived{
				TimeIncome:      1,
				TotalWithTax:    1,
				TotalWithoutTax: 1,
				NetProfit:       1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateShift(tt.input, tt.pricing)
			if got != tt.want {
				t.Errorf("CalculateShift() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Повторные вызовы с одинаковым входом обязаны давать одинаковый результат.
func TestCalculateShiftDeterminism(t *testing.T) {
	input := models.ShiftInput{Minutes: 480, Zone1: 5, Zone2: 3, Zone3: 2, FuelCost: 1000}
	pricing := models.PricingConfig{
		RatePerMinute: 0.54,
		PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
		TaxCoefficient: 0.9364,
	}

	first := CalculateShift(input, pricing)
	for i := 0; i < 100; i++ {
		if got := CalculateShift(input, pricing); got != first {
			t.Fatalf("вызов %d: результат %+v отличается от первого %+v", i, got, first)
		}
	}
}

// Защита от регрессии с двойным налогообложением: коэффициент применяется
// один раз к TotalWithTax; повторное применение даёт другой результат.
func TestTaxAppliedOnce(t *testing.T) {
	input := models.ShiftInput{Minutes: 480, Zone1: 5, Zone2: 3, Zone3: 2}
	pricing := models.PricingConfig{
		RatePerMinute: 0.54,
		PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
		TaxCoefficient: 0.9364,
	}

	got := CalculateShift(input, pricing)

	if want := TotalWithoutTax(got.TotalWithTax, pricing.TaxCoefficient); got.TotalWithoutTax != want {
		t.Errorf("TotalWithoutTax = %d, want round(%d * %g) = %d",
			got.TotalWithoutTax, got.TotalWithTax, pricing.TaxCoefficient, want)
	}

	doubled := TotalWithoutTax(got.TotalWithoutTax, pricing.TaxCoefficient)
	if got.TotalWithoutTax == doubled {
		t.Errorf("повторное применение коэффициента не должно совпадать с расчётом: %d", doubled)
	}
}

// Рост любого входного показателя не уменьшает доходные поля.
func TestMonotonicity(t *testing.T) {
	pricing := models.PricingConfig{
		RatePerMinute: 0.54,
		PriceZone1:    196, PriceZone2: 212, PriceZone3: 239,
		TaxCoefficient: 0.9364,
	}
	base := models.ShiftInput{Minutes: 120, Zone1: 2, Zone2: 1, Zone3: 1}

	variants := []struct {
		name string
		bump func(models.ShiftInput) models.ShiftInput
	}{
		{"minutes", func(s models.ShiftInput) models.ShiftInput { s.Minutes++; return s }},
		{"zone1", func(s models.ShiftInput) models.ShiftInput { s.Zone1++; return s }},
		{"zone2", func(s models.ShiftInput) models.ShiftInput { s.Zone2++; return s }},
		{"zone3", func(s models.ShiftInput) models.ShiftInput { s.Zone3++; return s }},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			cur := base
			prev := CalculateShift(cur, pricing)
			for i := 0; i < 50; i++ {
				cur = v.bump(cur)
				next := CalculateShift(cur, pricing)
				if next.TimeIncome < prev.TimeIncome ||
					next.OrdersIncome < prev.OrdersIncome ||
					next.TotalWithTax < prev.TotalWithTax ||
					next.TotalWithoutTax < prev.TotalWithoutTax {
					t.Fatalf("шаг %d: доход уменьшился: %+v -> %+v", i, prev, next)
				}
				prev = next
			}
		})
	}
}

// Километраж информационный и на расчёт не влияет.
func TestKilometersDoNotAffectMoney(t *testing.T) {
	pricing := models.PricingConfig{RatePerMinute: 0.54, PriceZone1: 196, TaxCoefficient: 0.9364}
	a := CalculateShift(models.ShiftInput{Minutes: 480, Zone1: 5, Kilometers: 0}, pricing)
	b := CalculateShift(models.ShiftInput{Minutes: 480, Zone1: 5, Kilometers: 300}, pricing)
	if a != b {
		t.Errorf("километраж повлиял на расчёт: %+v != %+v", a, b)
	}
}
