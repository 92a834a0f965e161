package leaderboard

import (
	"testing"

	"courierfin/internal/models"
)

func shift(id int64, date string, netProfit float64) models.ShiftRecord {
	return models.ShiftRecord{
		TelegramID:   id,
		Date:         date,
		ShiftDerived: models.ShiftDerived{NetProfit: netProfit},
	}
}

func courier(name string, optedIn bool) models.CourierInfo {
	return models.CourierInfo{OptedIn: optedIn, DisplayName: name}
}

func TestComputeRanking(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-01", 300),
		shift(2, "2025-08-02", 700),
		shift(1, "2025-08-03", 200),
		shift(3, "2025-08-05", 100),
	}
	couriers := map[int64]models.CourierInfo{
		1: courier("alpha", true),
		2: courier("bravo", true),
		3: courier("charlie", true),
	}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 100)

	want := []models.LeaderboardEntry{
		{Rank: 1, TelegramID: 2, DisplayName: "bravo", TotalEarnings: 700},
		{Rank: 2, TelegramID: 1, DisplayName: "alpha", TotalEarnings: 500},
		{Rank: 3, TelegramID: 3, DisplayName: "charlie", TotalEarnings: 100},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Курьер без согласия не попадает в рейтинг независимо от суммы.
func TestComputeOptOutExcluded(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-10", 1000),
		shift(2, "2025-08-10", 5000),
		shift(3, "2025-08-11", 1000),
	}
	couriers := map[int64]models.CourierInfo{
		1: courier("A", true),
		2: courier("B", false),
		3: courier("C", true),
	}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 100)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.TelegramID == 2 {
			t.Errorf("курьер без согласия попал в рейтинг: %+v", e)
		}
	}
	// Равные суммы: порядок первого появления во входной коллекции.
	if got[0].TelegramID != 1 || got[0].Rank != 1 {
		t.Errorf("первая запись = %+v, want курьер 1 с рангом 1", got[0])
	}
	if got[1].TelegramID != 3 || got[1].Rank != 2 {
		t.Errorf("вторая запись = %+v, want курьер 3 с рангом 2", got[1])
	}
}

// Ранги присваиваются до усечения по limit.
func TestComputeLimit(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-01", 300),
		shift(2, "2025-08-01", 200),
		shift(3, "2025-08-01", 100),
	}
	couriers := map[int64]models.CourierInfo{
		1: courier("A", true),
		2: courier("B", true),
		3: courier("C", true),
	}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Rank != 1 || got[0].TotalEarnings != 300 {
		t.Errorf("got %+v, want rank 1 earnings 300", got[0])
	}
}

func TestComputeEmptyCases(t *testing.T) {
	couriers := map[int64]models.CourierInfo{1: courier("A", true)}
	records := []models.ShiftRecord{shift(1, "2025-08-15", 500)}

	tests := []struct {
		name       string
		records    []models.ShiftRecord
		start, end string
		limit      int
	}{
		{"нет смен", nil, "2025-08-01", "2025-08-31", 10},
		{"смены вне периода", records, "2025-09-01", "2025-09-30", 10},
		{"limit ноль", records, "2025-08-01", "2025-08-31", 0},
		{"limit отрицательный", records, "2025-08-01", "2025-08-31", -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.records, couriers, tt.start, tt.end, tt.limit)
			if len(got) != 0 {
				t.Errorf("len = %d, want 0", len(got))
			}
		})
	}
}

// Границы периода включительны с обеих сторон.
func TestComputeInclusiveBounds(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-07-31", 10),
		shift(1, "2025-08-01", 100),
		shift(1, "2025-08-31", 200),
		shift(1, "2025-09-01", 10),
	}
	couriers := map[int64]models.CourierInfo{1: courier("A", true)}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 10)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].TotalEarnings != 300 {
		t.Errorf("TotalEarnings = %g, want 300 (только август)", got[0].TotalEarnings)
	}
}

// Нулевая и отрицательная суммы участвуют: исключает только opt-out.
func TestComputeZeroAndNegativeEarnings(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-01", 0),
		shift(2, "2025-08-01", -250),
		shift(3, "2025-08-01", 50),
	}
	couriers := map[int64]models.CourierInfo{
		1: courier("zero", true),
		2: courier("minus", true),
		3: courier("plus", true),
	}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 10)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []int64{3, 1, 2}
	for i, id := range wantOrder {
		if got[i].TelegramID != id {
			t.Errorf("позиция %d: курьер %d, want %d", i, got[i].TelegramID, id)
		}
	}
}

// Курьер из смен, отсутствующий в карте users, не попадает в рейтинг.
func TestComputeUnknownCourierSkipped(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-01", 100),
		shift(99, "2025-08-01", 900),
	}
	couriers := map[int64]models.CourierInfo{1: courier("A", true)}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 10)
	if len(got) != 1 || got[0].TelegramID != 1 {
		t.Fatalf("got %+v, want только курьер 1", got)
	}
}

// Инвариант выдачи: суммы не возрастают, ранги непрерывны с единицы.
func TestComputeRankInvariant(t *testing.T) {
	records := []models.ShiftRecord{
		shift(1, "2025-08-01", 120),
		shift(2, "2025-08-01", 450),
		shift(3, "2025-08-02", 450),
		shift(4, "2025-08-03", -20),
		shift(5, "2025-08-04", 300),
	}
	couriers := map[int64]models.CourierInfo{
		1: courier("a", true),
		2: courier("b", true),
		3: courier("c", true),
		4: courier("d", true),
		5: courier("e", true),
	}

	got := Compute(records, couriers, "2025-08-01", "2025-08-31", 100)
	for i, e := range got {
		if e.Rank != i+1 {
			t.Errorf("позиция %d: ранг %d, want %d", i, e.Rank, i+1)
		}
		if i > 0 && got[i-1].TotalEarnings < e.TotalEarnings {
			t.Errorf("нарушен порядок убывания на позиции %d: %g < %g",
				i, got[i-1].TotalEarnings, e.TotalEarnings)
		}
	}
}

func TestPeriodStats(t *testing.T) {
	records := []models.ShiftRecord{
		{
			TelegramID: 1, Date: "2025-08-01",
			ShiftInput:   models.ShiftInput{Minutes: 480, Zone1: 5, Zone2: 3, Zone3: 2, Kilometers: 120, FuelCost: 1000},
			ShiftDerived: models.ShiftDerived{NetProfit: 1203},
		},
		{
			TelegramID: 1, Date: "2025-08-02",
			ShiftInput:   models.ShiftInput{Minutes: 120, Zone1: 2, Kilometers: 30, FuelCost: 200},
			ShiftDerived: models.ShiftDerived{NetProfit: 300},
		},
		// Чужая смена и смена вне периода в агрегаты не входят.
		{TelegramID: 2, Date: "2025-08-01", ShiftDerived: models.ShiftDerived{NetProfit: 9999}},
		{TelegramID: 1, Date: "2025-07-31", ShiftDerived: models.ShiftDerived{NetProfit: 500}},
	}

	got := PeriodStats(records, 1, "2025-08-01", "2025-08-31")

	want := models.PeriodStats{
		Earnings:    1503,
		OrdersCount: 12,
		Minutes:     600,
		HoursWorked: 10,
		Kilometers:  150,
		FuelCost:    1200,
		ShiftsCount: 2,
	}
	if got != want {
		t.Errorf("PeriodStats = %+v, want %+v", got, want)
	}
}
