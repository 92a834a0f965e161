// Файл: internal/api/export_handlers.go
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2" // Для генерации Excel / For Excel generation

	"courierfin/internal/db"
	"courierfin/internal/utils"
)

// ExportShifts отдаёт Excel-файл со сменами курьера за период.
// Формат и порядок колонок совпадают с экраном истории в Mini App.
func ExportShifts(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	startDate := r.URL.Query().Get("start")
	endDate := r.URL.Query().Get("end")
	if err := utils.ValidateDateRange(startDate, endDate); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	shifts, err := db.GetShiftsInRange(user.TelegramID, startDate, endDate)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to load shifts")
		return
	}

	f := excelize.NewFile()
	sheetName := "Смены"
	index, _ := f.NewSheet(sheetName) // Игнорируем ошибку, если лист уже существует (NewFile создает Sheet1)
	f.DeleteSheet("Sheet1")           // Удаляем стандартный лист
	f.SetActiveSheet(index)

	headers := []string{"Дата", "Минуты", "Зона 1", "Зона 2", "Зона 3", "Км", "Топливо",
		"Доход за время", "Доход за заказы", "До вычета", "После вычета", "Чистая прибыль"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 2
	for _, s := range shifts {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowIndex), s.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowIndex), s.Minutes)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowIndex), s.Zone1)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowIndex), s.Zone2)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowIndex), s.Zone3)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowIndex), s.Kilometers)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowIndex), s.FuelCost)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", rowIndex), s.TimeIncome)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", rowIndex), s.OrdersIncome)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", rowIndex), s.TotalWithTax)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", rowIndex), s.TotalWithoutTax)
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", rowIndex), s.NetProfit)
		rowIndex++
	}

	filename := fmt.Sprintf("shifts_%s_%s.xlsx", startDate, endDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		log.Printf("ExportShifts: ошибка записи Excel-файла для telegramID %d: %v", user.TelegramID, err)
	}
}
