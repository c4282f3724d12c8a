// internal/adapters/in/http/handlers/report_export.go
package handlers

import (
	"bytes"
	"strings"

	"github.com/tealeg/xlsx"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const xlsxTimeLayout = "2006-01-02 15:04:05"

// SalesReportXLSX renders one row per sub-order plus a revenue footer.
func SalesReportXLSX(rep usecase.SalesReport) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		return nil, err
	}

	addRow(sheet, "Order", "Sub-order", "Customer", "Status", "Total", "Created")
	for _, row := range rep.Rows {
		r := sheet.AddRow()
		r.AddCell().SetValue(row.OrderID)
		r.AddCell().SetValue(row.SubOrderID)
		r.AddCell().SetValue(row.CustomerID)
		r.AddCell().SetValue(string(row.Status))
		r.AddCell().SetFloat(row.TotalAmount)
		r.AddCell().SetValue(row.CreatedAt.UTC().Format(xlsxTimeLayout))
	}

	sheet.AddRow()
	footer := sheet.AddRow()
	footer.AddCell().SetValue("Store")
	footer.AddCell().SetValue(rep.StoreName)
	footer.AddCell().SetValue("Sub-orders")
	footer.AddCell().SetInt(rep.SubOrders)
	footer.AddCell().SetValue("Revenue")
	footer.AddCell().SetFloat(rep.Revenue)

	return writeFile(file)
}

// InventoryReportXLSX renders the store's stock sheet.
func InventoryReportXLSX(rep usecase.InventoryReport) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return nil, err
	}

	addRow(sheet, "ID", "Name", "Category", "Price", "Stock", "Sizes")
	for _, it := range rep.Items {
		r := sheet.AddRow()
		r.AddCell().SetValue(it.ID)
		r.AddCell().SetValue(it.Name)
		r.AddCell().SetValue(it.Category)
		r.AddCell().SetFloat(it.Price)
		r.AddCell().SetInt(it.Stock)
		r.AddCell().SetValue(strings.Join(it.Sizes, ","))
	}

	sheet.AddRow()
	footer := sheet.AddRow()
	footer.AddCell().SetValue("Total units")
	footer.AddCell().SetInt(rep.TotalUnits)
	footer.AddCell().SetValue("Stock value")
	footer.AddCell().SetFloat(rep.StockValue)

	return writeFile(file)
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func writeFile(file *xlsx.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
