package export

import (
	"fmt"
	"io"
	"time"

	"boutique/internal/domain"

	"github.com/tealeg/xlsx"
)

const (
	OrdersSheet = "Orders"
	ItemsSheet  = "Items"
)

var (
	orderHeaders = []string{"Order ID", "Date", "Created At", "Customer", "Phone", "Status", "Units", "Total", "Notes"}
	itemHeaders  = []string{"Order ID", "Product ID", "Name", "Category", "Variety", "Price", "Quantity", "Subtotal"}
)

// WriteOrders renders the orders as an xlsx workbook with one sheet of order
// headers and one of order lines, in ledger order.
func WriteOrders(w io.Writer, orders []domain.Order) error {
	file := xlsx.NewFile()

	ordersSheet, err := file.AddSheet(OrdersSheet)
	if err != nil {
		return fmt.Errorf("adding %s sheet: %w", OrdersSheet, err)
	}
	itemsSheet, err := file.AddSheet(ItemsSheet)
	if err != nil {
		return fmt.Errorf("adding %s sheet: %w", ItemsSheet, err)
	}

	addRow(ordersSheet, orderHeaders)
	addRow(itemsSheet, itemHeaders)

	for _, o := range orders {
		row := ordersSheet.AddRow()
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.Date)
		row.AddCell().SetValue(createdAt(o.CreatedAt))
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.CustomerPhone)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.UnitCount())
		row.AddCell().SetValue(o.TotalAmount)
		row.AddCell().SetValue(o.CustomizationNotes)

		for _, item := range o.Items {
			line := itemsSheet.AddRow()
			line.AddCell().SetValue(o.ID)
			line.AddCell().SetValue(item.ID)
			line.AddCell().SetValue(item.Name)
			line.AddCell().SetValue(string(item.Category))
			line.AddCell().SetValue(item.Variety)
			line.AddCell().SetValue(item.Price)
			line.AddCell().SetValue(item.Quantity)
			line.AddCell().SetValue(item.Subtotal())
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func createdAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
