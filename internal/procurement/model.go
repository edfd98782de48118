// Package procurement records purchase receipts against the Purchases sheet
// and restocks the purchased product.
package procurement

import (
	"strconv"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Purchase is the typed view of one Purchases row.
type Purchase struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	SupplierID    string  `json:"supplierId"`
	Quantity      int     `json:"quantity"`
	CostPrice     float64 `json:"costPrice"`
	Total         float64 `json:"total"`
	Date          string  `json:"date"`
	InvoiceNumber string  `json:"invoiceNumber"`
}

func fromRecord(rec sheetdb.Record) Purchase {
	return Purchase{
		ID:            rec["id"],
		ProductID:     rec["productId"],
		SupplierID:    rec["supplierId"],
		Quantity:      parseInt(rec["quantity"]),
		CostPrice:     parseFloat(rec["costPrice"]),
		Total:         parseFloat(rec["total"]),
		Date:          rec["date"],
		InvoiceNumber: rec["invoiceNumber"],
	}
}

func (p Purchase) record() sheetdb.Record {
	return sheetdb.Record{
		"id":            p.ID,
		"productId":     p.ProductID,
		"supplierId":    p.SupplierID,
		"quantity":      strconv.Itoa(p.Quantity),
		"costPrice":     formatFloat(p.CostPrice),
		"total":         formatFloat(p.Total),
		"date":          p.Date,
		"invoiceNumber": p.InvoiceNumber,
	}
}

func parseInt(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
