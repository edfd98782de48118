// Package sales records point-of-sale transactions against the Sales sheet
// and keeps product stock levels in step.
package sales

import (
	"strconv"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Sale is the typed view of one Sales row.
type Sale struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	SellingPrice  float64 `json:"sellingPrice"`
	Total         float64 `json:"total"`
	Date          string  `json:"date"`
	CustomerName  string  `json:"customerName"`
	PaymentMethod string  `json:"paymentMethod"`
}

func fromRecord(rec sheetdb.Record) Sale {
	return Sale{
		ID:            rec["id"],
		ProductID:     rec["productId"],
		Quantity:      parseInt(rec["quantity"]),
		SellingPrice:  parseFloat(rec["sellingPrice"]),
		Total:         parseFloat(rec["total"]),
		Date:          rec["date"],
		CustomerName:  rec["customerName"],
		PaymentMethod: rec["paymentMethod"],
	}
}

func (s Sale) record() sheetdb.Record {
	return sheetdb.Record{
		"id":            s.ID,
		"productId":     s.ProductID,
		"quantity":      strconv.Itoa(s.Quantity),
		"sellingPrice":  formatFloat(s.SellingPrice),
		"total":         formatFloat(s.Total),
		"date":          s.Date,
		"customerName":  s.CustomerName,
		"paymentMethod": s.PaymentMethod,
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
