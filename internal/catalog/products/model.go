package products

import (
	"strconv"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Product is the typed view of one Products row. Timestamps stay in their
// stored ISO-8601 string form.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Description       string  `json:"description"`
	SKU               string  `json:"sku"`
	Barcode           string  `json:"barcode"`
	Quantity          int     `json:"quantity"`
	CostPrice         float64 `json:"costPrice"`
	SellingPrice      float64 `json:"sellingPrice"`
	SupplierID        string  `json:"supplierId"`
	LowStockThreshold int     `json:"lowStockThreshold"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

func fromRecord(rec sheetdb.Record) Product {
	return Product{
		ID:                rec["id"],
		Name:              rec["name"],
		Category:          rec["category"],
		Description:       rec["description"],
		SKU:               rec["sku"],
		Barcode:           rec["barcode"],
		Quantity:          parseInt(rec["quantity"]),
		CostPrice:         parseFloat(rec["costPrice"]),
		SellingPrice:      parseFloat(rec["sellingPrice"]),
		SupplierID:        rec["supplierId"],
		LowStockThreshold: parseInt(rec["lowStockThreshold"]),
		CreatedAt:         rec["createdAt"],
		UpdatedAt:         rec["updatedAt"],
	}
}

func (p Product) record() sheetdb.Record {
	return sheetdb.Record{
		"id":                p.ID,
		"name":              p.Name,
		"category":          p.Category,
		"description":       p.Description,
		"sku":               p.SKU,
		"barcode":           p.Barcode,
		"quantity":          strconv.Itoa(p.Quantity),
		"costPrice":         formatFloat(p.CostPrice),
		"sellingPrice":      formatFloat(p.SellingPrice),
		"supplierId":        p.SupplierID,
		"lowStockThreshold": strconv.Itoa(p.LowStockThreshold),
	}
}

// parseInt tolerates blank and malformed cells; the store holds opaque
// scalars with no type guarantee.
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
