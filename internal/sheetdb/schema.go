// Package sheetdb treats a spreadsheet workbook as a schema-on-write record
// store: one sheet per entity, row 1 the header, rows 2..N one record each,
// column 1 the record identifier.
package sheetdb

import "sort"

// DefaultEntity is used when a request does not name a sheet.
const DefaultEntity = "Products"

// Reserved field names handled by the store itself.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// schemas fixes the canonical ordered field list per entity. The order is
// also the physical column order of the backing sheet.
var schemas = map[string][]string{
	"Products": {
		"id", "name", "category", "description", "sku", "barcode",
		"quantity", "costPrice", "sellingPrice", "supplierId", "lowStockThreshold",
		"createdAt", "updatedAt",
	},
	"Sales": {
		"id", "productId", "quantity", "sellingPrice", "total",
		"date", "customerName", "paymentMethod",
	},
	"Purchases": {
		"id", "productId", "supplierId", "quantity", "costPrice", "total",
		"date", "invoiceNumber",
	},
	"Suppliers": {
		"id", "name", "contactPerson", "phone", "email", "address", "notes",
		"createdAt", "updatedAt",
	},
	"Settings": {
		"shopName", "currency", "lowStockGlobalThreshold", "googleSheetId",
		"theme", "offlineMode", "updatedAt",
	},
}

// defaultFields backs entities that have no registered schema.
var defaultFields = []string{"id", "name"}

// Fields returns the canonical ordered field list for an entity. Unknown
// entities fall back to a minimal id/name pair.
func Fields(entity string) []string {
	fields, ok := schemas[entity]
	if !ok {
		fields = defaultFields
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Entities returns the registered entity names in stable order.
func Entities() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
