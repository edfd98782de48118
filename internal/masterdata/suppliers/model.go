package suppliers

import (
	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Supplier represents a supplier entity.
type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

func fromRecord(rec sheetdb.Record) Supplier {
	return Supplier{
		ID:            rec["id"],
		Name:          rec["name"],
		ContactPerson: rec["contactPerson"],
		Phone:         rec["phone"],
		Email:         rec["email"],
		Address:       rec["address"],
		Notes:         rec["notes"],
		CreatedAt:     rec["createdAt"],
		UpdatedAt:     rec["updatedAt"],
	}
}

func (s Supplier) record() sheetdb.Record {
	return sheetdb.Record{
		"id":            s.ID,
		"name":          s.Name,
		"contactPerson": s.ContactPerson,
		"phone":         s.Phone,
		"email":         s.Email,
		"address":       s.Address,
		"notes":         s.Notes,
	}
}
