package settings

import (
	"strconv"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

const entity = "Settings"

// Settings is the shop-wide configuration singleton.
type Settings struct {
	ShopName                string `json:"shopName"`
	Currency                string `json:"currency"`
	LowStockGlobalThreshold int    `json:"lowStockGlobalThreshold"`
	GoogleSheetID           string `json:"googleSheetId"`
	Theme                   string `json:"theme"`
	OfflineMode             bool   `json:"offlineMode"`
	UpdatedAt               string `json:"updatedAt"`
}

// Defaults applied when a field has never been written.
const (
	defaultCurrency  = "INR"
	defaultTheme     = "light"
	defaultThreshold = 5
)

func fromRecord(rec sheetdb.Record) Settings {
	s := Settings{
		ShopName:                rec["shopName"],
		Currency:                rec["currency"],
		GoogleSheetID:           rec["googleSheetId"],
		Theme:                   rec["theme"],
		UpdatedAt:               rec["updatedAt"],
		LowStockGlobalThreshold: defaultThreshold,
	}
	if v := rec["lowStockGlobalThreshold"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.LowStockGlobalThreshold = n
		}
	}
	if v := rec["offlineMode"]; v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.OfflineMode = b
		}
	}
	if s.Currency == "" {
		s.Currency = defaultCurrency
	}
	if s.Theme == "" {
		s.Theme = defaultTheme
	}
	return s
}

func (s Settings) record() sheetdb.Record {
	return sheetdb.Record{
		"shopName":                s.ShopName,
		"currency":                s.Currency,
		"lowStockGlobalThreshold": strconv.Itoa(s.LowStockGlobalThreshold),
		"googleSheetId":           s.GoogleSheetID,
		"theme":                   s.Theme,
		"offlineMode":             strconv.FormatBool(s.OfflineMode),
	}
}
