package settings

import (
	"context"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// Store is the slice of the sheet store the settings service needs.
type Store interface {
	GetSingleton(ctx context.Context, entity string) (sheetdb.Record, error)
	PutSingleton(ctx context.Context, entity string, rec sheetdb.Record) (sheetdb.Record, error)
	Configured() bool
	Path() string
	InitAll(ctx context.Context) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the current settings, with defaults for fields never written.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	rec, err := s.store.GetSingleton(ctx, entity)
	if err != nil {
		return Settings{}, err
	}
	return fromRecord(rec), nil
}

// UpdateSettingsRequest carries a partial settings update. Nil fields are
// left untouched.
type UpdateSettingsRequest struct {
	ShopName                *string `json:"shopName,omitempty"`
	Currency                *string `json:"currency,omitempty" validate:"omitempty,max=8"`
	LowStockGlobalThreshold *int    `json:"lowStockGlobalThreshold,omitempty" validate:"omitempty,gte=0"`
	GoogleSheetID           *string `json:"googleSheetId,omitempty"`
	Theme                   *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	OfflineMode             *bool   `json:"offlineMode,omitempty"`
}

// Update merges the request into the stored singleton and returns the
// resulting settings.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if req.ShopName != nil {
		current.ShopName = *req.ShopName
	}
	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	if req.LowStockGlobalThreshold != nil {
		current.LowStockGlobalThreshold = *req.LowStockGlobalThreshold
	}
	if req.GoogleSheetID != nil {
		current.GoogleSheetID = *req.GoogleSheetID
	}
	if req.Theme != nil {
		current.Theme = *req.Theme
	}
	if req.OfflineMode != nil {
		current.OfflineMode = *req.OfflineMode
	}

	rec, err := s.store.PutSingleton(ctx, entity, current.record())
	if err != nil {
		return Settings{}, err
	}
	return fromRecord(rec), nil
}

// GlobalLowStockThreshold reports the shop-wide low stock threshold. Errors
// fall back to the default so stock alerts keep working.
func (s *Service) GlobalLowStockThreshold(ctx context.Context) int {
	settings, err := s.Get(ctx)
	if err != nil {
		return defaultThreshold
	}
	if settings.LowStockGlobalThreshold <= 0 {
		return defaultThreshold
	}
	return settings.LowStockGlobalThreshold
}

// Status describes whether the backing workbook exists and which sheets it
// will carry once provisioned. Used by the first-run setup screen.
type Status struct {
	Configured   bool     `json:"configured"`
	WorkbookPath string   `json:"workbookPath"`
	Sheets       []string `json:"sheets"`
}

func (s *Service) Status(ctx context.Context) Status {
	return Status{
		Configured:   s.store.Configured(),
		WorkbookPath: s.store.Path(),
		Sheets:       sheetdb.Entities(),
	}
}

// Provision creates the workbook and every registered sheet.
func (s *Service) Provision(ctx context.Context) (Status, error) {
	if err := s.store.InitAll(ctx); err != nil {
		return Status{}, err
	}
	return s.Status(ctx), nil
}
