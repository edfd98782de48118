package procurement

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// StockAdjuster shifts a product's quantity when a purchase is received.
type StockAdjuster interface {
	AdjustQuantity(ctx context.Context, productID string, delta int) (int, error)
}

type CreatePurchaseRequest struct {
	ProductID     string  `json:"productId" validate:"required"`
	SupplierID    string  `json:"supplierId,omitempty"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	CostPrice     float64 `json:"costPrice" validate:"gte=0"`
	Total         float64 `json:"total" validate:"gte=0"`
	Date          string  `json:"date,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty" validate:"max=100"`
}

type ListPurchasesRequest struct {
	ProductID  string `json:"productId,omitempty"`
	SupplierID string `json:"supplierId,omitempty"`
	Limit      int    `json:"limit" validate:"gte=0,lte=1000"`
	Offset     int    `json:"offset" validate:"gte=0"`
}

type Service struct {
	repo   Repository
	stock  StockAdjuster
	logger *slog.Logger
}

func NewService(repo Repository, stock StockAdjuster, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, stock: stock, logger: logger}
}

func (s *Service) List(ctx context.Context, req ListPurchasesRequest) ([]Purchase, error) {
	filters := map[string]string{}
	if req.ProductID != "" {
		filters["productId"] = req.ProductID
	}
	if req.SupplierID != "" {
		filters["supplierId"] = req.SupplierID
	}
	return s.repo.List(ctx, sheetdb.Query{Filters: filters, Limit: req.Limit, Offset: req.Offset})
}

func (s *Service) Get(ctx context.Context, id string) (Purchase, error) {
	return s.repo.Get(ctx, id)
}

// Create records a purchase. A missing total is computed as quantity times
// cost price, a missing date is stamped now, and the product's stock is
// incremented by the received quantity.
func (s *Service) Create(ctx context.Context, req CreatePurchaseRequest) (Purchase, error) {
	purchase := Purchase{
		ProductID:     req.ProductID,
		SupplierID:    req.SupplierID,
		Quantity:      req.Quantity,
		CostPrice:     req.CostPrice,
		Total:         req.Total,
		Date:          req.Date,
		InvoiceNumber: req.InvoiceNumber,
	}
	if purchase.Total == 0 {
		purchase.Total = float64(purchase.Quantity) * purchase.CostPrice
	}
	if purchase.Date == "" {
		purchase.Date = time.Now().UTC().Format(time.RFC3339)
	}

	stored, err := s.repo.Create(ctx, purchase)
	if err != nil {
		return Purchase{}, err
	}

	if s.stock != nil {
		if _, err := s.stock.AdjustQuantity(ctx, purchase.ProductID, purchase.Quantity); err != nil {
			if !errors.Is(err, sheetdb.ErrNotFound) {
				return Purchase{}, err
			}
			s.logger.Warn("purchase references unknown product", "productId", purchase.ProductID, "purchaseId", stored.ID)
		}
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// TotalSpend sums the total column across all recorded purchases.
func (s *Service) TotalSpend(ctx context.Context) (float64, error) {
	all, err := s.repo.List(ctx, sheetdb.Query{})
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range all {
		sum += p.Total
	}
	return sum, nil
}
