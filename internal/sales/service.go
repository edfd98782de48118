package sales

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

// StockAdjuster shifts a product's quantity when a sale is recorded.
type StockAdjuster interface {
	AdjustQuantity(ctx context.Context, productID string, delta int) (int, error)
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

func (s *Service) List(ctx context.Context, req ListSalesRequest) ([]Sale, error) {
	filters := map[string]string{}
	if req.ProductID != "" {
		filters["productId"] = req.ProductID
	}
	if req.PaymentMethod != "" {
		filters["paymentMethod"] = req.PaymentMethod
	}
	return s.repo.List(ctx, sheetdb.Query{Filters: filters, Limit: req.Limit, Offset: req.Offset})
}

func (s *Service) Get(ctx context.Context, id string) (Sale, error) {
	return s.repo.Get(ctx, id)
}

// Create records a sale. A missing total is computed as quantity times
// selling price, a missing date is stamped now, and the sold product's
// stock is decremented. A sale against an unknown product is still
// recorded; the sheet holds whatever the caller sent.
func (s *Service) Create(ctx context.Context, req CreateSaleRequest) (Sale, error) {
	sale := Sale{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		SellingPrice:  req.SellingPrice,
		Total:         req.Total,
		Date:          req.Date,
		CustomerName:  req.CustomerName,
		PaymentMethod: req.PaymentMethod,
	}
	if sale.Total == 0 {
		sale.Total = float64(sale.Quantity) * sale.SellingPrice
	}
	if sale.Date == "" {
		sale.Date = time.Now().UTC().Format(time.RFC3339)
	}

	stored, err := s.repo.Create(ctx, sale)
	if err != nil {
		return Sale{}, err
	}

	if s.stock != nil {
		if _, err := s.stock.AdjustQuantity(ctx, sale.ProductID, -sale.Quantity); err != nil {
			if !errors.Is(err, sheetdb.ErrNotFound) {
				return Sale{}, err
			}
			s.logger.Warn("sale references unknown product", "productId", sale.ProductID, "saleId", stored.ID)
		}
	}
	return stored, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// TotalRevenue sums the total column across all recorded sales.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	all, err := s.repo.List(ctx, sheetdb.Query{})
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, sale := range all {
		sum += sale.Total
	}
	return sum, nil
}
