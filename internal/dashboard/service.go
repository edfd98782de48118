package dashboard

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/stocksheet/stocksheet/internal/catalog/products"
	"github.com/stocksheet/stocksheet/internal/sales"
)

const recentSalesLimit = 5

// ProductSource supplies the catalog numbers shown on the dashboard.
type ProductSource interface {
	List(ctx context.Context, req products.ListProductsRequest) ([]products.Product, error)
	LowStock(ctx context.Context, fallbackThreshold int) ([]products.Product, error)
}

// SalesSource supplies revenue and recent activity.
type SalesSource interface {
	List(ctx context.Context, req sales.ListSalesRequest) ([]sales.Sale, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

// PurchaseSource supplies the spend side.
type PurchaseSource interface {
	TotalSpend(ctx context.Context) (float64, error)
}

// ThresholdSource supplies the shop-wide low-stock threshold.
type ThresholdSource interface {
	GlobalLowStockThreshold(ctx context.Context) int
}

// Summary is the aggregated dashboard payload.
type Summary struct {
	ProductCount  int                `json:"productCount"`
	StockValue    float64            `json:"stockValue"`
	TotalRevenue  float64            `json:"totalRevenue"`
	TotalSpend    float64            `json:"totalSpend"`
	LowStockCount int                `json:"lowStockCount"`
	LowStock      []products.Product `json:"lowStock"`
	RecentSales   []sales.Sale       `json:"recentSales"`
}

type Service struct {
	products   ProductSource
	sales      SalesSource
	purchases  PurchaseSource
	thresholds ThresholdSource
}

func NewService(p ProductSource, s SalesSource, pu PurchaseSource, th ThresholdSource) *Service {
	return &Service{products: p, sales: s, purchases: pu, thresholds: th}
}

// Summary fans out the independent aggregate reads and assembles the
// dashboard payload. Any single failure fails the whole summary.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	threshold := s.thresholds.GlobalLowStockThreshold(ctx)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.products.List(ctx, products.ListProductsRequest{})
		if err != nil {
			return err
		}
		out.ProductCount = len(list)
		for _, p := range list {
			out.StockValue += float64(p.Quantity) * p.CostPrice
		}
		return nil
	})

	g.Go(func() error {
		low, err := s.products.LowStock(ctx, threshold)
		if err != nil {
			return err
		}
		out.LowStock = low
		return nil
	})

	g.Go(func() error {
		revenue, err := s.sales.TotalRevenue(ctx)
		if err != nil {
			return err
		}
		out.TotalRevenue = revenue
		return nil
	})

	g.Go(func() error {
		spend, err := s.purchases.TotalSpend(ctx)
		if err != nil {
			return err
		}
		out.TotalSpend = spend
		return nil
	})

	g.Go(func() error {
		recent, err := s.sales.List(ctx, sales.ListSalesRequest{})
		if err != nil {
			return err
		}
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].Date > recent[j].Date
		})
		if len(recent) > recentSalesLimit {
			recent = recent[:recentSalesLimit]
		}
		out.RecentSales = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	out.LowStockCount = len(out.LowStock)
	return out, nil
}
