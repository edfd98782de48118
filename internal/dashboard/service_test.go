package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksheet/stocksheet/internal/catalog/products"
	"github.com/stocksheet/stocksheet/internal/sales"
)

type mockProducts struct {
	list []products.Product
	low  []products.Product
	err  error
}

func (m *mockProducts) List(ctx context.Context, req products.ListProductsRequest) ([]products.Product, error) {
	return m.list, m.err
}

func (m *mockProducts) LowStock(ctx context.Context, fallbackThreshold int) ([]products.Product, error) {
	return m.low, m.err
}

type mockSales struct {
	list    []sales.Sale
	revenue float64
}

func (m *mockSales) List(ctx context.Context, req sales.ListSalesRequest) ([]sales.Sale, error) {
	return m.list, nil
}

func (m *mockSales) TotalRevenue(ctx context.Context) (float64, error) {
	return m.revenue, nil
}

type mockPurchases struct {
	spend float64
}

func (m *mockPurchases) TotalSpend(ctx context.Context) (float64, error) {
	return m.spend, nil
}

type fixedThreshold int

func (f fixedThreshold) GlobalLowStockThreshold(ctx context.Context) int { return int(f) }

func TestSummaryAggregates(t *testing.T) {
	prods := &mockProducts{
		list: []products.Product{
			{ID: "p1", Quantity: 10, CostPrice: 2.5},
			{ID: "p2", Quantity: 4, CostPrice: 10},
		},
		low: []products.Product{{ID: "p2", Quantity: 4}},
	}
	sls := &mockSales{
		revenue: 320,
		list: []sales.Sale{
			{ID: "s1", Date: "2026-08-01T10:00:00Z"},
			{ID: "s2", Date: "2026-08-03T10:00:00Z"},
			{ID: "s3", Date: "2026-08-02T10:00:00Z"},
		},
	}
	svc := NewService(prods, sls, &mockPurchases{spend: 180}, fixedThreshold(5))

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, got.ProductCount)
	assert.Equal(t, 65.0, got.StockValue)
	assert.Equal(t, 320.0, got.TotalRevenue)
	assert.Equal(t, 180.0, got.TotalSpend)
	assert.Equal(t, 1, got.LowStockCount)
	require.Len(t, got.RecentSales, 3)
	assert.Equal(t, "s2", got.RecentSales[0].ID)
	assert.Equal(t, "s3", got.RecentSales[1].ID)
}

func TestSummaryRecentSalesCapped(t *testing.T) {
	sls := &mockSales{}
	for i := 0; i < 8; i++ {
		sls.list = append(sls.list, sales.Sale{ID: string(rune('a' + i))})
	}
	svc := NewService(&mockProducts{}, sls, &mockPurchases{}, fixedThreshold(5))

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.RecentSales, recentSalesLimit)
}

func TestSummaryPropagatesFailure(t *testing.T) {
	prods := &mockProducts{err: errors.New("workbook locked")}
	svc := NewService(prods, &mockSales{}, &mockPurchases{}, fixedThreshold(5))

	_, err := svc.Summary(context.Background())
	assert.Error(t, err)
}
