package sales

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type mockRepository struct {
	sales  map[string]Sale
	order  []string
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{sales: map[string]Sale{}, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context, q sheetdb.Query) ([]Sale, error) {
	records := make([]sheetdb.Record, 0, len(m.order))
	for _, id := range m.order {
		records = append(records, m.sales[id].record())
	}
	out := make([]Sale, 0)
	for _, rec := range q.Apply(records) {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (Sale, error) {
	s, ok := m.sales[id]
	if !ok {
		return Sale{}, fmt.Errorf("%w: Sales %q", sheetdb.ErrNotFound, id)
	}
	return s, nil
}

func (m *mockRepository) Create(ctx context.Context, s Sale) (Sale, error) {
	if s.ID == "" {
		s.ID = fmt.Sprintf("s-%d", m.nextID)
		m.nextID++
	}
	m.sales[s.ID] = s
	m.order = append(m.order, s.ID)
	return s, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.sales[id]; !ok {
		return fmt.Errorf("%w: Sales %q", sheetdb.ErrNotFound, id)
	}
	delete(m.sales, id)
	return nil
}

type mockStock struct {
	adjusted map[string]int
	missing  bool
}

func (m *mockStock) AdjustQuantity(ctx context.Context, productID string, delta int) (int, error) {
	if m.missing {
		return 0, fmt.Errorf("%w: Products %q", sheetdb.ErrNotFound, productID)
	}
	if m.adjusted == nil {
		m.adjusted = map[string]int{}
	}
	m.adjusted[productID] += delta
	return m.adjusted[productID], nil
}

func TestCreateComputesTotalAndStampsDate(t *testing.T) {
	repo := newMockRepository()
	stock := &mockStock{}
	svc := NewService(repo, stock, nil)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{
		ProductID:     "p-1",
		Quantity:      2,
		SellingPrice:  900,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 1800.0, sale.Total)
	assert.NotEmpty(t, sale.Date)
	assert.NotEmpty(t, sale.ID)
}

func TestCreateDecrementsStock(t *testing.T) {
	repo := newMockRepository()
	stock := &mockStock{}
	svc := NewService(repo, stock, nil)

	_, err := svc.Create(context.Background(), CreateSaleRequest{ProductID: "p-1", Quantity: 3, SellingPrice: 100})
	require.NoError(t, err)
	assert.Equal(t, -3, stock.adjusted["p-1"])
}

func TestCreateKeepsExplicitTotal(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil, nil)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{ProductID: "p-1", Quantity: 2, SellingPrice: 900, Total: 1500})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, sale.Total)
}

func TestCreateToleratesUnknownProduct(t *testing.T) {
	repo := newMockRepository()
	stock := &mockStock{missing: true}
	svc := NewService(repo, stock, nil)

	sale, err := svc.Create(context.Background(), CreateSaleRequest{ProductID: "ghost", Quantity: 1, SellingPrice: 50})
	require.NoError(t, err)
	assert.NotEmpty(t, sale.ID)
}

func TestTotalRevenue(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSaleRequest{ProductID: "p-1", Quantity: 2, SellingPrice: 100})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateSaleRequest{ProductID: "p-2", Quantity: 1, SellingPrice: 50})
	require.NoError(t, err)

	total, err := svc.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250.0, total)
}
