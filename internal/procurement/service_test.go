package procurement

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type mockRepository struct {
	purchases map[string]Purchase
	order     []string
	nextID    int
}

func newMockRepository() *mockRepository {
	return &mockRepository{purchases: map[string]Purchase{}, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context, q sheetdb.Query) ([]Purchase, error) {
	records := make([]sheetdb.Record, 0, len(m.order))
	for _, id := range m.order {
		records = append(records, m.purchases[id].record())
	}
	out := make([]Purchase, 0)
	for _, rec := range q.Apply(records) {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (Purchase, error) {
	p, ok := m.purchases[id]
	if !ok {
		return Purchase{}, fmt.Errorf("%w: Purchases %q", sheetdb.ErrNotFound, id)
	}
	return p, nil
}

func (m *mockRepository) Create(ctx context.Context, p Purchase) (Purchase, error) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("pu-%d", m.nextID)
		m.nextID++
	}
	m.purchases[p.ID] = p
	m.order = append(m.order, p.ID)
	return p, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.purchases[id]; !ok {
		return fmt.Errorf("%w: Purchases %q", sheetdb.ErrNotFound, id)
	}
	delete(m.purchases, id)
	return nil
}

type mockStock struct {
	adjusted map[string]int
}

func (m *mockStock) AdjustQuantity(ctx context.Context, productID string, delta int) (int, error) {
	if m.adjusted == nil {
		m.adjusted = map[string]int{}
	}
	m.adjusted[productID] += delta
	return m.adjusted[productID], nil
}

func TestCreateComputesTotalAndIncrementsStock(t *testing.T) {
	repo := newMockRepository()
	stock := &mockStock{}
	svc := NewService(repo, stock, nil)

	p, err := svc.Create(context.Background(), CreatePurchaseRequest{
		ProductID:  "p-1",
		SupplierID: "sup-1",
		Quantity:   5,
		CostPrice:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, p.Total)
	assert.NotEmpty(t, p.Date)
	assert.Equal(t, 5, stock.adjusted["p-1"])
}

func TestListFiltersBySupplier(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePurchaseRequest{ProductID: "p-1", SupplierID: "sup-1", Quantity: 1, CostPrice: 10})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePurchaseRequest{ProductID: "p-2", SupplierID: "sup-2", Quantity: 1, CostPrice: 10})
	require.NoError(t, err)

	list, err := svc.List(ctx, ListPurchasesRequest{SupplierID: "sup-2"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p-2", list[0].ProductID)
}

func TestTotalSpend(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePurchaseRequest{ProductID: "p-1", Quantity: 2, CostPrice: 100})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePurchaseRequest{ProductID: "p-2", Quantity: 1, CostPrice: 300})
	require.NoError(t, err)

	total, err := svc.TotalSpend(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500.0, total)
}
