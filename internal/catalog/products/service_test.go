package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type mockRepository struct {
	products map[string]Product
	order    []string
	nextID   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: map[string]Product{}, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context, q sheetdb.Query) ([]Product, error) {
	records := make([]sheetdb.Record, 0, len(m.order))
	for _, id := range m.order {
		p := m.products[id]
		rec := p.record()
		rec["id"] = p.ID
		records = append(records, rec)
	}
	out := make([]Product, 0)
	for _, rec := range q.Apply(records) {
		out = append(out, fromRecord(rec))
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (Product, error) {
	p, ok := m.products[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: Products %q", sheetdb.ErrNotFound, id)
	}
	return p, nil
}

func (m *mockRepository) Create(ctx context.Context, p Product) (Product, error) {
	if p.ID == "" {
		p.ID = fmt.Sprintf("p-%d", m.nextID)
		m.nextID++
	}
	m.products[p.ID] = p
	m.order = append(m.order, p.ID)
	return p, nil
}

func (m *mockRepository) Update(ctx context.Context, id string, fields sheetdb.Record) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("%w: Products %q", sheetdb.ErrNotFound, id)
	}
	rec := p.record()
	for k, v := range fields {
		rec[k] = v
	}
	updated := fromRecord(rec)
	updated.ID = id
	m.products[id] = updated
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("%w: Products %q", sheetdb.ErrNotFound, id)
	}
	delete(m.products, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestUpdateOverwritesOnlyGivenFields(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProductRequest{Name: "Saree", Category: "Sarees", Quantity: 10, SellingPrice: 900})
	require.NoError(t, err)

	quantity := 8
	err = svc.Update(ctx, p.ID, UpdateProductRequest{Quantity: &quantity})
	require.NoError(t, err)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity)
	assert.Equal(t, "Saree", got.Name)
	assert.Equal(t, "Sarees", got.Category)
	assert.Equal(t, 900.0, got.SellingPrice)
}

func TestListFiltersByCategory(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductRequest{Name: "A", Category: "Sarees"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProductRequest{Name: "B", Category: "Shirts"})
	require.NoError(t, err)

	list, err := svc.List(ctx, ListProductsRequest{Category: "Sarees"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
}

func TestAdjustQuantityFloorsAtZero(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProductRequest{Name: "Saree", Quantity: 3})
	require.NoError(t, err)

	left, err := svc.AdjustQuantity(ctx, p.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	left, err = svc.AdjustQuantity(ctx, p.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}

func TestLowStockUsesFallbackThreshold(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProductRequest{Name: "own threshold", Quantity: 4, LowStockThreshold: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProductRequest{Name: "fallback low", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProductRequest{Name: "healthy", Quantity: 50})
	require.NoError(t, err)

	low, err := svc.LowStock(ctx, 3)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "own threshold", low[0].Name)
	assert.Equal(t, "fallback low", low[1].Name)
}
