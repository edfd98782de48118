package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

type mockStore struct {
	rec         sheetdb.Record
	configured  bool
	provisioned bool
}

func (m *mockStore) GetSingleton(ctx context.Context, entity string) (sheetdb.Record, error) {
	if m.rec == nil {
		return sheetdb.Record{}, nil
	}
	return m.rec, nil
}

func (m *mockStore) PutSingleton(ctx context.Context, entity string, rec sheetdb.Record) (sheetdb.Record, error) {
	m.rec = rec
	return rec, nil
}

func (m *mockStore) Configured() bool { return m.configured }

func (m *mockStore) Path() string { return "/tmp/stocksheet.xlsx" }

func (m *mockStore) InitAll(ctx context.Context) error {
	m.provisioned = true
	m.configured = true
	return nil
}

func TestGetAppliesDefaults(t *testing.T) {
	svc := NewService(&mockStore{})

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, defaultThreshold, got.LowStockGlobalThreshold)
	assert.False(t, got.OfflineMode)
}

func TestUpdateMergesPartialRequest(t *testing.T) {
	svc := NewService(&mockStore{})
	ctx := context.Background()

	name := "Corner Shop"
	threshold := 12
	_, err := svc.Update(ctx, UpdateSettingsRequest{ShopName: &name, LowStockGlobalThreshold: &threshold})
	require.NoError(t, err)

	dark := "dark"
	got, err := svc.Update(ctx, UpdateSettingsRequest{Theme: &dark})
	require.NoError(t, err)

	assert.Equal(t, "Corner Shop", got.ShopName)
	assert.Equal(t, 12, got.LowStockGlobalThreshold)
	assert.Equal(t, "dark", got.Theme)
}

func TestGlobalLowStockThresholdFallsBack(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)
	ctx := context.Background()

	assert.Equal(t, defaultThreshold, svc.GlobalLowStockThreshold(ctx))

	threshold := 3
	_, err := svc.Update(ctx, UpdateSettingsRequest{LowStockGlobalThreshold: &threshold})
	require.NoError(t, err)
	assert.Equal(t, 3, svc.GlobalLowStockThreshold(ctx))
}

func TestProvisionReportsConfigured(t *testing.T) {
	store := &mockStore{}
	svc := NewService(store)

	before := svc.Status(context.Background())
	assert.False(t, before.Configured)

	after, err := svc.Provision(context.Background())
	require.NoError(t, err)
	assert.True(t, after.Configured)
	assert.True(t, store.provisioned)
	assert.Contains(t, after.Sheets, "Products")
	assert.Contains(t, after.Sheets, "Settings")
}
