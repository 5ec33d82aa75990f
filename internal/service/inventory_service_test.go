package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopadmin/internal/dto"
	"shopadmin/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventoryFixture struct {
	svc       InventoryService
	repo      *stubInventoryRepo
	products  *stubProductRepo
	productID uint
}

// redis is nil in unit tests; the service must work without the alert cache.
func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()
	products := newStubProductRepo()
	repo := newStubInventoryRepo(products)

	p := &model.Product{Name: "Laptop", Price: decimal.NewFromInt(1000), CategoryID: 1}
	require.NoError(t, products.Create(context.Background(), p))

	return &inventoryFixture{
		svc:       NewInventoryService(repo, products, nil, 30*time.Second),
		repo:      repo,
		products:  products,
		productID: p.ID,
	}
}

func (f *inventoryFixture) create(t *testing.T, quantity int, threshold *int) dto.InventoryResponse {
	t.Helper()
	inv, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID:         f.productID,
		Quantity:          quantity,
		LowStockThreshold: threshold,
	})
	require.NoError(t, err)
	return inv
}

func TestInventoryCreateDefaultThreshold(t *testing.T) {
	f := newInventoryFixture(t)

	inv := f.create(t, 50, nil)
	assert.Equal(t, 10, inv.LowStockThreshold)
	assert.Equal(t, 50, inv.Quantity)
}

func TestInventoryCreateExplicitThreshold(t *testing.T) {
	f := newInventoryFixture(t)

	threshold := 25
	inv := f.create(t, 50, &threshold)
	assert.Equal(t, 25, inv.LowStockThreshold)
}

func TestInventoryCreateUnknownProduct(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{ProductID: 999, Quantity: 5})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestInventoryCreateDuplicateProduct(t *testing.T) {
	f := newInventoryFixture(t)

	f.create(t, 50, nil)
	_, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{ProductID: f.productID, Quantity: 5})
	require.ErrorIs(t, err, ErrDuplicateInventory)
}

func TestAdjustQuantityRecordsHistory(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	inv := f.create(t, 20, nil)

	updated, err := f.svc.AdjustQuantity(ctx, inv.ID, 5, model.ChangeTypeAdjust)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	rows, err := f.svc.History(ctx, inv.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 20, rows[0].PreviousQuantity)
	assert.Equal(t, 5, rows[0].NewQuantity)
	assert.Equal(t, "adjust", rows[0].ChangeType)
	assert.Equal(t, inv.ID, rows[0].InventoryID)
}

func TestAdjustQuantityNotFound(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.svc.AdjustQuantity(context.Background(), 404, 5, model.ChangeTypeAdd)
	require.ErrorIs(t, err, ErrInventoryNotFound)
}

// A failed write must leave both the quantity and the audit trail untouched.
func TestAdjustQuantityAtomic(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	inv := f.create(t, 20, nil)

	f.repo.failAdjust = errors.New("connection reset")
	_, err := f.svc.AdjustQuantity(ctx, inv.ID, 5, model.ChangeTypeRemove)
	require.Error(t, err)

	stored, err := f.repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, stored.Quantity)

	rows, err := f.svc.History(ctx, inv.ID, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHistoryNewestFirst(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	inv := f.create(t, 10, nil)

	// Seed history rows directly with explicit timestamps to pin the order.
	base := time.Now().Add(-time.Hour)
	for i, qty := range []int{15, 20, 25} {
		f.repo.history = append(f.repo.history, model.InventoryHistory{
			ID:               uint(i + 1),
			InventoryID:      inv.ID,
			PreviousQuantity: qty - 5,
			NewQuantity:      qty,
			ChangeType:       model.ChangeTypeAdd,
			Timestamp:        base.Add(time.Duration(i) * time.Minute),
		})
	}

	rows, err := f.svc.History(ctx, inv.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 25, rows[0].NewQuantity)
	assert.Equal(t, 20, rows[1].NewQuantity)
	assert.Equal(t, 15, rows[2].NewQuantity)
}

func TestAlertsThresholdBoundary(t *testing.T) {
	products := newStubProductRepo()
	repo := newStubInventoryRepo(products)
	svc := NewInventoryService(repo, products, nil, 30*time.Second)
	ctx := context.Background()

	type row struct {
		name      string
		quantity  int
		threshold int
		alerted   bool
	}
	rows := []row{
		{"Below", 5, 10, true},
		{"AtThreshold", 10, 10, true}, // boundary is inclusive
		{"Above", 11, 10, false},
	}

	for _, r := range rows {
		p := &model.Product{Name: r.name, Price: decimal.NewFromInt(10), CategoryID: 1}
		require.NoError(t, products.Create(ctx, p))
		threshold := r.threshold
		_, err := svc.Create(ctx, dto.CreateInventoryRequest{
			ProductID:         p.ID,
			Quantity:          r.quantity,
			LowStockThreshold: &threshold,
		})
		require.NoError(t, err)
	}

	alerts, err := svc.Alerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	names := []string{alerts[0].ProductName, alerts[1].ProductName}
	assert.ElementsMatch(t, []string{"Below", "AtThreshold"}, names)
	for _, a := range alerts {
		assert.Equal(t, "LOW_STOCK", a.Status)
	}
}

func TestAlertsEmpty(t *testing.T) {
	f := newInventoryFixture(t)

	f.create(t, 100, nil)

	alerts, err := f.svc.Alerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
