package service

// In-memory repository stubs shared by the service tests. Not-found lookups
// return gorm.ErrRecordNotFound so the services see the same signal they
// would get from the real store.

import (
	"context"
	"sort"
	"time"

	"shopadmin/internal/model"
	"shopadmin/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── CategoryRepository stub ──────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*model.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) List(_ context.Context, skip, limit int) ([]model.Category, error) {
	ids := make([]uint, 0, len(r.categories))
	for id := range r.categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Category
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *r.categories[id])
	}
	return result, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	c.UpdatedAt = time.Now()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── ProductRepository stub ───────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) List(_ context.Context, skip, limit int) ([]model.Product, error) {
	ids := make([]uint, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Product
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *r.products[id])
	}
	return result, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	p.UpdatedAt = time.Now()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── InventoryRepository stub ─────────────────────────────────────────────────

type stubInventoryRepo struct {
	inventories map[uint]*model.Inventory
	history     []model.InventoryHistory
	products    *stubProductRepo // for preloading product names in ListLowStock
	nextID      uint
	nextHistID  uint

	// failAdjust makes the next AdjustQuantity fail before any write, the
	// way a rolled-back transaction would.
	failAdjust error
}

func newStubInventoryRepo(products *stubProductRepo) *stubInventoryRepo {
	return &stubInventoryRepo{
		inventories: make(map[uint]*model.Inventory),
		products:    products,
		nextID:      1,
		nextHistID:  1,
	}
}

func (r *stubInventoryRepo) Create(_ context.Context, inv *model.Inventory) error {
	inv.ID = r.nextID
	r.nextID++
	inv.LastUpdated = time.Now()
	cp := *inv
	r.inventories[inv.ID] = &cp
	return nil
}

func (r *stubInventoryRepo) List(_ context.Context, skip, limit int) ([]model.Inventory, error) {
	ids := make([]uint, 0, len(r.inventories))
	for id := range r.inventories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.Inventory
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, *r.inventories[id])
	}
	return result, nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uint) (*model.Inventory, error) {
	inv, ok := r.inventories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInventoryRepo) FindByProductID(_ context.Context, productID uint) (*model.Inventory, error) {
	for _, inv := range r.inventories {
		if inv.ProductID == productID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) AdjustQuantity(_ context.Context, inventoryID uint, newQuantity int, hist *model.InventoryHistory) error {
	if r.failAdjust != nil {
		err := r.failAdjust
		r.failAdjust = nil
		return err
	}
	inv, ok := r.inventories[inventoryID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	hist.ID = r.nextHistID
	r.nextHistID++
	hist.Timestamp = time.Now()
	r.history = append(r.history, *hist)
	inv.Quantity = newQuantity
	inv.LastUpdated = time.Now()
	return nil
}

func (r *stubInventoryRepo) ListLowStock(_ context.Context) ([]model.Inventory, error) {
	var result []model.Inventory
	for _, inv := range r.inventories {
		if inv.Quantity <= inv.LowStockThreshold {
			cp := *inv
			if p, ok := r.products.products[inv.ProductID]; ok {
				pc := *p
				cp.Product = &pc
			}
			result = append(result, cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *stubInventoryRepo) ListHistory(_ context.Context, inventoryID uint, skip, limit int) ([]model.InventoryHistory, error) {
	var rows []model.InventoryHistory
	for _, h := range r.history {
		if h.InventoryID == inventoryID {
			rows = append(rows, h)
		}
	}
	// newest first
	sort.Slice(rows, func(i, j int) bool { return rows[i].Timestamp.After(rows[j].Timestamp) })
	if skip > len(rows) {
		skip = len(rows)
	}
	rows = rows[skip:]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

// ── SaleRepository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  []model.Sale
	nextID uint
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{nextID: 1}
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	s.ID = r.nextID
	r.nextID++
	s.CreatedAt = time.Now()
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]model.Sale, error) {
	var result []model.Sale
	for _, s := range r.sales {
		if filter.ProductID != nil && s.ProductID != *filter.ProductID {
			continue
		}
		if filter.StartDate != nil && s.SaleDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.SaleDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, s)
	}
	if filter.Skip > len(result) {
		filter.Skip = len(result)
	}
	result = result[filter.Skip:]
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *stubSaleRepo) ListByProduct(ctx context.Context, productID uint, start, end *time.Time) ([]model.Sale, error) {
	return r.List(ctx, repository.SaleFilter{ProductID: &productID, StartDate: start, EndDate: end, Limit: len(r.sales)})
}

func (r *stubSaleRepo) Aggregate(_ context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, s := range r.sales {
		if s.SaleDate.Before(start) || s.SaleDate.After(end) {
			continue
		}
		total = total.Add(s.TotalAmount)
		count++
	}
	return total, count, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)
