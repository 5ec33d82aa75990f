package repository

import (
	"context"
	"time"

	"shopadmin/internal/model"

	"gorm.io/gorm"
)

// InventoryRepository defines storage operations for inventory records and
// their append-only history.
type InventoryRepository interface {
	Create(ctx context.Context, inv *model.Inventory) error
	List(ctx context.Context, skip, limit int) ([]model.Inventory, error)
	FindByID(ctx context.Context, id uint) (*model.Inventory, error)
	FindByProductID(ctx context.Context, productID uint) (*model.Inventory, error)
	// AdjustQuantity appends the history record and overwrites the quantity in
	// a single transaction — both writes commit or neither does.
	AdjustQuantity(ctx context.Context, inventoryID uint, newQuantity int, hist *model.InventoryHistory) error
	// ListLowStock returns rows where quantity <= low_stock_threshold with the
	// owning product preloaded.
	ListLowStock(ctx context.Context) ([]model.Inventory, error)
	ListHistory(ctx context.Context, inventoryID uint, skip, limit int) ([]model.InventoryHistory, error)
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) List(ctx context.Context, skip, limit int) ([]model.Inventory, error) {
	var list []model.Inventory
	err := r.db.WithContext(ctx).Order("id asc").Offset(skip).Limit(limit).Find(&list).Error
	return list, err
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uint) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindByProductID(ctx context.Context, productID uint) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) AdjustQuantity(ctx context.Context, inventoryID uint, newQuantity int, hist *model.InventoryHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(hist).Error; err != nil {
			return err
		}
		return tx.Model(&model.Inventory{}).
			Where("id = ?", inventoryID).
			Updates(map[string]interface{}{
				"quantity":     newQuantity,
				"last_updated": time.Now().UTC(),
			}).Error
	})
}

func (r *inventoryRepo) ListLowStock(ctx context.Context) ([]model.Inventory, error) {
	var list []model.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("quantity <= low_stock_threshold").
		Find(&list).Error
	return list, err
}

func (r *inventoryRepo) ListHistory(ctx context.Context, inventoryID uint, skip, limit int) ([]model.InventoryHistory, error) {
	var history []model.InventoryHistory
	err := r.db.WithContext(ctx).
		Where("inventory_id = ?", inventoryID).
		Order("timestamp DESC").
		Offset(skip).Limit(limit).
		Find(&history).Error
	return history, err
}
