package model

import "time"

// Inventory tracks the stock level of a single product (one record per
// product, enforced by the unique index on ProductID).
type Inventory struct {
	ID                uint      `gorm:"primaryKey"`
	ProductID         uint      `gorm:"uniqueIndex;not null"`
	Quantity          int       `gorm:"not null;default:0"`
	LowStockThreshold int       `gorm:"not null;default:10"`
	LastUpdated       time.Time `gorm:"autoUpdateTime"`

	Product *Product           `gorm:"foreignKey:ProductID"`
	History []InventoryHistory `gorm:"foreignKey:InventoryID"`
}

// TableName overrides GORM's default pluralization (inventories → inventory).
func (Inventory) TableName() string { return "inventory" }
