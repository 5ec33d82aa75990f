package model

import "time"

// Change types recorded on inventory history entries. The tag is purely
// descriptive audit metadata — the handler never derives deltas from it.
const (
	ChangeTypeAdd    = "add"
	ChangeTypeRemove = "remove"
	ChangeTypeAdjust = "adjust"
)

// InventoryHistory is an append-only audit record of a quantity change.
// Rows are never updated or deleted after creation.
type InventoryHistory struct {
	ID               uint      `gorm:"primaryKey"`
	InventoryID      uint      `gorm:"index;not null"`
	PreviousQuantity int       `gorm:"not null"`
	NewQuantity      int       `gorm:"not null"`
	ChangeType       string    `gorm:"type:varchar(20);not null"` // "add" | "remove" | "adjust"
	Timestamp        time.Time `gorm:"autoCreateTime"`

	Inventory *Inventory `gorm:"foreignKey:InventoryID"`
}

// TableName overrides GORM's default pluralization (inventory_histories → inventory_history).
func (InventoryHistory) TableName() string { return "inventory_history" }
