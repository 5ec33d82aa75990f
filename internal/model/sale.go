package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an append-only sales record. TotalAmount is stored exactly as the
// caller supplied it — it is never recomputed from Quantity * UnitPrice, and
// recording a sale does not touch inventory.
type Sale struct {
	ID          uint            `gorm:"primaryKey"`
	ProductID   uint            `gorm:"index;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SaleDate    time.Time       `gorm:"index;not null"`
	CreatedAt   time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
