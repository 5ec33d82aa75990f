package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Each product belongs to exactly one category,
// owns at most one inventory record and any number of sales.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(100);index;not null"`
	Description *string         `gorm:"type:varchar(500)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uint            `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}
