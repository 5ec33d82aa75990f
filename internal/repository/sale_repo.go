package repository

import (
	"context"
	"time"

	"shopadmin/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleFilter defines filters for listing sales. Nil bounds remove the
// corresponding predicate; date bounds are inclusive.
type SaleFilter struct {
	ProductID *uint
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int
	Limit     int
}

// SaleRepository defines storage operations for the append-only sales table.
type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]model.Sale, error)
	ListByProduct(ctx context.Context, productID uint, start, end *time.Time) ([]model.Sale, error)
	// Aggregate sums total_amount and counts rows for sales with sale_date in
	// the inclusive [start, end] range.
	Aggregate(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepo{db: db}
}

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) List(ctx context.Context, filter SaleFilter) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.StartDate != nil {
		q = q.Where("sale_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("sale_date <= ?", *filter.EndDate)
	}
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}

	var sales []model.Sale
	err := q.Order("id asc").Offset(filter.Skip).Limit(filter.Limit).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListByProduct(ctx context.Context, productID uint, start, end *time.Time) ([]model.Sale, error) {
	q := r.db.WithContext(ctx).Where("product_id = ?", productID)
	if start != nil {
		q = q.Where("sale_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("sale_date <= ?", *end)
	}

	var sales []model.Sale
	err := q.Order("id asc").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Aggregate(ctx context.Context, start, end time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		TotalRevenue decimal.Decimal
		TotalSales   int64
	}
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(id) AS total_sales").
		Where("sale_date BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	return row.TotalRevenue, row.TotalSales, nil
}
