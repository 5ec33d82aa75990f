package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CreateSaleRequest records a sale exactly as submitted. TotalAmount is not
// cross-checked against Quantity * UnitPrice, and no stock is decremented —
// sales recording is decoupled from stock control.
type CreateSaleRequest struct {
	ProductID   uint            `json:"product_id"   validate:"required"`
	Quantity    int             `json:"quantity"     validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"   validate:"min=0"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"min=0"`
}

// SaleFilter is bound from the query string of GET /sales. Dates are parsed
// by the handler (RFC 3339 or YYYY-MM-DD); omitted bounds remove the
// corresponding predicate, not the results.
type SaleFilter struct {
	Skip      int    `form:"skip,default=0"    validate:"min=0"`
	Limit     int    `form:"limit,default=100" validate:"min=1,max=500"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	ProductID *uint  `form:"product_id"`
}

// RevenueQuery selects the analysis window. The range defaults to the last
// 30 days when bounds are omitted; period is a free-form label echoed back.
type RevenueQuery struct {
	Period    string `form:"period,default=daily"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// CompareQuery holds the two windows for a revenue comparison.
type CompareQuery struct {
	Period1Start string `form:"period1_start" validate:"required"`
	Period1End   string `form:"period1_end"   validate:"required"`
	Period2Start string `form:"period2_start" validate:"required"`
	Period2End   string `form:"period2_end"   validate:"required"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type SaleResponse struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	SaleDate    time.Time       `json:"sale_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RevenueAnalysisResponse struct {
	Period            string          `json:"period"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalSales        int64           `json:"total_sales"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type RevenueComparisonResponse struct {
	Period1          RevenueAnalysisResponse `json:"period1"`
	Period2          RevenueAnalysisResponse `json:"period2"`
	PercentageChange decimal.Decimal         `json:"percentage_change"`
}
