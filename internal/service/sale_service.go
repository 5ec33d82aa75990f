package service

import (
	"context"
	"fmt"
	"time"

	"shopadmin/internal/dto"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"

	"github.com/shopspring/decimal"
)

// SaleService records sales and computes revenue analytics over time windows.
type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (dto.SaleResponse, error)
	List(ctx context.Context, filter repository.SaleFilter) ([]dto.SaleResponse, error)
	ListByProduct(ctx context.Context, productID uint, start, end *time.Time) ([]dto.SaleResponse, error)
	RevenueAnalysis(ctx context.Context, period string, start, end *time.Time) (dto.RevenueAnalysisResponse, error)
	CompareRevenue(ctx context.Context, p1Start, p1End, p2Start, p2End time.Time) (dto.RevenueComparisonResponse, error)
}

type saleService struct {
	repo repository.SaleRepository
}

func NewSaleService(repo repository.SaleRepository) SaleService {
	return &saleService{repo: repo}
}

func mapSale(s model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate,
		CreatedAt:   s.CreatedAt,
	}
}

// Create inserts the sale exactly as given. TotalAmount is not cross-checked
// against Quantity * UnitPrice and no inventory is decremented.
func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (dto.SaleResponse, error) {
	sale := &model.Sale{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.TotalAmount,
		SaleDate:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return dto.SaleResponse{}, err
	}
	return mapSale(*sale), nil
}

func (s *saleService) List(ctx context.Context, filter repository.SaleFilter) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapSales(sales), nil
}

func (s *saleService) ListByProduct(ctx context.Context, productID uint, start, end *time.Time) ([]dto.SaleResponse, error) {
	sales, err := s.repo.ListByProduct(ctx, productID, start, end)
	if err != nil {
		return nil, err
	}
	return mapSales(sales), nil
}

func mapSales(sales []model.Sale) []dto.SaleResponse {
	result := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		result = append(result, mapSale(sale))
	}
	return result
}

// RevenueAnalysis aggregates revenue over [start, end], defaulting to the
// last 30 days when bounds are omitted. A window with zero sales yields an
// average order value of 0 — the divisor is clamped to 1, never an error.
func (s *saleService) RevenueAnalysis(ctx context.Context, period string, start, end *time.Time) (dto.RevenueAnalysisResponse, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}
	return s.analyze(ctx, period, from, to)
}

func (s *saleService) analyze(ctx context.Context, period string, start, end time.Time) (dto.RevenueAnalysisResponse, error) {
	total, count, err := s.repo.Aggregate(ctx, start, end)
	if err != nil {
		return dto.RevenueAnalysisResponse{}, err
	}

	divisor := count
	if divisor == 0 {
		divisor = 1
	}

	return dto.RevenueAnalysisResponse{
		Period:            period,
		TotalRevenue:      total,
		TotalSales:        count,
		AverageOrderValue: total.Div(decimal.NewFromInt(divisor)).Round(2),
	}, nil
}

// CompareRevenue runs two independent analyses and reports the revenue change
// from period 1 to period 2 as a percentage. When period 1 earned nothing the
// change is reported as 0 rather than an error.
func (s *saleService) CompareRevenue(ctx context.Context, p1Start, p1End, p2Start, p2End time.Time) (dto.RevenueComparisonResponse, error) {
	label := func(start, end time.Time) string {
		return fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	period1, err := s.analyze(ctx, label(p1Start, p1End), p1Start, p1End)
	if err != nil {
		return dto.RevenueComparisonResponse{}, err
	}
	period2, err := s.analyze(ctx, label(p2Start, p2End), p2Start, p2End)
	if err != nil {
		return dto.RevenueComparisonResponse{}, err
	}

	change := decimal.Zero
	if period1.TotalRevenue.IsPositive() {
		change = period2.TotalRevenue.Sub(period1.TotalRevenue).
			Div(period1.TotalRevenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return dto.RevenueComparisonResponse{
		Period1:          period1,
		Period2:          period2,
		PercentageChange: change,
	}, nil
}
