package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shopadmin/internal/dto"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const alertsCacheKey = "inventory:alerts"

// InventoryService defines business operations for stock levels, the
// low-stock alert view and the audit history.
type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) (dto.InventoryResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.InventoryResponse, error)
	Alerts(ctx context.Context) ([]dto.InventoryAlertResponse, error)
	AdjustQuantity(ctx context.Context, id uint, newQuantity int, changeType string) (dto.InventoryResponse, error)
	History(ctx context.Context, inventoryID uint, skip, limit int) ([]dto.InventoryHistoryResponse, error)
}

type inventoryService struct {
	repo     repository.InventoryRepository
	products repository.ProductRepository
	rdb      *redis.Client // optional — nil disables the alert cache
	alertTTL time.Duration
}

func NewInventoryService(repo repository.InventoryRepository, products repository.ProductRepository, rdb *redis.Client, alertTTL time.Duration) InventoryService {
	return &inventoryService{repo: repo, products: products, rdb: rdb, alertTTL: alertTTL}
}

func mapInventory(inv model.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:                inv.ID,
		ProductID:         inv.ProductID,
		Quantity:          inv.Quantity,
		LowStockThreshold: inv.LowStockThreshold,
		LastUpdated:       inv.LastUpdated,
	}
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (dto.InventoryResponse, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.InventoryResponse{}, ErrProductNotFound
		}
		return dto.InventoryResponse{}, err
	}

	existing, err := s.repo.FindByProductID(ctx, req.ProductID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.InventoryResponse{}, err
	}
	if existing != nil {
		return dto.InventoryResponse{}, ErrDuplicateInventory
	}

	threshold := 10
	if req.LowStockThreshold != nil {
		threshold = *req.LowStockThreshold
	}

	inv := &model.Inventory{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		LowStockThreshold: threshold,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.InventoryResponse{}, ErrDuplicateInventory
		}
		return dto.InventoryResponse{}, err
	}

	s.invalidateAlerts(ctx)
	return mapInventory(*inv), nil
}

func (s *inventoryService) List(ctx context.Context, skip, limit int) ([]dto.InventoryResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		result = append(result, mapInventory(inv))
	}
	return result, nil
}

// Alerts returns every inventory row at or below its threshold. The derived
// view is served from a short-TTL redis cache when available; cache failures
// fall back to the store.
func (s *inventoryService) Alerts(ctx context.Context) ([]dto.InventoryAlertResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, alertsCacheKey).Bytes(); err == nil {
			var cached []dto.InventoryAlertResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.InventoryAlertResponse, 0, len(rows))
	for _, inv := range rows {
		name := ""
		if inv.Product != nil {
			name = inv.Product.Name
		}
		alerts = append(alerts, dto.InventoryAlertResponse{
			ProductID:         inv.ProductID,
			ProductName:       name,
			CurrentQuantity:   inv.Quantity,
			LowStockThreshold: inv.LowStockThreshold,
			Status:            "LOW_STOCK",
		})
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(alerts); err == nil {
			if err := s.rdb.Set(ctx, alertsCacheKey, raw, s.alertTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("alert cache write failed")
			}
		}
	}
	return alerts, nil
}

// AdjustQuantity overwrites the stored quantity with the caller-supplied
// absolute value and appends an audit record; both writes happen in one
// transaction. changeType is recorded verbatim — no delta is derived from it.
func (s *inventoryService) AdjustQuantity(ctx context.Context, id uint, newQuantity int, changeType string) (dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.InventoryResponse{}, ErrInventoryNotFound
		}
		return dto.InventoryResponse{}, err
	}

	hist := &model.InventoryHistory{
		InventoryID:      id,
		PreviousQuantity: inv.Quantity,
		NewQuantity:      newQuantity,
		ChangeType:       changeType,
	}
	if err := s.repo.AdjustQuantity(ctx, id, newQuantity, hist); err != nil {
		return dto.InventoryResponse{}, err
	}

	s.invalidateAlerts(ctx)

	inv.Quantity = newQuantity
	inv.LastUpdated = time.Now().UTC()
	return mapInventory(*inv), nil
}

func (s *inventoryService) History(ctx context.Context, inventoryID uint, skip, limit int) ([]dto.InventoryHistoryResponse, error) {
	rows, err := s.repo.ListHistory(ctx, inventoryID, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventoryHistoryResponse, 0, len(rows))
	for _, h := range rows {
		result = append(result, dto.InventoryHistoryResponse{
			ID:               h.ID,
			InventoryID:      h.InventoryID,
			PreviousQuantity: h.PreviousQuantity,
			NewQuantity:      h.NewQuantity,
			ChangeType:       h.ChangeType,
			Timestamp:        h.Timestamp,
		})
	}
	return result, nil
}

// invalidateAlerts drops the cached alert view after any stock mutation.
// Best-effort: a cache error only shortens freshness, never fails the request.
func (s *inventoryService) invalidateAlerts(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, alertsCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("alert cache invalidation failed")
	}
}
