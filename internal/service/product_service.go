package service

import (
	"context"
	"errors"

	"shopadmin/internal/dto"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"

	"gorm.io/gorm"
)

// ProductService defines business operations for catalog products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	List(ctx context.Context, skip, limit int) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categories repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categories: categories}
}

func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// categoryExists validates the FK target before insert/update.
func (s *productService) categoryExists(ctx context.Context, id uint) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if err := s.categoryExists(ctx, req.CategoryID); err != nil {
		return dto.ProductResponse{}, err
	}

	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) List(ctx context.Context, skip, limit int) ([]dto.ProductResponse, error) {
	list, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Get(ctx context.Context, id uint) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, ErrProductNotFound
		}
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

// Update overwrites every stored field (full replace, same as categories).
func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, ErrProductNotFound
		}
		return dto.ProductResponse{}, err
	}

	if err := s.categoryExists(ctx, req.CategoryID); err != nil {
		return dto.ProductResponse{}, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.CategoryID = req.CategoryID

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
