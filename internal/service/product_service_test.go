package service

import (
	"context"
	"testing"

	"shopadmin/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (ProductService, uint) {
	t.Helper()
	categories := newStubCategoryRepo()
	products := newStubProductRepo()
	categorySvc := NewCategoryService(categories, products)

	category, err := categorySvc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	return NewProductService(products, categories), category.ID
}

func TestProductCreate(t *testing.T) {
	svc, categoryID := newProductFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("999.99"),
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, categoryID, created.CategoryID)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("999.99")))
}

func TestProductCreateUnknownCategory(t *testing.T) {
	svc, _ := newProductFixture(t)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Orphan",
		Price:      decimal.NewFromInt(5),
		CategoryID: 999,
	})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductGetNotFound(t *testing.T) {
	svc, _ := newProductFixture(t)

	_, err := svc.Get(context.Background(), 123)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdateReplacesAllFields(t *testing.T) {
	svc, categoryID := newProductFixture(t)
	ctx := context.Background()

	desc := "gaming laptop"
	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:        "Laptop",
		Description: &desc,
		Price:       decimal.NewFromInt(1000),
		CategoryID:  categoryID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:       "Laptop Pro",
		Price:      decimal.RequireFromString("1299.50"),
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro", updated.Name)
	assert.Nil(t, updated.Description) // replace semantics clear the omitted field
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1299.50")))
}

func TestProductUpdateUnknownCategory(t *testing.T) {
	svc, categoryID := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.NewFromInt(1000),
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:       "Laptop",
		Price:      decimal.NewFromInt(1000),
		CategoryID: 999,
	})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestProductDelete(t *testing.T) {
	svc, categoryID := newProductFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.NewFromInt(1000),
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrProductNotFound)
}
