package repository

import (
	"context"
	"testing"

	"stockpile/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository_CRUD(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Product{Name: "Widget", Price: 5, InStock: true})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	second, err := repo.Create(ctx, model.Product{Name: "Gadget", Price: 10, InStock: false})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	inStock, err := repo.ListInStock(ctx)
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, "Widget", inStock[0].Name)

	updated, err := repo.Update(ctx, 2, model.ProductPatch{InStock: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.InStock)
	assert.Equal(t, 10.0, updated.Price)

	require.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), model.ErrProductNotFound)

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].ID)
}

func TestMemoryProductRepository_GetByID(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Product{Name: "Widget", Price: 5, InStock: true})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Widget", found.Name)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryProductRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Product{Name: "Widget", Price: 5, InStock: true})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	products[0].Name = "Mutated"

	reread, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Widget", reread[0].Name)
}

func TestMemoryProductRepository_UpdateUnknownID(t *testing.T) {
	repo := NewMemoryProductRepository()

	_, err := repo.Update(context.Background(), 7, model.ProductPatch{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}
