package repositories_test

import (
	"context"
	"testing"

	"shopapi/internal/models"
	"shopapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// testProductRepository exercises behavior every ProductRepository must share.
// repo must start empty.
func testProductRepository(t *testing.T, repo repositories.ProductRepository) {
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	pen := &models.Product{Name: "Pen", Description: "Blue pen", Price: 1.5}
	require.NoError(t, repo.Create(ctx, pen))
	require.False(t, pen.ID.IsZero())

	book := &models.Product{Name: "Book", Description: "Paperback", Price: 0}
	require.NoError(t, repo.Create(ctx, book))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := repo.GetByID(ctx, pen.ID)
	require.NoError(t, err)
	assert.Equal(t, *pen, *got)

	require.NoError(t, repo.Update(ctx, pen.ID, models.ProductChanges{Description: strPtr("Red pen")}))
	got, err = repo.GetByID(ctx, pen.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Name)
	assert.Equal(t, "Red pen", got.Description)
	assert.Equal(t, 1.5, got.Price)

	require.NoError(t, repo.Update(ctx, book.ID, models.ProductChanges{Price: floatPtr(0)}))
	require.NoError(t, repo.Update(ctx, book.ID, models.ProductChanges{}))

	missing := primitive.NewObjectID()
	_, err = repo.GetByID(ctx, missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, missing, models.ProductChanges{Name: strPtr("x")}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, missing, models.ProductChanges{}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing), repositories.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, pen.ID))
	_, err = repo.GetByID(ctx, pen.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, pen.ID), repositories.ErrNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, book.ID, all[0].ID)
}

// testUserRepository exercises behavior every UserRepository must share.
// repo must start empty.
func testUserRepository(t *testing.T, repo repositories.UserRepository) {
	ctx := context.Background()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	ana := &models.User{Name: "Ana", Email: "ana@example.com", Number: "555-0100", IDProducts: []primitive.ObjectID{a, b, a}}
	require.NoError(t, repo.Create(ctx, ana))
	require.False(t, ana.ID.IsZero())

	bob := &models.User{Name: "Bob", Email: "ana@example.com", Number: "555-0101"}
	require.NoError(t, repo.Create(ctx, bob), "emails are not unique")

	got, err := repo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a, b, a}, got.IDProducts)

	got, err = repo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.IDProducts)
	assert.Empty(t, got.IDProducts)

	replaced := []primitive.ObjectID{b}
	require.NoError(t, repo.Update(ctx, ana.ID, models.UserChanges{Number: strPtr("555-0199"), IDProducts: &replaced}))
	got, err = repo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "555-0199", got.Number)
	assert.Equal(t, []primitive.ObjectID{b}, got.IDProducts)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	missing := primitive.NewObjectID()
	assert.ErrorIs(t, repo.Update(ctx, missing, models.UserChanges{Name: strPtr("x")}), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing), repositories.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, ana.ID))
	_, err = repo.GetByID(ctx, ana.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
