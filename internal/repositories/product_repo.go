package repositories

import (
	"context"
	"errors"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("document not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, changes models.ProductChanges) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
