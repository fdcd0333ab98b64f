package repositories

import (
	"context"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, changes models.UserChanges) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
