package repositories

import (
	"context"
	"errors"
	"fmt"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UsersCollection is the collection users are stored in.
const UsersCollection = "Users"

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(coll *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{
		coll: coll,
	}
}

// GetAll retrieves all users in natural order.
func (r *MongoUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a single user by its ID.
func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id.Hex(), err)
	}
	return &user, nil
}

// Create inserts user and sets its ID to the one assigned by MongoDB.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.IDProducts == nil {
		user.IDProducts = []primitive.ObjectID{}
	}
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = id
	return nil
}

// Update sets the present fields of changes on the user with the given ID.
func (r *MongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, changes models.UserChanges) error {
	if changes.IsEmpty() {
		// MongoDB rejects an empty $set.
		_, err := r.GetByID(ctx, id)
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": changes})
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}

// Delete deletes a user by its ID.
func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
