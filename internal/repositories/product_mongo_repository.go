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

// ProductsCollection is the collection products are stored in.
const ProductsCollection = "Products"

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(coll *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		coll: coll,
	}
}

// GetAll retrieves all products in natural order.
func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id.Hex(), err)
	}
	return &product, nil
}

// Create inserts product and sets its ID to the one assigned by MongoDB.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	product.ID = id
	return nil
}

// Update sets the present fields of changes on the product with the given ID.
func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, changes models.ProductChanges) error {
	if changes.IsEmpty() {
		// MongoDB rejects an empty $set.
		_, err := r.GetByID(ctx, id)
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": changes})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID.
func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
