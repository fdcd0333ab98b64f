package repositories

import (
	"context"
	"fmt"
	"sync"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// GetAll returns products in insertion order.
type MemoryProductRepository struct {
	products map[primitive.ObjectID]models.Product
	order    []primitive.ObjectID
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[primitive.ObjectID]models.Product),
	}
}

// GetAll returns all products.
func (r *MemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		productList = append(productList, r.products[id])
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product, assigning an ID if it has none.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("product with ID %s already exists", product.ID.Hex())
	}
	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// Update modifies the present fields of an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, id primitive.ObjectID, changes models.ProductChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
	}
	changes.Apply(&product)
	r.products[id] = product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %s: %w", id.Hex(), ErrNotFound)
	}
	delete(r.products, id)
	r.order = removeID(r.order, id)
	return nil
}

func removeID(list []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for i, v := range list {
		if v == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
