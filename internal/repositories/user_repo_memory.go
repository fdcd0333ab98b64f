package repositories

import (
	"context"
	"fmt"
	"sync"

	"shopapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[primitive.ObjectID]models.User
	order []primitive.ObjectID
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[primitive.ObjectID]models.User),
	}
}

// GetAll returns all users in insertion order.
func (r *MemoryUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.order))
	for _, id := range r.order {
		userList = append(userList, cloneUser(r.users[id]))
	}
	return userList, nil
}

// GetByID returns a user by its ID.
func (r *MemoryUserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
	}
	user = cloneUser(user)
	return &user, nil
}

// Create adds a new user, assigning an ID if it has none.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, exists := r.users[user.ID]; exists {
		return fmt.Errorf("user with ID %s already exists", user.ID.Hex())
	}
	r.users[user.ID] = cloneUser(*user)
	r.order = append(r.order, user.ID)
	return nil
}

// Update modifies the present fields of an existing user.
func (r *MemoryUserRepository) Update(_ context.Context, id primitive.ObjectID, changes models.UserChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
	}
	changes.Apply(&user)
	r.users[id] = user
	return nil
}

// Delete removes a user by its ID.
func (r *MemoryUserRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user with ID %s: %w", id.Hex(), ErrNotFound)
	}
	delete(r.users, id)
	r.order = removeID(r.order, id)
	return nil
}

// cloneUser copies the product references so callers cannot mutate stored state.
func cloneUser(u models.User) models.User {
	u.IDProducts = append(make([]primitive.ObjectID, 0, len(u.IDProducts)), u.IDProducts...)
	return u
}
