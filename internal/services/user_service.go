package services

import (
	"context"
	"errors"
	"fmt"

	"shopapi/internal/ids"
	"shopapi/internal/models"
	"shopapi/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const resourceUser = "user"

// UserService handles business logic related to users.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return models.FormatUsers(users), nil
}

// Get retrieves a single user by its ID.
func (s *UserService) Get(ctx context.Context, id string) (*models.UserResponse, error) {
	oid, err := parseID(resourceUser, id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, storageError(resourceUser, err)
	}
	resp := models.FormatUser(*user)
	return &resp, nil
}

// Create validates req and stores a new user. A missing idProducts list is
// stored as an empty one.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.UserResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	productIDs, err := parseProductIDs(req.IDProducts)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Number:     req.Number,
		IDProducts: productIDs,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, internal(err)
	}
	resp := models.FormatUser(*user)
	publish(s.publisher, resourceUser, eventCreated, resp.ID, resp)
	return &resp, nil
}

// Update applies the fields present in req to an existing user and returns
// the stored result.
func (s *UserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserResponse, error) {
	oid, err := parseID(resourceUser, id)
	if err != nil {
		return nil, err
	}

	changes := models.UserChanges{
		Name:   req.Name,
		Email:  req.Email,
		Number: req.Number,
	}
	if req.IDProducts != nil {
		productIDs, err := parseProductIDs(*req.IDProducts)
		if err != nil {
			return nil, err
		}
		changes.IDProducts = &productIDs
	}

	if err := s.repo.Update(ctx, oid, changes); err != nil {
		return nil, storageError(resourceUser, err)
	}
	user, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, storageError(resourceUser, err)
	}
	resp := models.FormatUser(*user)
	if !changes.IsEmpty() {
		publish(s.publisher, resourceUser, eventUpdated, resp.ID, resp)
	}
	return &resp, nil
}

// Delete deletes a user by its ID.
func (s *UserService) Delete(ctx context.Context, id string) (*models.DeleteResponse, error) {
	oid, err := parseID(resourceUser, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return nil, storageError(resourceUser, err)
	}
	publish(s.publisher, resourceUser, eventDeleted, ids.ToExternal(oid), nil)
	return &models.DeleteResponse{Success: true, Message: "User deleted successfully"}, nil
}

// parseProductIDs validates every product reference; the result is never nil.
func parseProductIDs(raw []string) ([]primitive.ObjectID, error) {
	productIDs, err := ids.ToInternalAll(raw)
	var entryErr *ids.EntryError
	if errors.As(err, &entryErr) {
		return nil, invalidField(fmt.Sprintf("Invalid product ID at idProducts[%d]", entryErr.Index), err)
	}
	return productIDs, err
}
