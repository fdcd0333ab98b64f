package services_test

import (
	"context"
	"fmt"
	"testing"

	"shopapi/internal/ids"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserService_List(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	ref := primitive.NewObjectID()
	u := models.User{ID: primitive.NewObjectID(), Name: "Ana", Email: "ana@example.com", Number: "555", IDProducts: []primitive.ObjectID{ref}}
	mockRepo.On("GetAll", mock.Anything).Return([]models.User{u}, nil).Once()

	users, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, []string{ref.Hex()}, users[0].IDProducts)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_DefaultsProductsToEmpty(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.IDProducts != nil && len(u.IDProducts) == 0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.User).ID = primitive.NewObjectID()
	}).Return(nil).Once()

	user, err := service.Create(context.Background(), models.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Number: "555-0100"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, []string{}, user.IDProducts)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_ConvertsProductIDs(t *testing.T) {
	mockRepo := new(MockUserRepository)
	publisher := new(MockPublisher)
	service := services.NewUserService(mockRepo, publisher)

	ref := primitive.NewObjectID()
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return len(u.IDProducts) == 2 && u.IDProducts[0] == ref && u.IDProducts[1] == ref
	})).Return(nil).Once()
	publisher.On("Publish", "user.created", mock.Anything).Return(nil).Once()

	user, err := service.Create(context.Background(), models.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Number: "555-0100",
		IDProducts: []string{ref.Hex(), ref.Hex()},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{ref.Hex(), ref.Hex()}, user.IDProducts)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUserService_Create_Validation(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, models.CreateUserRequest{Name: "Ana", Number: "555"})
	assert.Equal(t, services.KindInvalidField, services.KindOf(err))
	assert.Equal(t, "Field 'email' is required", services.MessageOf(err))

	_, err = service.Create(ctx, models.CreateUserRequest{Name: "Ana", Email: "a@b.c", Number: "555", IDProducts: []string{primitive.NewObjectID().Hex(), "bogus"}})
	assert.Equal(t, services.KindInvalidField, services.KindOf(err))
	assert.Equal(t, "Invalid product ID at idProducts[1]", services.MessageOf(err))

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Update(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	id := primitive.NewObjectID()
	ref := primitive.NewObjectID()
	refs := []primitive.ObjectID{ref}
	mockRepo.On("Update", mock.Anything, id, models.UserChanges{Email: strPtr("new@example.com"), IDProducts: &refs}).Return(nil).Once()
	mockRepo.On("GetByID", mock.Anything, id).Return(&models.User{ID: id, Name: "Ana", Email: "new@example.com", Number: "555", IDProducts: refs}, nil).Once()

	productIDs := []string{ref.Hex()}
	user, err := service.Update(context.Background(), id.Hex(), models.UpdateUserRequest{Email: strPtr("new@example.com"), IDProducts: &productIDs})

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, []string{ref.Hex()}, user.IDProducts)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_InvalidProductID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	bad := []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "nope"}
	_, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), models.UpdateUserRequest{IDProducts: &bad})

	assert.Equal(t, services.KindInvalidField, services.KindOf(err))
	assert.Equal(t, "Invalid product ID at idProducts[2]", services.MessageOf(err))
	assert.ErrorIs(t, err, ids.ErrInvalid)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Update_NoFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	publisher := new(MockPublisher)
	service := services.NewUserService(mockRepo, publisher)

	id := primitive.NewObjectID()
	mockRepo.On("Update", mock.Anything, id, models.UserChanges{}).Return(nil).Once()
	mockRepo.On("GetByID", mock.Anything, id).Return(&models.User{ID: id, Name: "Ana"}, nil).Once()

	user, err := service.Update(context.Background(), id.Hex(), models.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUserService_GetAndDelete(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)
	ctx := context.Background()

	_, err := service.Get(ctx, "xyz")
	assert.Equal(t, services.KindInvalidIdentifier, services.KindOf(err))
	assert.Equal(t, "Invalid user ID", services.MessageOf(err))

	missing := primitive.NewObjectID()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repositories.ErrNotFound).Once()
	_, err = service.Get(ctx, missing.Hex())
	assert.Equal(t, services.KindNotFound, services.KindOf(err))
	assert.Equal(t, "User not found", services.MessageOf(err))

	mockRepo.On("Delete", mock.Anything, missing).Return(fmt.Errorf("user with ID %s: %w", missing.Hex(), repositories.ErrNotFound)).Once()
	_, err = service.Delete(ctx, missing.Hex())
	assert.Equal(t, services.KindNotFound, services.KindOf(err))

	id := primitive.NewObjectID()
	mockRepo.On("Delete", mock.Anything, id).Return(nil).Once()
	resp, err := service.Delete(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.DeleteResponse{Success: true, Message: "User deleted successfully"}, *resp)

	mockRepo.AssertExpectations(t)
}
