package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a user document in the "Users" collection. IDProducts
// references products by id without any existence check.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	Name       string               `bson:"name"`
	Email      string               `bson:"email"`
	Number     string               `bson:"number"`
	IDProducts []primitive.ObjectID `bson:"idProducts"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Name       string   `json:"name" validate:"required"`
	Email      string   `json:"email" validate:"required"`
	Number     string   `json:"number" validate:"required"`
	IDProducts []string `json:"idProducts"`
}

// UpdateUserRequest is the body of PUT /api/users/:id. Nil fields are left
// untouched; an explicit empty idProducts list clears the references.
type UpdateUserRequest struct {
	Name       *string   `json:"name"`
	Email      *string   `json:"email"`
	Number     *string   `json:"number"`
	IDProducts *[]string `json:"idProducts"`
}

// UserChanges is the $set document of a partial user update.
type UserChanges struct {
	Name       *string               `bson:"name,omitempty"`
	Email      *string               `bson:"email,omitempty"`
	Number     *string               `bson:"number,omitempty"`
	IDProducts *[]primitive.ObjectID `bson:"idProducts,omitempty"`
}

// IsEmpty reports whether no field would be modified.
func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.Number == nil && c.IDProducts == nil
}

// Apply copies the present fields onto u.
func (c UserChanges) Apply(u *User) {
	if c.Name != nil {
		u.Name = *c.Name
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
	if c.Number != nil {
		u.Number = *c.Number
	}
	if c.IDProducts != nil {
		u.IDProducts = append([]primitive.ObjectID{}, (*c.IDProducts)...)
	}
}
