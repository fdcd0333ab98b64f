package models

import (
	"shopapi/internal/ids"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductResponse is the JSON representation of a Product.
type ProductResponse struct {
	ID          string  `json:"_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// UserResponse is the JSON representation of a User.
type UserResponse struct {
	ID         string   `json:"_id,omitempty"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Number     string   `json:"number"`
	IDProducts []string `json:"idProducts"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FormatProduct renders p for clients. An unsaved product has no _id.
func FormatProduct(p Product) ProductResponse {
	return ProductResponse{
		ID:          externalID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// FormatProducts renders a list of products; the result is never nil.
func FormatProducts(products []Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FormatProduct(p))
	}
	return out
}

// FormatUser renders u for clients, with every product reference as a hex
// string in its stored order.
func FormatUser(u User) UserResponse {
	return UserResponse{
		ID:         externalID(u.ID),
		Name:       u.Name,
		Email:      u.Email,
		Number:     u.Number,
		IDProducts: ids.ToExternalAll(u.IDProducts),
	}
}

// FormatUsers renders a list of users; the result is never nil.
func FormatUsers(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FormatUser(u))
	}
	return out
}

func externalID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return ids.ToExternal(id)
}
