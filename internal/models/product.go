package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a product document in the "Products" collection.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
}

// CreateProductRequest is the body of POST /api/products.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       *Price `json:"price" validate:"required,gte=0"`
}

// UpdateProductRequest is the body of PUT /api/products/:id. Nil fields are
// left untouched.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *Price  `json:"price"`
}

// ProductChanges is the $set document of a partial product update.
type ProductChanges struct {
	Name        *string  `bson:"name,omitempty"`
	Description *string  `bson:"description,omitempty"`
	Price       *float64 `bson:"price,omitempty"`
}

// IsEmpty reports whether no field would be modified.
func (c ProductChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Price == nil
}

// Apply copies the present fields onto p.
func (c ProductChanges) Apply(p *Product) {
	if c.Name != nil {
		p.Name = *c.Name
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.Price != nil {
		p.Price = *c.Price
	}
}
