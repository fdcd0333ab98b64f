package services

import (
	"context"

	"shopapi/internal/ids"
	"shopapi/internal/models"
	"shopapi/internal/repositories"

	"github.com/go-playground/validator/v10"
)

const resourceProduct = "product"

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// List retrieves all products.
func (s *ProductService) List(ctx context.Context) ([]models.ProductResponse, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return models.FormatProducts(products), nil
}

// Get retrieves a single product by its ID.
func (s *ProductService) Get(ctx context.Context, id string) (*models.ProductResponse, error) {
	oid, err := parseID(resourceProduct, id)
	if err != nil {
		return nil, err
	}
	product, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, storageError(resourceProduct, err)
	}
	resp := models.FormatProduct(*product)
	return &resp, nil
}

// Create validates req and stores a new product.
func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return nil, err
	}
	if err := checkPrice(*req.Price); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Float64(),
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, internal(err)
	}
	resp := models.FormatProduct(*product)
	publish(s.publisher, resourceProduct, eventCreated, resp.ID, resp)
	return &resp, nil
}

// Update applies the fields present in req to an existing product and returns
// the stored result.
func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	oid, err := parseID(resourceProduct, id)
	if err != nil {
		return nil, err
	}
	if req.Price != nil {
		if err := checkPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	changes := models.ProductChanges{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Price != nil {
		price := req.Price.Float64()
		changes.Price = &price
	}

	if err := s.repo.Update(ctx, oid, changes); err != nil {
		return nil, storageError(resourceProduct, err)
	}
	product, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, storageError(resourceProduct, err)
	}
	resp := models.FormatProduct(*product)
	if !changes.IsEmpty() {
		publish(s.publisher, resourceProduct, eventUpdated, resp.ID, resp)
	}
	return &resp, nil
}

// Delete deletes a product by its ID.
func (s *ProductService) Delete(ctx context.Context, id string) (*models.DeleteResponse, error) {
	oid, err := parseID(resourceProduct, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return nil, storageError(resourceProduct, err)
	}
	publish(s.publisher, resourceProduct, eventDeleted, ids.ToExternal(oid), nil)
	return &models.DeleteResponse{Success: true, Message: "Product deleted successfully"}, nil
}

// checkPrice rejects prices the store must never hold. NaN fails every
// comparison, so finiteness is checked first.
func checkPrice(p models.Price) error {
	if !p.IsFinite() {
		return invalidField("Price must be a finite number", models.ErrNonFinitePrice)
	}
	if p.Float64() < 0 {
		return invalidField("Price must be greater than or equal to 0", nil)
	}
	return nil
}
