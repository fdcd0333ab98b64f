package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"shopapi/internal/ids"
	"shopapi/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest validates req and turns the first failure into a
// KindInvalidField error.
func validateRequest(v *validator.Validate, req any) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return invalidField("Invalid request body", err)
	}
	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return invalidField(fmt.Sprintf("Field '%s' is required", e.Field()), err)
	case "gte":
		return invalidField(fmt.Sprintf("Field '%s' must be greater than or equal to %s", e.Field(), e.Param()), err)
	default:
		return invalidField(fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()), err)
	}
}

// parseID checks id before any storage access.
func parseID(resource, id string) (primitive.ObjectID, error) {
	if !ids.IsValid(id) {
		return primitive.NilObjectID, invalidIdentifier(resource)
	}
	oid, err := ids.ToInternal(id)
	if err != nil {
		return primitive.NilObjectID, invalidIdentifier(resource)
	}
	return oid, nil
}

// storageError classifies a repository error.
func storageError(resource string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(resource, err)
	}
	return internal(err)
}
