// Package ids converts between the identifiers clients see (24-character hex
// strings) and MongoDB ObjectIDs.
package ids

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalid is returned when a string is not a valid ObjectID.
var ErrInvalid = errors.New("invalid identifier")

// IsValid reports whether raw is a 24-character hexadecimal ObjectID.
func IsValid(raw string) bool {
	return primitive.IsValidObjectID(raw)
}

// ToInternal converts raw to an ObjectID.
func ToInternal(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return id, nil
}

// ToExternal returns the lowercase hex form of id.
func ToExternal(id primitive.ObjectID) string {
	return id.Hex()
}

// EntryError reports the first malformed entry of a list conversion.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ToInternalAll converts every entry of raw, keeping order and duplicates.
// A malformed entry yields an *EntryError naming its index.
func ToInternalAll(raw []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(raw))
	for i, r := range raw {
		id, err := ToInternal(r)
		if err != nil {
			return nil, &EntryError{Index: i, Err: err}
		}
		out = append(out, id)
	}
	return out, nil
}

// ToExternalAll is the inverse of ToInternalAll. It never returns nil.
func ToExternalAll(list []primitive.ObjectID) []string {
	out := make([]string, 0, len(list))
	for _, id := range list {
		out = append(out, ToExternal(id))
	}
	return out
}
