package kernel

import (
	"fmt"

	"fastbite/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not built through one of the constructor functions.
// Validate returns it for the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the value object that identifies orders, users, products and
// comments. It wraps github.com/google/uuid so the domain never handles the
// raw library type directly.
//
// The zero value of UUID is invalid. Build one with NewUUID, UUIDFromString
// or UUIDFromBytes.
//
// UUID is immutable and comparable, so it can be copied freely, used as a
// map key and shared between goroutines.
//
// Example usage:
//
//	// Identity for a freshly placed order
//	orderID := kernel.NewUUID()
//
//	// Identity taken from a request path
//	orderID, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return err
//	}
//
//	// Index orders by identity
//	byID := map[kernel.UUID]*order.Order{orderID: o}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// Aggregates call it when they are created: orders on checkout, comments
// when they are posted, users on registration.
//
// Example:
//
//	commentID := kernel.NewUUID()
//	logger.Info("Comment added", "comment_id", commentID.String())
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the forms google/uuid understands, including:
//   - "3f2b8a4e-6d1c-4e0a-9b7f-2c5d8e1a4b60"
//   - "{3f2b8a4e-6d1c-4e0a-9b7f-2c5d8e1a4b60}"
//   - "urn:uuid:3f2b8a4e-6d1c-4e0a-9b7f-2c5d8e1a4b60"
//   - "3f2b8a4e6d1c4e0a9b7f2c5d8e1a4b60"
//
// Malformed input yields a ValueIsInvalidError. The nil UUID parses but is
// rejected with ErrUUIDIsNotConstructed.
//
// Example:
//
//	productID, err := kernel.UUIDFromString(item.ProductID)
//	if err != nil {
//	    return fmt.Errorf("cart item: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form.
// Any other length is a ValueIsInvalidError, and sixteen zero bytes are
// rejected with ErrUUIDIsNotConstructed.
//
// Example:
//
//	raw := row.ID[:] // uuid.UUID column loaded by gorm
//	id, err := kernel.UUIDFromBytes(raw)
//	if err != nil {
//	    return fmt.Errorf("order row: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form
// in lower case. It is what HTTP responses, Kafka keys and log attributes
// carry.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google/uuid value.
// Note: the result is a uuid.UUID array, not a byte slice; slice it with
// id.Bytes()[:] when raw bytes are needed.
//
// Only persistence adapters should reach for it, to fill uuid columns.
//
// Example:
//
//	row := OrderDTO{ID: o.ID().Bytes()}
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
//
// Example:
//
//	if !o.CustomerID().IsEqual(caller.ID) {
//	    return errs.NewForbiddenError("order is not yours")
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether u is the nil UUID, which is also the zero value.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate checks that the UUID was properly constructed.
// It returns ErrUUIDIsNotConstructed for the nil UUID.
//
// Domain constructors use it to reject identities that were never set.
//
// Example:
//
//	func NewComment(id, orderID kernel.UUID, ...) (Comment, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return Comment{}, fmt.Errorf("comment order: %w", err)
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
