// Package storage defines the persistence contract for user records.
//
// The store handle is passed explicitly to everything that needs it; there is
// no package-level connection state.
package storage

import (
	"context"
	"errors"

	"github.com/Harshit-gupta-45107/User-Management/internal/models"
)

// ErrNotFound indicates the referenced user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrDuplicateEmail indicates a write collided with the unique email constraint.
var ErrDuplicateEmail = errors.New("email already exists")

// UserStore captures the persistence operations the service layer needs.
type UserStore interface {
	// ListUsers returns all users ordered by creation time descending.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches a user by id, or ErrNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser inserts a user and returns it with store-assigned fields.
	// Returns ErrDuplicateEmail on a unique-constraint collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces all user-supplied fields of the record with the
	// given id. Returns ErrNotFound or ErrDuplicateEmail.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes a user by id, or ErrNotFound.
	DeleteUser(ctx context.Context, id int64) error

	// InsertUsersBatch inserts every user inside a single transaction.
	// Either all rows become visible or none do; a unique-constraint
	// collision on any row aborts the whole batch with ErrDuplicateEmail.
	InsertUsersBatch(ctx context.Context, users []models.User) error
}
