// Package core provides the business logic for the user directory: CRUD,
// the bulk import pipeline and the spreadsheet template generator. It has no
// HTTP dependencies and talks to persistence through storage.UserStore.
package core

import (
	"context"

	"github.com/Harshit-gupta-45107/User-Management/internal/models"
	"github.com/Harshit-gupta-45107/User-Management/internal/storage"
	"github.com/Harshit-gupta-45107/User-Management/internal/validate"
)

// Service implements the directory operations over an explicitly injected
// store handle.
type Service struct {
	store storage.UserStore
}

// NewService creates a Service backed by the given store.
func NewService(store storage.UserStore) *Service {
	return &Service{store: store}
}

// ListUsers returns all users, newest first.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// GetUser fetches a single user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.store.GetUser(ctx, id)
}

// CreateUser normalizes and validates a candidate, then inserts it.
// Returns *FieldValidationError on shape violations and
// storage.ErrDuplicateEmail on a uniqueness conflict; no write occurs in
// either case.
func (s *Service) CreateUser(ctx context.Context, c validate.Candidate) (models.User, error) {
	c = validate.Normalize(c)
	if errs := validate.Check(c); len(errs) > 0 {
		return models.User{}, &FieldValidationError{Errors: errs}
	}
	return s.store.CreateUser(ctx, candidateToUser(c))
}

// UpdateUser replaces all user-supplied fields of the record with the given
// id. Same error contract as CreateUser, plus storage.ErrNotFound.
func (s *Service) UpdateUser(ctx context.Context, id int64, c validate.Candidate) (models.User, error) {
	c = validate.Normalize(c)
	if errs := validate.Check(c); len(errs) > 0 {
		return models.User{}, &FieldValidationError{Errors: errs}
	}
	user := candidateToUser(c)
	user.ID = id
	return s.store.UpdateUser(ctx, user)
}

// DeleteUser removes a user by id, or storage.ErrNotFound.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.store.DeleteUser(ctx, id)
}

func candidateToUser(c validate.Candidate) models.User {
	return models.User{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		PANNumber:   c.PANNumber,
	}
}
