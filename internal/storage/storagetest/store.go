// Package storagetest provides an in-memory storage.UserStore for tests.
//
// It mirrors the Postgres store's semantics: unique emails, newest-first
// listing, deterministic store-assigned ids and timestamps, and an
// all-or-nothing batch insert.
package storagetest

import (
	"context"
	"sync"
	"time"

	"github.com/Harshit-gupta-45107/User-Management/internal/models"
	"github.com/Harshit-gupta-45107/User-Management/internal/storage"
)

var _ storage.UserStore = (*Store)(nil)

var baseTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Store is an in-memory UserStore.
type Store struct {
	mu     sync.Mutex
	nextID int64
	users  []models.User
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// ListUsers returns all users ordered by creation time descending.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for i := len(s.users) - 1; i >= 0; i-- {
		out = append(out, s.users[i])
	}
	return out, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// CreateUser inserts a user, enforcing email uniqueness.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, 0) {
		return models.User{}, storage.ErrDuplicateEmail
	}
	return s.insert(user), nil
}

// UpdateUser replaces the user-supplied fields of an existing record.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID != user.ID {
			continue
		}
		if s.emailTaken(user.Email, user.ID) {
			return models.User{}, storage.ErrDuplicateEmail
		}
		u.FirstName = user.FirstName
		u.LastName = user.LastName
		u.Email = user.Email
		u.PhoneNumber = user.PhoneNumber
		u.PANNumber = user.PANNumber
		u.UpdatedAt = u.CreatedAt.Add(time.Hour)
		s.users[i] = u
		return u, nil
	}
	return models.User{}, storage.ErrNotFound
}

// DeleteUser removes a user by id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// InsertUsersBatch inserts every user or none of them.
func (s *Store) InsertUsersBatch(ctx context.Context, users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(users))
	for _, u := range users {
		if s.emailTaken(u.Email, 0) || seen[u.Email] {
			return storage.ErrDuplicateEmail
		}
		seen[u.Email] = true
	}
	for _, u := range users {
		s.insert(u)
	}
	return nil
}

// Count returns the number of stored users.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// insert assigns store fields and appends. Caller holds the lock.
func (s *Store) insert(user models.User) models.User {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = baseTime.Add(time.Duration(s.nextID) * time.Second)
	user.UpdatedAt = user.CreatedAt
	s.users = append(s.users, user)
	return user
}

// emailTaken reports whether another record already uses the email.
// Caller holds the lock.
func (s *Store) emailTaken(email string, excludeID int64) bool {
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}
