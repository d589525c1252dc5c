// Package postgres provides the pgx-backed implementation of storage.UserStore.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshit-gupta-45107/User-Management/internal/models"
	"github.com/Harshit-gupta-45107/User-Management/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// uniqueViolation is the Postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore wraps an existing connection pool and ensures the schema
// exists. The pool's lifetime is owned by the caller.
func NewUserStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone_number VARCHAR(10) NOT NULL,
			pan_number VARCHAR(10) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

const userColumns = "id, first_name, last_name, email, phone_number, pan_number, created_at, updated_at"

// ListUsers returns all users, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC, id DESC", userColumns)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (first_name, last_name, email, phone_number, pan_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, userColumns)
	row := s.pool.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.PANNumber)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, mapPgError(err)
	}
	return created, nil
}

// UpdateUser replaces all user-supplied fields of an existing row.
func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, pan_number = $5, updated_at = now()
		WHERE id = $6
		RETURNING %s`, userColumns)
	row := s.pool.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PhoneNumber, user.PANNumber, user.ID)
	updated, err := scanUser(row)
	if err != nil {
		return models.User{}, mapPgError(err)
	}
	return updated, nil
}

// DeleteUser removes a user by id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// InsertUsersBatch inserts every user in one transaction so a failure on any
// row leaves nothing behind.
func (s *Store) InsertUsersBatch(ctx context.Context, users []models.User) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO users (first_name, last_name, email, phone_number, pan_number)
		VALUES ($1, $2, $3, $4, $5)`
	for _, u := range users {
		if _, err := tx.Exec(ctx, query,
			u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.PANNumber); err != nil {
			return mapPgError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email,
		&u.PhoneNumber, &u.PANNumber, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return storage.ErrDuplicateEmail
	}
	return err
}
