package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"itemdesk/internal/models"
	"itemdesk/internal/repository/db"
)

type UserRepository struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewUserRepository(conn *sql.DB, dialect db.Dialect) *UserRepository {
	return &UserRepository{db: conn, dialect: dialect}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	schemaUsersSQLite = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`
	schemaUsersPostgres = `
CREATE TABLE IF NOT EXISTS users (
    id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// Init creates the users table when it does not exist yet.
func (r *UserRepository) Init(ctx context.Context) error {
	schema := schemaUsersSQLite
	if r.dialect == db.Postgres {
		schema = schemaUsersPostgres
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply users schema: %w", err)
	}
	return nil
}

// Create inserts a new user and returns its ID. A taken username yields
// ErrDuplicateUsername and leaves the table untouched.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(insertUserSQL), username, passwordHash).Scan(&id)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// GetByUsername fetches a user by exact username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, r.dialect.Rebind(selectUserByUsernameSQL), username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}
