package repository

import (
	"context"
	"database/sql"
	"errors"

	"itemdesk/internal/models"
	"itemdesk/internal/repository/db"
)

// Store-level errors that callers branch on.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrItemNotFound      = errors.New("item not found")
)

// Authorization is the credential store.
type Authorization interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Items is the item store. An empty search query lists everything.
type Items interface {
	Init(ctx context.Context) error
	List(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id int) (*models.Item, error)
	Create(ctx context.Context, name, description string) (models.Item, error)
	Update(ctx context.Context, id int, name, description string) error
	SearchByName(ctx context.Context, query string) ([]models.Item, error)
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Auth  Authorization
	Items Items
}

// NewRepository builds both stores. users and items may share one handle.
func NewRepository(users, items *sql.DB, dialect db.Dialect) *Repository {
	return &Repository{
		Auth:  NewUserRepository(users, dialect),
		Items: NewItemRepository(items, dialect),
	}
}

// Init ensures both schemas exist. Safe to call on every start.
func (r *Repository) Init(ctx context.Context) error {
	if err := r.Auth.Init(ctx); err != nil {
		return err
	}
	return r.Items.Init(ctx)
}
