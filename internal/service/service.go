package service

import (
	"context"

	"itemdesk/internal/models"
	"itemdesk/internal/repository"
)

// Authorization covers registration and credential checks.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// Items exposes the shared item collection.
type Items interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int) (models.Item, error)
	Create(ctx context.Context, in ItemInput) (models.Item, error)
	Update(ctx context.Context, id int, in ItemInput) error
	Search(ctx context.Context, query string) (SearchResult, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Items
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth),
		Items:         NewItemService(repos.Items),
	}
}
