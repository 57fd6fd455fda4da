package service

import (
	"context"
	"errors"
	"strings"

	"itemdesk/internal/models"
	"itemdesk/internal/repository"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrItemNotFound = errors.New("item not found")
)

// ItemInput is the user-editable part of an item.
type ItemInput struct {
	Name        string
	Description string
}

// SearchResult carries matches together with the size of the whole collection.
type SearchResult struct {
	Query string
	Items []models.Item
	Total int
}

type ItemService struct {
	itemRepo repository.Items
}

func NewItemService(repo repository.Items) *ItemService {
	return &ItemService{itemRepo: repo}
}

func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *ItemService) Get(ctx context.Context, id int) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, ErrItemNotFound
	}
	it, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return models.Item{}, err
	}
	if it == nil {
		return models.Item{}, ErrItemNotFound
	}
	return *it, nil
}

func (s *ItemService) Create(ctx context.Context, in ItemInput) (models.Item, error) {
	in, err := normalizeItemInput(in)
	if err != nil {
		return models.Item{}, err
	}
	return s.itemRepo.Create(ctx, in.Name, in.Description)
}

// Update replaces name and description of an existing item. The lookup and
// the write are separate statements; concurrent edits are last-writer-wins.
func (s *ItemService) Update(ctx context.Context, id int, in ItemInput) error {
	in, err := normalizeItemInput(in)
	if err != nil {
		return err
	}
	if id <= 0 {
		return ErrItemNotFound
	}
	if err := s.itemRepo.Update(ctx, id, in.Name, in.Description); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// Search lists items whose name contains query, ignoring case. A blank query
// lists every item.
func (s *ItemService) Search(ctx context.Context, query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	res := SearchResult{Query: query}

	items, err := s.itemRepo.SearchByName(ctx, query)
	if err != nil {
		return SearchResult{}, err
	}
	res.Items = items

	if query == "" {
		res.Total = len(items)
		return res, nil
	}
	total, err := s.itemRepo.Count(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	res.Total = total
	return res, nil
}

func normalizeItemInput(in ItemInput) (ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ItemInput{}, ErrEmptyName
	}
	return in, nil
}
