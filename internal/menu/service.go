package menu

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Catalog snapshot (read path for the voice pipeline)
// --------------------------------------------------
// Snapshot returns the currently active items. Deactivated items never
// reach the matcher.
func (s *Service) Snapshot(ctx context.Context) ([]Item, error) {
	return s.repo.ListActive(ctx)
}

// --------------------------------------------------
// Thin item admin (keeps the catalog operable)
// --------------------------------------------------
func (s *Service) AddItem(ctx context.Context, name, category string, price float64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("item name is required")
	}
	if price < 0 {
		return nil, errors.New("price must be non-negative")
	}

	item := &Item{
		Name:     name,
		Price:    price,
		Category: strings.TrimSpace(category),
		IsActive: true,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) SetItemActive(ctx context.Context, id string, active bool) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("item id is required")
	}
	return s.repo.SetActive(ctx, id, active)
}
