package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// InMemoryRepository keeps items in insertion order.
type InMemoryRepository struct {
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) ListActive(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		if item.IsActive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items = append(r.items, *item)
	return nil
}

func (r *InMemoryRepository) SetActive(ctx context.Context, id string, active bool) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsActive = active
			return nil
		}
	}
	return errors.New("menu item not found")
}
