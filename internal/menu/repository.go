package menu

import "context"

// Repository defines the data-access contract.
// ListActive must keep a stable item order between calls: the voice
// matcher breaks score ties by catalog order.
type Repository interface {
	ListActive(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, item *Item) error
	SetActive(ctx context.Context, id string, active bool) error
}
