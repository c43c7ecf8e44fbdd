package menu

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListActive returns the catalog snapshot in insertion order, which is
// the tie-break order the matcher relies on.
func (r *PostgresRepository) ListActive(ctx context.Context) ([]Item, error) {
	query := `
		SELECT id, name, price, category, is_active
		FROM menu_items
		WHERE is_active = TRUE
		ORDER BY position
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.IsActive); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	query := `
		INSERT INTO menu_items (id, name, price, category, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Price, item.Category, item.IsActive,
	)
	return err
}

func (r *PostgresRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE menu_items SET is_active=$2 WHERE id=$1`
	tag, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}
