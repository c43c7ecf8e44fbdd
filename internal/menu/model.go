package menu

// Item is one orderable menu entry. The voice pipeline matches spoken
// names against snapshots of these and never mutates them.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
	IsActive bool    `json:"is_active"`
}
