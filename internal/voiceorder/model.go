package voiceorder

import "annapoorna/internal/menu"

// LineSource records how a resolved line got its catalog identity.
type LineSource string

const (
	SourceAuto      LineSource = "auto"      // cleared the match threshold
	SourceUser      LineSource = "user"      // picked from suggestions
	SourceUnmatched LineSource = "unmatched" // nothing matched, no pick
)

// ParsedPhrase is one "quantity + item name" segment of an utterance.
type ParsedPhrase struct {
	RawText  string `json:"raw_text"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// MatchCandidate scores one catalog item against a spoken name.
// Score 1.0 means exact equality after normalization.
type MatchCandidate struct {
	Item  menu.Item `json:"item"`
	Score float64   `json:"score"`
}

// ResolvedLine is the pipeline's output unit, ready to merge into a cart.
// An empty CatalogItemID means the line has no catalog identity and is
// never merged with another line.
type ResolvedLine struct {
	CatalogItemID string     `json:"menu_item_id,omitempty"`
	DisplayName   string     `json:"item_name"`
	UnitPrice     float64    `json:"unit_price"`
	Quantity      int        `json:"quantity"`
	Source        LineSource `json:"source"`
}

// CartLine mirrors one row of the dashboard's cart. The caller owns the
// cart; Merge only returns the updated slice.
type CartLine struct {
	CatalogItemID string  `json:"menu_item_id,omitempty"`
	Name          string  `json:"item_name"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
}
