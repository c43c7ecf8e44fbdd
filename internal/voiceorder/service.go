package voiceorder

import (
	"context"
	"errors"

	"annapoorna/internal/menu"
)

var ErrUnknownMenuItem = errors.New("override refers to an unknown menu item")

// CatalogReader supplies the active-menu snapshot the pipeline matches
// against. The menu service implements it.
type CatalogReader interface {
	Snapshot(ctx context.Context) ([]menu.Item, error)
}

type Service struct {
	catalog CatalogReader
}

func NewService(catalog CatalogReader) *Service {
	return &Service{catalog: catalog}
}

// PhraseMatch pairs one parsed phrase with its automatic match.
// Suggestions are filled only when nothing cleared the threshold.
type PhraseMatch struct {
	ParsedPhrase
	Matched     *menu.Item       `json:"matched,omitempty"`
	Suggestions []MatchCandidate `json:"suggestions,omitempty"`
}

// --------------------------------------------------
// Phase 1: parse a transcript for confirmation
// --------------------------------------------------
func (s *Service) Parse(ctx context.Context, transcript string) ([]PhraseMatch, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	phrases := Tokenize(transcript)
	matches := make([]PhraseMatch, 0, len(phrases))

	for _, phrase := range phrases {
		pm := PhraseMatch{ParsedPhrase: phrase}
		if item := BestMatch(phrase.Name, catalog, MatchThreshold); item != nil {
			pm.Matched = item
		} else {
			pm.Suggestions = TopMatches(phrase.Name, catalog, DefaultSuggestions)
		}
		matches = append(matches, pm)
	}

	return matches, nil
}

// --------------------------------------------------
// Phase 2: confirm and merge into the caller's cart
// --------------------------------------------------
// Confirm re-resolves the transcript with the user's picks applied and
// merges the result into the cart. overrides maps phrase index to the
// chosen menu item ID. Returns the updated cart, how many lines were
// added or merged, and how many unmatched phrases were dropped.
//
// Nothing is persisted here: the cart arrives with the request and the
// merged cart goes back to the caller, so abandoning confirmation
// leaves no partial state anywhere.
func (s *Service) Confirm(ctx context.Context, transcript string, overrides map[int]string, cart []CartLine) ([]CartLine, int, int, error) {
	catalog, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	byID := make(map[string]menu.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = item
	}

	picked := make(map[int]menu.Item, len(overrides))
	for idx, id := range overrides {
		item, ok := byID[id]
		if !ok {
			return nil, 0, 0, ErrUnknownMenuItem
		}
		picked[idx] = item
	}

	lines := Resolve(Tokenize(transcript), catalog, picked)
	kept, skipped := DropUnmatched(lines)
	return Merge(kept, cart), len(kept), skipped, nil
}
