package voiceorder

import (
	"context"
	"errors"
	"testing"

	"annapoorna/internal/menu"
)

// --------------------------------------------------
// Mock catalog
// --------------------------------------------------

type mockCatalog struct {
	items []menu.Item
	err   error
}

func (m *mockCatalog) Snapshot(ctx context.Context) ([]menu.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestParse_AllMatched(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	items, err := service.Parse(context.Background(), "idli two, masala idli four, vada one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []struct {
		id  string
		qty int
	}{{"m1", 2}, {"m2", 4}, {"m3", 1}} {
		if items[i].Matched == nil {
			t.Fatalf("item %d: expected a match", i)
		}
		if items[i].Matched.ID != want.id || items[i].Quantity != want.qty {
			t.Errorf("item %d: expected %dx %s, got %dx %s",
				i, want.qty, want.id, items[i].Quantity, items[i].Matched.ID)
		}
		if len(items[i].Suggestions) != 0 {
			t.Errorf("item %d: matched items carry no suggestions", i)
		}
	}
}

func TestParse_UnmatchedGetsSuggestions(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	items, err := service.Parse(context.Background(), "gibberish xyz one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Matched != nil {
		t.Fatalf("expected no match, got %q", items[0].Matched.Name)
	}
	if len(items[0].Suggestions) == 0 {
		t.Fatal("expected fuzzy suggestions for the unmatched phrase")
	}
	if len(items[0].Suggestions) > DefaultSuggestions {
		t.Errorf("expected at most %d suggestions, got %d", DefaultSuggestions, len(items[0].Suggestions))
	}
	for i := 1; i < len(items[0].Suggestions); i++ {
		if items[0].Suggestions[i].Score > items[0].Suggestions[i-1].Score {
			t.Errorf("suggestions not sorted by score: %+v", items[0].Suggestions)
		}
	}
}

func TestParse_EmptyTranscript(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	items, err := service.Parse(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestParse_CatalogError(t *testing.T) {
	wantErr := errors.New("db down")
	service := NewService(&mockCatalog{err: wantErr})

	_, err := service.Parse(context.Background(), "idli two")
	if !errors.Is(err, wantErr) {
		t.Errorf("expected catalog error to propagate, got %v", err)
	}
}

func TestConfirm_MergesIntoExistingCart(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	cart := []CartLine{
		{CatalogItemID: "m1", Name: "Idli", UnitPrice: 40, Quantity: 1},
	}

	cart, added, skipped, err := service.Confirm(
		context.Background(),
		"idli two and gibberish xyz one",
		nil,
		cart,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if added != 1 || skipped != 1 {
		t.Errorf("expected 1 added / 1 skipped, got %d / %d", added, skipped)
	}
	if len(cart) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Errorf("expected Idli quantity 3, got %d", cart[0].Quantity)
	}
}

func TestConfirm_OverrideResolvesUnmatchedPhrase(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	// phrase 1 won't match; the user picks Vada for it
	cart, added, skipped, err := service.Confirm(
		context.Background(),
		"idli two, gibberish xyz one",
		map[int]string{1: "m3"},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if added != 2 || skipped != 0 {
		t.Errorf("expected 2 added / 0 skipped, got %d / %d", added, skipped)
	}
	if len(cart) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(cart))
	}
	if cart[1].CatalogItemID != "m3" || cart[1].Name != "Vada" || cart[1].UnitPrice != 30 {
		t.Errorf("expected Vada from override, got %+v", cart[1])
	}
}

func TestConfirm_UnknownOverrideID(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	_, _, _, err := service.Confirm(
		context.Background(),
		"idli two",
		map[int]string{0: "no-such-item"},
		nil,
	)
	if !errors.Is(err, ErrUnknownMenuItem) {
		t.Errorf("expected ErrUnknownMenuItem, got %v", err)
	}
}

func TestConfirm_AbandonedPhrasesNeverTouchCart(t *testing.T) {
	service := NewService(&mockCatalog{items: testCatalog()})

	cart, added, skipped, err := service.Confirm(
		context.Background(),
		"gibberish xyz one, more nonsense two",
		nil,
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if added != 0 || skipped != 2 {
		t.Errorf("expected 0 added / 2 skipped, got %d / %d", added, skipped)
	}
	if len(cart) != 0 {
		t.Errorf("expected untouched cart, got %d lines", len(cart))
	}
}
