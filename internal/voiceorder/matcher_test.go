package voiceorder

import (
	"testing"

	"annapoorna/internal/menu"
)

func testCatalog() []menu.Item {
	return []menu.Item{
		{ID: "m1", Name: "Idli", Price: 40, IsActive: true},
		{ID: "m2", Name: "Masala Idli", Price: 60, IsActive: true},
		{ID: "m3", Name: "Vada", Price: 30, IsActive: true},
		{ID: "m4", Name: "Filter Coffee", Price: 25, IsActive: true},
	}
}

func TestBestMatch_ExactIgnoresCaseAndPunctuation(t *testing.T) {
	catalog := testCatalog()

	for _, spoken := range []string{"idli", "IDLI", "  Idli. ", "idli!!"} {
		item := BestMatch(spoken, catalog, MatchThreshold)
		if item == nil {
			t.Fatalf("BestMatch(%q): expected a match", spoken)
		}
		if item.ID != "m1" {
			t.Errorf("BestMatch(%q): expected Idli, got %q", spoken, item.Name)
		}
	}
}

func TestBestMatch_ExactBeatsSubstring(t *testing.T) {
	// "masala idli" is a substring hit on "Idli" but an exact hit on
	// "Masala Idli"; exact must win.
	item := BestMatch("masala idli", testCatalog(), MatchThreshold)
	if item == nil {
		t.Fatal("expected a match")
	}
	if item.ID != "m2" {
		t.Errorf("expected Masala Idli, got %q", item.Name)
	}
}

func TestBestMatch_SubstringScoresPointNine(t *testing.T) {
	matches := TopMatches("idl", testCatalog(), 1)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Score != 0.9 {
		t.Errorf("expected substring score 0.9, got %v", matches[0].Score)
	}
}

func TestBestMatch_BelowThreshold(t *testing.T) {
	// "idly" is not a substring of "Idli"; edit distance gives 0.75
	if item := BestMatch("idly", testCatalog(), 0.9); item != nil {
		t.Errorf("expected no match below threshold, got %q", item.Name)
	}

	matches := TopMatches("idly", testCatalog(), 3)
	if len(matches) == 0 {
		t.Fatal("expected fuzzy candidates")
	}
	if matches[0].Item.ID != "m1" {
		t.Errorf("expected Idli ranked first, got %q", matches[0].Item.Name)
	}
	if matches[0].Score <= 0 || matches[0].Score >= 0.9 {
		t.Errorf("expected fuzzy score in (0, 0.9), got %v", matches[0].Score)
	}
}

func TestBestMatch_TieKeepsCatalogOrder(t *testing.T) {
	catalog := []menu.Item{
		{ID: "a", Name: "Rava Dosa", Price: 50},
		{ID: "b", Name: "Rava  Dosa", Price: 55}, // same name after normalization
	}

	item := BestMatch("rava dosa", catalog, MatchThreshold)
	if item == nil {
		t.Fatal("expected a match")
	}
	if item.ID != "a" {
		t.Errorf("expected first catalog item to win the tie, got %q", item.ID)
	}

	matches := TopMatches("rava dosa", catalog, 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(matches))
	}
	if matches[0].Item.ID != "a" {
		t.Errorf("expected stable tie order, got %q first", matches[0].Item.ID)
	}
}

func TestBestMatch_EmptyInputs(t *testing.T) {
	if item := BestMatch("", testCatalog(), MatchThreshold); item != nil {
		t.Error("expected no match for empty name")
	}
	if item := BestMatch("...", testCatalog(), MatchThreshold); item != nil {
		t.Error("expected no match for name that normalizes to empty")
	}
	if item := BestMatch("idli", nil, MatchThreshold); item != nil {
		t.Error("expected no match against empty catalog")
	}
	if matches := TopMatches("", testCatalog(), 3); len(matches) != 0 {
		t.Error("expected no candidates for empty name")
	}
	if matches := TopMatches("idli", nil, 3); len(matches) != 0 {
		t.Error("expected no candidates against empty catalog")
	}
}

func TestTopMatches_SortedAndBounded(t *testing.T) {
	catalog := testCatalog()

	for _, n := range []int{1, 2, 3, 10} {
		matches := TopMatches("masala idli", catalog, n)

		if len(matches) > n {
			t.Fatalf("n=%d: got %d candidates", n, len(matches))
		}
		for i := 1; i < len(matches); i++ {
			if matches[i].Score > matches[i-1].Score {
				t.Errorf("n=%d: candidates not sorted at %d: %v > %v",
					n, i, matches[i].Score, matches[i-1].Score)
			}
		}
		for _, m := range matches {
			if m.Score <= 0 {
				t.Errorf("n=%d: zero-score candidate %q returned", n, m.Item.Name)
			}
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"idli", "", 4},
		{"idli", "idli", 0},
		{"idli", "idly", 1},
		{"vada", "dosa", 3},
		{"दोसा", "दोसा", 0}, // rune-wise, not byte-wise
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Masala   Idli ", "masala idli"},
		{"Idli (2 pcs)", "idli 2 pcs"},
		{"dosa!!", "dosa"},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
