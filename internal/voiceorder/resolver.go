package voiceorder

import "annapoorna/internal/menu"

// Resolve turns parsed phrases into cart-ready lines against a catalog
// snapshot. overrides maps a phrase index to the item the user picked
// for it; a pick always wins over the automatic match. Every phrase
// yields exactly one line — unresolved phrases come back with source
// "unmatched" so the caller can show them before they are dropped.
func Resolve(phrases []ParsedPhrase, catalog []menu.Item, overrides map[int]menu.Item) []ResolvedLine {
	lines := make([]ResolvedLine, 0, len(phrases))

	for i, phrase := range phrases {
		if item, ok := overrides[i]; ok {
			lines = append(lines, ResolvedLine{
				CatalogItemID: item.ID,
				DisplayName:   item.Name,
				UnitPrice:     item.Price,
				Quantity:      phrase.Quantity,
				Source:        SourceUser,
			})
			continue
		}

		if item := BestMatch(phrase.Name, catalog, MatchThreshold); item != nil {
			lines = append(lines, ResolvedLine{
				CatalogItemID: item.ID,
				DisplayName:   item.Name,
				UnitPrice:     item.Price,
				Quantity:      phrase.Quantity,
				Source:        SourceAuto,
			})
			continue
		}

		lines = append(lines, ResolvedLine{
			DisplayName: phrase.Name,
			Quantity:    phrase.Quantity,
			Source:      SourceUnmatched,
		})
	}

	return lines
}

// DropUnmatched filters out lines that never got a catalog identity and
// reports how many were dropped, so the caller can tell the user.
func DropUnmatched(lines []ResolvedLine) ([]ResolvedLine, int) {
	kept := make([]ResolvedLine, 0, len(lines))
	for _, line := range lines {
		if line.Source == SourceUnmatched {
			continue
		}
		kept = append(kept, line)
	}
	return kept, len(lines) - len(kept)
}

// Merge applies resolved lines to a cart. Lines sharing a catalog item
// ID with an existing cart line add their quantity to it (the unit
// price stays as it was set at cart-line creation). Everything else —
// new catalog items and lines without a catalog identity — is appended
// as a fresh cart line. Lines with no identity are never merged by
// name: two "extra sauce" lines stay two cart lines.
func Merge(lines []ResolvedLine, cart []CartLine) []CartLine {
	for _, line := range lines {
		if line.CatalogItemID != "" {
			if idx := findByItemID(cart, line.CatalogItemID); idx >= 0 {
				cart[idx].Quantity += line.Quantity
				continue
			}
		}

		cart = append(cart, CartLine{
			CatalogItemID: line.CatalogItemID,
			Name:          line.DisplayName,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
		})
	}
	return cart
}

func findByItemID(cart []CartLine, id string) int {
	for i := range cart {
		if cart[i].CatalogItemID == id {
			return i
		}
	}
	return -1
}
