package catalog

import "go-storemap-api/internal/model"

// Selection holds the visitor's active filter criteria. The zero value
// means "show everything". Selections are immutable values; each
// transition returns a new Selection, so recompute decisions can be made
// by plain equality checks.
type Selection struct {
	Category     string             `json:"category"`
	LocationType model.LocationType `json:"location_type"`
	InStockOnly  bool               `json:"in_stock_only"`
}

// WithCategory returns a copy of the selection filtered to the category.
// An empty category clears the criterion.
func (sel Selection) WithCategory(category string) Selection {
	sel.Category = category
	return sel
}

// WithLocationType returns a copy of the selection filtered to the
// location type. An empty type clears the criterion.
func (sel Selection) WithLocationType(t model.LocationType) Selection {
	sel.LocationType = t
	return sel
}

// WithInStockOnly returns a copy of the selection with the stock-only
// toggle set.
func (sel Selection) WithInStockOnly(inStockOnly bool) Selection {
	sel.InStockOnly = inStockOnly
	return sel
}

// Reset returns the default selection (show everything).
func (sel Selection) Reset() Selection {
	return Selection{}
}

// IsZero reports whether the selection filters nothing out.
func (sel Selection) IsZero() bool {
	return sel == Selection{}
}

// FilterLocations narrows locations to those matching every criterion of
// the selection. The three predicates are AND-combined:
//
//   - location type must equal the selected type exactly
//   - at least one product stocked at the location must carry the
//     selected category
//   - with the stock-only toggle, at least one stocked product must have
//     stock > 0
//
// The input order is preserved and the input slice is never mutated. An
// empty result is a valid outcome, not an error. An unrecognized location
// type matches no location.
func (s *Snapshot) FilterLocations(locations []model.Location, sel Selection) []model.Location {
	result := make([]model.Location, 0, len(locations))
	for _, loc := range locations {
		if sel.LocationType != "" && loc.Type != sel.LocationType {
			continue
		}
		if sel.Category != "" && !s.hasCategory(loc.ID, sel.Category) {
			continue
		}
		if sel.InStockOnly && !s.hasStock(loc.ID) {
			continue
		}
		result = append(result, loc)
	}
	return result
}

// VisibleLocations applies the selection over the snapshot's own
// location list.
func (s *Snapshot) VisibleLocations(sel Selection) []model.Location {
	return s.FilterLocations(s.locations, sel)
}

func (s *Snapshot) hasCategory(locationID, category string) bool {
	for _, p := range s.ProductsAtLocation(locationID) {
		if p.Category == category {
			return true
		}
	}
	return false
}

func (s *Snapshot) hasStock(locationID string) bool {
	for _, p := range s.ProductsAtLocation(locationID) {
		if p.Stock > 0 {
			return true
		}
	}
	return false
}
