package catalog

import (
	"time"

	"go-storemap-api/internal/model"
)

// ProductWithStock is a product joined with the stock count of one
// inventory record. It is derived on demand and never stored.
type ProductWithStock struct {
	model.Product
	Stock       int       `json:"stock"`
	LastUpdated time.Time `json:"last_updated"`
}

// Snapshot is an immutable in-memory view of the full catalog: every
// location, product and inventory record as of one load. All derivations
// (joins, filters, aggregates) run against a snapshot and are pure; when
// the underlying store changes, callers build a new snapshot and swap it
// wholesale.
type Snapshot struct {
	locations []model.Location
	products  []model.Product
	inventory []model.InventoryRecord

	productsByID        map[string]model.Product
	locationsByID       map[string]model.Location
	inventoryByLocation map[string][]model.InventoryRecord
}

// NewSnapshot builds a snapshot over the given collections. Slice order is
// preserved, so repeated derivations against the same snapshot return
// results in a stable order.
func NewSnapshot(locations []model.Location, products []model.Product, inventory []model.InventoryRecord) *Snapshot {
	s := &Snapshot{
		locations:           locations,
		products:            products,
		inventory:           inventory,
		productsByID:        make(map[string]model.Product, len(products)),
		locationsByID:       make(map[string]model.Location, len(locations)),
		inventoryByLocation: make(map[string][]model.InventoryRecord),
	}
	for _, p := range products {
		s.productsByID[p.ID] = p
	}
	for _, loc := range locations {
		s.locationsByID[loc.ID] = loc
	}
	for _, rec := range inventory {
		s.inventoryByLocation[rec.LocationID] = append(s.inventoryByLocation[rec.LocationID], rec)
	}
	return s
}

// Locations returns the snapshot's location list in load order.
func (s *Snapshot) Locations() []model.Location {
	return s.locations
}

// Products returns the snapshot's product list in load order.
func (s *Snapshot) Products() []model.Product {
	return s.products
}

// Location looks up a location by id.
func (s *Snapshot) Location(id string) (model.Location, bool) {
	loc, ok := s.locationsByID[id]
	return loc, ok
}

// ProductsAtLocation joins the location's inventory records with their
// products. Records pointing at a product that no longer exists are
// dropped silently: an orphaned record is a recoverable data-integrity
// gap, not an error.
func (s *Snapshot) ProductsAtLocation(locationID string) []ProductWithStock {
	records := s.inventoryByLocation[locationID]
	result := make([]ProductWithStock, 0, len(records))
	for _, rec := range records {
		product, ok := s.productsByID[rec.ProductID]
		if !ok {
			continue
		}
		result = append(result, ProductWithStock{
			Product:     product,
			Stock:       rec.Stock,
			LastUpdated: rec.LastUpdated,
		})
	}
	return result
}

// TotalStock sums the stock counts of all products at the location.
func (s *Snapshot) TotalStock(locationID string) int {
	total := 0
	for _, p := range s.ProductsAtLocation(locationID) {
		total += p.Stock
	}
	return total
}

// Categories returns the distinct product categories in first-seen order.
// The result populates filter choices; there is no hardcoded category
// list, so admin-entered categories and filter labels cannot drift apart.
func (s *Snapshot) Categories() []string {
	seen := make(map[string]bool, len(s.products))
	categories := make([]string, 0)
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
