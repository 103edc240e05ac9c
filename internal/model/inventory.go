package model

import "time"

// InventoryRecord holds the stock count of one product at one location.
// At most one record may exist per (location, product) pair; the record
// ID is the fixed concatenation locationID + "_" + productID, and
// duplicate detection on "add inventory" depends on recomputing exactly
// this key.
type InventoryRecord struct {
	ID          string    `gorm:"type:varchar(200);primaryKey" json:"id"`
	LocationID  string    `gorm:"type:varchar(100);not null;index" json:"location_id" validate:"required"`
	ProductID   string    `gorm:"type:varchar(100);not null;index" json:"product_id" validate:"required"`
	Stock       int       `gorm:"not null;default:0" json:"stock" validate:"gte=0"`
	LastUpdated time.Time `json:"last_updated"`
}

// InventoryKey materializes the composite (location, product) identity as
// a single string id.
func InventoryKey(locationID, productID string) string {
	return locationID + "_" + productID
}

// Key returns the record's composite id regardless of whether ID was set.
func (r *InventoryRecord) Key() string {
	return InventoryKey(r.LocationID, r.ProductID)
}
