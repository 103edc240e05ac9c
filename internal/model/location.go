package model

import "time"

// LocationType classifies a retail location. Categories of products are
// open-ended strings; location types are a closed set.
type LocationType string

const (
	TypeRoadsideStation LocationType = "roadside_station"
	TypeShop            LocationType = "shop"
	TypeGallery         LocationType = "gallery"
	TypeShrine          LocationType = "shrine"
	TypeOther           LocationType = "other"
)

// Valid reports whether t is one of the known location types.
// An unknown type is never an error at read time; filters simply
// match nothing for it.
func (t LocationType) Valid() bool {
	switch t {
	case TypeRoadsideStation, TypeShop, TypeGallery, TypeShrine, TypeOther:
		return true
	}
	return false
}

// Location is a physical place where products are stocked and sold.
// Coordinates are WGS84 degrees, consumed as-is by the map widget.
type Location struct {
	ID         string       `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Name       string       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address    string       `gorm:"type:varchar(500);not null" json:"address" validate:"required"`
	Latitude   float64      `gorm:"not null" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64      `gorm:"not null" json:"longitude" validate:"gte=-180,lte=180"`
	Hours      string       `gorm:"type:varchar(255)" json:"hours"`
	ClosedDays string       `gorm:"type:varchar(255)" json:"closed_days"`
	Phone      string       `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Website    string       `gorm:"type:varchar(500)" json:"website,omitempty"`
	Type       LocationType `gorm:"type:varchar(30);not null;index" json:"type" validate:"location_type"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
