package model

import "time"

// Product is a catalog item sold at one or more physical locations.
// The ID is a human-readable slug chosen by the administrator
// (e.g. "kobaco"); it is immutable once created and is the document key
// referenced by inventory records.
type Product struct {
	ID          string    `gorm:"type:varchar(100);primaryKey" json:"id" validate:"required"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price       int64     `gorm:"not null;default:0" json:"price" validate:"gte=0"` // smallest currency unit
	Category    string    `gorm:"type:varchar(100);not null;index" json:"category" validate:"required"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
