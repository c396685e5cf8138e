package model

import "time"

// Studio is a single studio listing row in the studios table.
type Studio struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text;not null"`
	Location     string    `gorm:"size:255;not null"`
	PricePerHour float64   `gorm:"not null"`
	ImageURL     *string   `gorm:"column:image_url"`
	ContactEmail *string   `gorm:"column:contact_email;size:255"`
	ContactPhone *string   `gorm:"column:contact_phone"`
	IsAvailable  bool      `gorm:"column:is_available;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
