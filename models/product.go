package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	SellerID         string         `gorm:"index;not null" json:"seller_id"`
	Name             string         `gorm:"not null" json:"name"`
	Description      string         `json:"description"`
	Price            float64        `gorm:"not null" json:"price"`
	OfferPrice       float64        `json:"offer_price"`
	Category         string         `gorm:"index" json:"category"`
	Images           StringList     `gorm:"type:jsonb" json:"images"`
	ImagesByColor    ColorImages    `gorm:"type:jsonb" json:"images_by_color,omitempty"`
	AvailableSizes   StringList     `gorm:"type:jsonb" json:"available_sizes"`
	AvailableColors  StringList     `gorm:"type:jsonb" json:"available_colors"`
	OutOfStockColors StringList     `gorm:"type:jsonb" json:"out_of_stock_colors"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BasePrice is the catalog price used for order lines: the offer price when
// one is set, the regular price otherwise.
func (p Product) BasePrice() float64 {
	if p.OfferPrice > 0 {
		return p.OfferPrice
	}
	return p.Price
}
