package models

import "time"

// Review is one per user per product, enforced by the composite unique index.
type Review struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	ProductID        string     `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"product_id"`
	Product          Product    `gorm:"foreignKey:ProductID" json:"-"`
	UserID           string     `gorm:"not null;uniqueIndex:idx_reviews_product_user" json:"user_id"`
	UserName         string     `json:"user_name"`
	Rating           int        `gorm:"not null" json:"rating"` // 1..5
	Comment          string     `json:"comment"`
	Images           StringList `gorm:"type:jsonb" json:"images"`
	VerifiedPurchase bool       `json:"verified_purchase"`
	HelpfulCount     int        `json:"helpful_count"`
	HelpfulBy        StringList `gorm:"type:jsonb" json:"-"`
	Approved         bool       `gorm:"default:true" json:"approved"`
	Hidden           bool       `gorm:"default:false" json:"hidden"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
