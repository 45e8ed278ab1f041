package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"` // auth provider UID
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Role      string    `gorm:"type:VARCHAR(20);default:'user'" json:"role"` // "user" or "seller"
	CartItems CartData  `gorm:"type:jsonb;default:'{}'" json:"cart_items"`
	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders    []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Address is a stored shipping address; orders reference it by ID.
type Address struct {
	ID       string `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	FullName string `gorm:"not null" json:"full_name"`
	Phone    string `gorm:"not null" json:"phone"`
	Pincode  string `json:"pincode"`
	Area     string `json:"area"`
	City     string `json:"city"`
	State    string `json:"state"`
}
