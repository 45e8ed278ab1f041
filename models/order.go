package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	// Order statuses
	OrderStatusPlaced    OrderStatus = "placed"    // Order created, awaiting dispatch
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending PaymentStatus = "pending" // Payment not completed yet
	PaymentStatusPaid    PaymentStatus = "paid"    // Payment completed successfully
	PaymentStatusFailed  PaymentStatus = "failed"  // Payment attempt failed

	// Payment methods
	PaymentMethodCOD       PaymentMethod = "COD"
	PaymentMethodEasypaisa PaymentMethod = "EASYPAISA"
	PaymentMethodJazzcash  PaymentMethod = "JAZZCASH"
)

type Order struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string        `gorm:"not null;index" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingFee   float64       `json:"shipping_fee"`
	Amount        float64       `json:"amount"` // sum(unit_price * quantity) + shipping fee
	AddressID     string        `gorm:"not null" json:"address_id"`
	Address       Address       `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	OrderStatus   OrderStatus   `gorm:"type:VARCHAR(20);default:'placed'" json:"order_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderItem is immutable after creation; UnitPrice is the price at order time
// (after any size adjustment) and is never recomputed.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index" json:"-"`
	ProductID string  `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	UnitPrice float64 `json:"unit_price"`
}
