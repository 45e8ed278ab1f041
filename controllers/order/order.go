package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhammadMustajeeb/wearly/apierr"
	"github.com/MuhammadMustajeeb/wearly/models"
	"github.com/MuhammadMustajeeb/wearly/pricing"
)

type UpdateOrderRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPlaced):
		return models.OrderStatusPlaced, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentStatus
func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToUpper(method) {
	case string(models.PaymentMethodCOD):
		return models.PaymentMethodCOD, nil
	case string(models.PaymentMethodEasypaisa):
		return models.PaymentMethodEasypaisa, nil
	case string(models.PaymentMethodJazzcash):
		return models.PaymentMethodJazzcash, nil
	default:
		return "", errors.New("invalid payment method (allowed: COD, EASYPAISA, JAZZCASH)")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder normalizes the submitted cart, prices every line against the
// catalog and persists the order atomically. The stored cart mapping is
// cleared afterwards on a best-effort basis: a failed clear is logged but the
// order stands.
func PlaceOrder(db *gorm.DB, engine *pricing.Engine, userID string, req PlaceOrderRequest) (*models.Order, error) {
	lines, err := normalizeCart(req)
	if err != nil {
		return nil, err
	}

	method, err := mapPaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, apierr.Validation(err.Error())
	}

	if _, err := uuid.Parse(req.Address); err != nil {
		return nil, apierr.Validation("address must be a valid id")
	}
	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", req.Address, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.Validation("address not found")
		}
		return nil, apierr.Persistence("failed to load address", err)
	}

	// Single batch fetch for all distinct products in the cart.
	seen := make(map[string]bool, len(lines))
	var ids []string
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, apierr.Persistence("failed to load products", err)
	}
	productMap := make(map[string]models.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	shippingFee := engine.DefaultShippingFee
	if req.ShippingFee != nil && *req.ShippingFee >= 0 {
		shippingFee = *req.ShippingFee
	}

	items, amount, err := engine.Price(lines, productMap, shippingFee)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:            uuid.NewString(),
		OrderRef:      generateOrderRef(),
		UserID:        userID,
		Items:         items,
		ShippingFee:   shippingFee,
		Amount:        amount,
		AddressID:     address.ID,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPending,
		OrderStatus:   models.OrderStatusPlaced,
		CreatedAt:     time.Now(),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, apierr.Persistence("failed to create order", err)
	}

	// Non-fatal: the user may see a stale cart if this write fails, which is
	// an accepted eventual-consistency window.
	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("cart_items", models.CartData{}).Error; err != nil {
		log.Printf("⚠️ Failed to clear cart for user %s (non-fatal): %v", userID, err)
	}

	broadcastNewOrder(order)

	return &order, nil
}

// -------- Handlers --------

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB, engine *pricing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON body"})
			return
		}

		order, err := PlaceOrder(db, engine, userID, req)
		if err != nil {
			c.JSON(apierr.Status(err), gin.H{"success": false, "message": apierr.Message(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"orderId": order.ID,
			"message": "Order created successfully",
		})
	}
}

// GET /orders/my
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			// soft-deleted products still back past orders
			Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /seller/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// PUT /seller/orders/:orderID — update order and/or payment status
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "orderID is required"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if req.OrderStatus == "" && req.PaymentStatus == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "nothing to update"})
			return
		}

		updates := make(map[string]interface{})
		if req.OrderStatus != "" {
			status, err := mapOrderStatus(req.OrderStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["order_status"] = status
		}
		if req.PaymentStatus != "" {
			status, err := mapPaymentStatus(req.PaymentStatus)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
				return
			}
			updates["payment_status"] = status
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Updates(updates)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order updated successfully"})
	}
}
