package orderControllers

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/MuhammadMustajeeb/wearly/apierr"
	"github.com/MuhammadMustajeeb/wearly/cartkey"
	"github.com/MuhammadMustajeeb/wearly/pricing"
)

// -------- Request Structs --------

// OrderItemInput is one entry of the "items" array shape. Product may be a
// plain product id or a composite cart key; explicit size/color win over the
// key segments. Quantity is read from "quantity" or the legacy "qty" field.
type OrderItemInput struct {
	Product  string   `json:"product"`
	Quantity int      `json:"quantity"`
	Qty      int      `json:"qty"`
	Size     string   `json:"size"`
	Color    string   `json:"color"`
	Price    *float64 `json:"price"`
}

// PlaceOrderRequest accepts both client cart shapes: the composite-key
// mapping kept by the storefront and a flat items array.
type PlaceOrderRequest struct {
	CartData      map[string]int   `json:"cartData"`
	Items         []OrderItemInput `json:"items"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"paymentMethod"`
	ShippingFee   *float64         `json:"shippingFee"`
}

// normalizeCart flattens either cart shape into validated pricing lines.
// Mapping entries with quantity <= 0 are dropped silently; mapping keys are
// processed in sorted order so totals are deterministic.
func normalizeCart(req PlaceOrderRequest) ([]pricing.Line, error) {
	var lines []pricing.Line

	keys := make([]string, 0, len(req.CartData))
	for key := range req.CartData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		qty := req.CartData[key]
		if qty <= 0 {
			continue
		}
		productID, size, color, err := cartkey.Decode(key)
		if err != nil {
			return nil, apierr.Validation("invalid cart key: " + key)
		}
		lines = append(lines, pricing.Line{
			ProductID: productID,
			Quantity:  qty,
			Size:      size,
			Color:     color,
		})
	}

	for _, item := range req.Items {
		if item.Product == "" {
			continue
		}
		qty := item.Quantity
		if qty == 0 {
			qty = item.Qty
		}
		if qty <= 0 {
			continue
		}

		productID := strings.TrimSpace(item.Product)
		size, color := "", ""
		if strings.Contains(item.Product, cartkey.Separator) {
			var err error
			productID, size, color, err = cartkey.Decode(item.Product)
			if err != nil {
				return nil, apierr.Validation("invalid cart key: " + item.Product)
			}
		}
		if item.Size != "" {
			size = item.Size
		}
		if item.Color != "" {
			color = item.Color
		}
		if size == "" {
			size = cartkey.DefaultSize
		}
		if color == "" {
			color = cartkey.DefaultColor
		}

		lines = append(lines, pricing.Line{
			ProductID:   productID,
			Quantity:    qty,
			Size:        size,
			Color:       color,
			ClientPrice: item.Price,
		})
	}

	if len(lines) == 0 {
		return nil, apierr.Validation("cart is empty")
	}

	for _, line := range lines {
		if _, err := uuid.Parse(line.ProductID); err != nil {
			return nil, apierr.Validation("invalid product id: " + line.ProductID)
		}
	}

	return lines, nil
}
