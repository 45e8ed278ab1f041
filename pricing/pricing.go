// Package pricing resolves normalized cart lines against catalog products and
// computes order line prices and the grand total.
package pricing

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/MuhammadMustajeeb/wearly/apierr"
	"github.com/MuhammadMustajeeb/wearly/models"
)

// Line is one normalized cart entry ready for pricing. ClientPrice carries a
// caller-supplied unit price, honored only when the engine trusts the client.
type Line struct {
	ProductID   string
	Quantity    int
	Size        string
	Color       string
	ClientPrice *float64
}

// Adjustments maps lowercase category → size → unit price multiplier.
// The adjusted price is rounded to the nearest integer, matching catalog
// policy for size surcharges.
type Adjustments map[string]map[string]float64

// DefaultAdjustments is the stock catalog policy: large and extra-large
// graphic tees carry a surcharge.
func DefaultAdjustments() Adjustments {
	return Adjustments{
		"graphic": {"L": 1.2105, "XL": 1.2},
	}
}

// Engine applies catalog pricing policy. Build one with FromEnv at startup.
type Engine struct {
	Adjustments Adjustments
	// TrustClientPrice lets a caller-supplied line price override the catalog
	// price. Off by default: a client that sets its own prices sets its own
	// order total.
	TrustClientPrice   bool
	DefaultShippingFee float64
}

// FromEnv reads PRICE_ADJUSTMENTS (JSON), TRUST_CLIENT_PRICE and SHIPPING_FEE.
func FromEnv() *Engine {
	e := &Engine{
		Adjustments:        DefaultAdjustments(),
		DefaultShippingFee: 100,
	}

	if raw := os.Getenv("PRICE_ADJUSTMENTS"); raw != "" {
		var table Adjustments
		if err := json.Unmarshal([]byte(raw), &table); err != nil {
			log.Printf("⚠️ Invalid PRICE_ADJUSTMENTS, keeping defaults: %v", err)
		} else {
			normalized := Adjustments{}
			for category, sizes := range table {
				normalized[strings.ToLower(category)] = sizes
			}
			e.Adjustments = normalized
		}
	}

	if v := os.Getenv("TRUST_CLIENT_PRICE"); v != "" {
		e.TrustClientPrice = v == "true" || v == "1"
	}

	if v := os.Getenv("SHIPPING_FEE"); v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil && fee >= 0 {
			e.DefaultShippingFee = fee
		}
	}

	return e
}

// UnitPrice computes the final unit price for one line of the given product:
// catalog base price (or trusted client price), then the category/size
// multiplier if one applies.
func (e *Engine) UnitPrice(p models.Product, size string, clientPrice *float64) float64 {
	price := p.BasePrice()
	if e.TrustClientPrice && clientPrice != nil && *clientPrice > 0 {
		price = *clientPrice
	}
	if sizes, ok := e.Adjustments[strings.ToLower(p.Category)]; ok {
		if mult, ok := sizes[size]; ok {
			price = math.Round(price * mult)
		}
	}
	return price
}

// Price resolves every line against the batch-fetched product set and returns
// the persist-ready order items plus the grand total. A single missing product
// aborts the whole order.
func (e *Engine) Price(lines []Line, products map[string]models.Product, shippingFee float64) ([]models.OrderItem, float64, error) {
	var items []models.OrderItem
	var total float64

	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, 0, apierr.NotFound("product not found: " + line.ProductID)
		}

		unitPrice := e.UnitPrice(product, line.Size, line.ClientPrice)
		total += unitPrice * float64(line.Quantity)

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			UnitPrice: unitPrice,
		})
	}

	return items, Round2(total + shippingFee), nil
}

// Round2 rounds to two decimal places, the precision stored on orders.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
