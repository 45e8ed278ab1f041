package orderControllers

import (
	"testing"

	"github.com/MuhammadMustajeeb/wearly/apierr"
)

const (
	testProductA = "9f0c1a2b-3d4e-4f50-8a9b-0c1d2e3f4a5b"
	testProductB = "1b2c3d4e-5f60-4a7b-8c9d-0e1f2a3b4c5d"
)

func TestNormalizeCartMapping(t *testing.T) {
	req := PlaceOrderRequest{
		CartData: map[string]int{
			testProductA + ":M:black": 2,
			testProductA + ":L:black": 1,
		},
	}

	lines, err := normalizeCart(req)
	if err != nil {
		t.Fatalf("normalizeCart returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// keys are processed in sorted order: "...:L:black" < "...:M:black"
	if lines[0].Size != "L" || lines[0].Quantity != 1 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
	if lines[1].Size != "M" || lines[1].Quantity != 2 {
		t.Fatalf("unexpected second line: %+v", lines[1])
	}
	for _, l := range lines {
		if l.ProductID != testProductA || l.Color != "black" {
			t.Fatalf("unexpected line: %+v", l)
		}
	}
}

func TestNormalizeCartDropsNonPositiveQuantities(t *testing.T) {
	req := PlaceOrderRequest{
		CartData: map[string]int{
			testProductA + ":M:black": 0,
			testProductB + ":L:red":   -3,
		},
	}

	_, err := normalizeCart(req)
	if err == nil {
		t.Fatal("expected empty-cart error after dropping all lines")
	}
	if apierr.Message(err) != "cart is empty" || apierr.Status(err) != 400 {
		t.Fatalf("unexpected error: %v (status %d)", err, apierr.Status(err))
	}
}

func TestNormalizeCartEmptyInput(t *testing.T) {
	if _, err := normalizeCart(PlaceOrderRequest{}); err == nil {
		t.Fatal("expected empty-cart error")
	}
}

func TestNormalizeCartItemsArray(t *testing.T) {
	price := 450.0
	req := PlaceOrderRequest{
		Items: []OrderItemInput{
			{Product: testProductA, Quantity: 2, Size: "XL", Color: "white", Price: &price},
			{Product: testProductB + ":L:blue", Quantity: 1},
			{Product: testProductB, Qty: 3},
		},
	}

	lines, err := normalizeCart(req)
	if err != nil {
		t.Fatalf("normalizeCart returned error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if lines[0].Size != "XL" || lines[0].Color != "white" || lines[0].ClientPrice == nil {
		t.Fatalf("explicit fields not honored: %+v", lines[0])
	}
	if lines[1].ProductID != testProductB || lines[1].Size != "L" || lines[1].Color != "blue" {
		t.Fatalf("composite key not split: %+v", lines[1])
	}
	if lines[2].Size != "M" || lines[2].Color != "Default" || lines[2].Quantity != 3 {
		t.Fatalf("defaults or qty fallback not applied: %+v", lines[2])
	}
}

func TestNormalizeCartExplicitFieldsWinOverKeySegments(t *testing.T) {
	req := PlaceOrderRequest{
		Items: []OrderItemInput{
			{Product: testProductA + ":M:black", Quantity: 1, Size: "L", Color: "red"},
		},
	}

	lines, err := normalizeCart(req)
	if err != nil {
		t.Fatalf("normalizeCart returned error: %v", err)
	}
	if lines[0].Size != "L" || lines[0].Color != "red" {
		t.Fatalf("explicit fields should override key segments: %+v", lines[0])
	}
}

func TestNormalizeCartZeroQuantityItemDropped(t *testing.T) {
	req := PlaceOrderRequest{
		Items: []OrderItemInput{{Product: testProductB, Quantity: 0}},
	}
	_, err := normalizeCart(req)
	if err == nil || apierr.Message(err) != "cart is empty" {
		t.Fatalf("expected empty-cart error, got %v", err)
	}
}

func TestNormalizeCartInvalidProductID(t *testing.T) {
	req := PlaceOrderRequest{
		CartData: map[string]int{"not-a-uuid:M:black": 1},
	}
	_, err := normalizeCart(req)
	if err == nil {
		t.Fatal("expected invalid product id error")
	}
	if apierr.Status(err) != 400 {
		t.Fatalf("expected validation status, got %d", apierr.Status(err))
	}
}

func TestNormalizeCartMergesBothShapes(t *testing.T) {
	req := PlaceOrderRequest{
		CartData: map[string]int{testProductA + ":M:black": 1},
		Items:    []OrderItemInput{{Product: testProductB, Quantity: 2}},
	}

	lines, err := normalizeCart(req)
	if err != nil {
		t.Fatalf("normalizeCart returned error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != testProductA || lines[1].ProductID != testProductB {
		t.Fatalf("mapping lines should come first: %+v", lines)
	}
}

func TestPaymentMethodMapping(t *testing.T) {
	if _, err := mapPaymentMethod("cod"); err != nil {
		t.Fatalf("lowercase method should map: %v", err)
	}
	if _, err := mapPaymentMethod("CARD"); err == nil {
		t.Fatal("expected error for disallowed method")
	}
}
