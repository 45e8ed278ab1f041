// Package cartkey encodes a (product, size, color) variant tuple into the
// single string key used to address cart lines, and back.
//
// The separator is ":". Product IDs are UUIDs and can never contain it; for
// any other field Encode rejects values containing the separator instead of
// producing an ambiguous key.
package cartkey

import (
	"fmt"
	"strings"
)

const Separator = ":"

// Sentinels substituted for absent optional dimensions so encoding is total.
const (
	NoSize  = "NOSIZE"
	NoColor = "NOCOLOR"
)

// Defaults applied by Decode when a key carries fewer than three segments.
const (
	DefaultSize  = "M"
	DefaultColor = "Default"
)

// Encode builds the composite cart key for a product variant. Empty size or
// color are replaced with sentinels; any field containing the separator is
// rejected since the key could not be decoded unambiguously.
func Encode(productID, size, color string) (string, error) {
	if productID == "" {
		return "", fmt.Errorf("cartkey: empty product id")
	}
	if size == "" {
		size = NoSize
	}
	if color == "" {
		color = NoColor
	}
	for _, f := range []string{productID, size, color} {
		if strings.Contains(f, Separator) {
			return "", fmt.Errorf("cartkey: field %q contains separator %q", f, Separator)
		}
	}
	return productID + Separator + size + Separator + color, nil
}

// Decode splits a composite key back into its variant tuple. Keys written by
// clients may omit trailing segments; those fall back to the catalog defaults.
func Decode(key string) (productID, size, color string, err error) {
	parts := strings.Split(key, Separator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 0 || parts[0] == "" {
		return "", "", "", fmt.Errorf("cartkey: empty product id in key %q", key)
	}
	if len(parts) > 3 {
		return "", "", "", fmt.Errorf("cartkey: too many segments in key %q", key)
	}

	productID = parts[0]
	size = DefaultSize
	color = DefaultColor
	if len(parts) > 1 && parts[1] != "" {
		size = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		color = parts[2]
	}
	return productID, size, color, nil
}
