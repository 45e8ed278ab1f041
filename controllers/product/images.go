package productcontroller

import (
	"sort"
	"strings"

	"github.com/MuhammadMustajeeb/wearly/models"
)

// normalizeColorKey makes color tokens comparable: colors arrive as names or
// hex with inconsistent casing and an optional leading '#'.
func normalizeColorKey(c string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c)), "#")
}

// ResolveImages picks the display images for a selected color, in order of
// preference: the product's per-color image map, a substring match of the
// color token against the generic image URLs, then the generic list. The
// result is ordered and deduplicated. Pure function over fetched data.
func ResolveImages(p models.Product, selectedColor string) []string {
	token := normalizeColorKey(selectedColor)
	if token == "" {
		return dedupeURLs(p.Images)
	}

	// 1) explicit per-color mapping, keys normalized before lookup
	if len(p.ImagesByColor) > 0 {
		rawKeys := make([]string, 0, len(p.ImagesByColor))
		for k := range p.ImagesByColor {
			rawKeys = append(rawKeys, k)
		}
		sort.Strings(rawKeys)
		for _, rawKey := range rawKeys {
			if normalizeColorKey(rawKey) == token && len(p.ImagesByColor[rawKey]) > 0 {
				return dedupeURLs(p.ImagesByColor[rawKey])
			}
		}
	}

	// 2) heuristic: color token appearing in generic image URLs, for catalogs
	// that never set up a per-color mapping
	var matches []string
	for _, u := range p.Images {
		if strings.Contains(strings.ToLower(u), token) {
			matches = append(matches, u)
		}
	}
	if len(matches) > 0 {
		return dedupeURLs(matches)
	}

	// 3) generic list as last resort
	return dedupeURLs(p.Images)
}

func dedupeURLs(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
