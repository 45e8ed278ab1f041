package productcontroller

import (
	"reflect"
	"testing"

	"github.com/MuhammadMustajeeb/wearly/models"
)

func TestResolveImagesPerColorMapping(t *testing.T) {
	p := models.Product{
		Images: models.StringList{"generic1.jpg", "generic2.jpg"},
		ImagesByColor: models.ColorImages{
			"Black":   {"black1.jpg", "black2.jpg"},
			"#FF0000": {"red1.jpg"},
		},
	}

	got := ResolveImages(p, "black")
	want := []string{"black1.jpg", "black2.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	// hex selection matches a hex map key regardless of casing and '#'
	got = ResolveImages(p, "ff0000")
	if !reflect.DeepEqual(got, []string{"red1.jpg"}) {
		t.Fatalf("got %v", got)
	}
}

func TestResolveImagesSubstringFallback(t *testing.T) {
	p := models.Product{
		Images: models.StringList{
			"https://cdn.example.com/tee-Blue-front.jpg",
			"https://cdn.example.com/tee-blue-back.jpg",
			"https://cdn.example.com/tee-white.jpg",
		},
	}

	got := ResolveImages(p, "Blue")
	want := []string{
		"https://cdn.example.com/tee-Blue-front.jpg",
		"https://cdn.example.com/tee-blue-back.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestResolveImagesGenericFallback(t *testing.T) {
	p := models.Product{
		Images: models.StringList{"a.jpg", "b.jpg", "a.jpg"},
	}

	got := ResolveImages(p, "purple")
	want := []string{"a.jpg", "b.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected deduplicated generic list, got %v", got)
	}

	if got := ResolveImages(p, ""); !reflect.DeepEqual(got, want) {
		t.Fatalf("empty color should return generic list, got %v", got)
	}
}

func TestNormalizeColorKey(t *testing.T) {
	cases := map[string]string{
		"#FF8559": "ff8559",
		" Black ": "black",
		"blue":    "blue",
		"":        "",
	}
	for in, want := range cases {
		if got := normalizeColorKey(in); got != want {
			t.Fatalf("normalizeColorKey(%q) = %q, want %q", in, got, want)
		}
	}
}
