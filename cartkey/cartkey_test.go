package cartkey

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		productID, size, color string
	}{
		{"9f0c1a2b-3d4e-4f50-8a9b-0c1d2e3f4a5b", "M", "black"},
		{"9f0c1a2b-3d4e-4f50-8a9b-0c1d2e3f4a5b", "L", "#ff0000"},
		{"P1", "XL", "Default"},
		{"P1", "NOSIZE", "NOCOLOR"},
	}
	for _, tc := range cases {
		key, err := Encode(tc.productID, tc.size, tc.color)
		if err != nil {
			t.Fatalf("Encode(%q,%q,%q) returned error: %v", tc.productID, tc.size, tc.color, err)
		}
		p, s, c, err := Decode(key)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", key, err)
		}
		if p != tc.productID || s != tc.size || c != tc.color {
			t.Fatalf("round trip mismatch: got (%q,%q,%q) want (%q,%q,%q)",
				p, s, c, tc.productID, tc.size, tc.color)
		}
	}
}

func TestEncodeSubstitutesSentinels(t *testing.T) {
	key, err := Encode("P1", "", "")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if key != "P1:NOSIZE:NOCOLOR" {
		t.Fatalf("unexpected key: %q", key)
	}
}

func TestEncodeRejectsSeparator(t *testing.T) {
	if _, err := Encode("P1:evil", "M", "black"); err == nil {
		t.Fatal("expected error for product id containing separator")
	}
	if _, err := Encode("P1", "M", "red:ish"); err == nil {
		t.Fatal("expected error for color containing separator")
	}
	if _, err := Encode("", "M", "black"); err == nil {
		t.Fatal("expected error for empty product id")
	}
}

func TestDecodeDefaults(t *testing.T) {
	p, s, c, err := Decode("P1")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if p != "P1" || s != DefaultSize || c != DefaultColor {
		t.Fatalf("got (%q,%q,%q), want defaults applied", p, s, c)
	}

	p, s, c, err = Decode("P1:L")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if p != "P1" || s != "L" || c != DefaultColor {
		t.Fatalf("got (%q,%q,%q), want color default", p, s, c)
	}
}

func TestDecodeTrimsWhitespace(t *testing.T) {
	p, s, c, err := Decode("P1 : L : black")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if p != "P1" || s != "L" || c != "black" {
		t.Fatalf("got (%q,%q,%q)", p, s, c)
	}
}

func TestDecodeRejectsMalformedKeys(t *testing.T) {
	if _, _, _, err := Decode(""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, _, _, err := Decode(":M:black"); err == nil {
		t.Fatal("expected error for key without product id")
	}
	if _, _, _, err := Decode("P1:M:black:extra"); err == nil {
		t.Fatal("expected error for key with too many segments")
	}
}
