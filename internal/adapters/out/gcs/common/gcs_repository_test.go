package common

import "testing"

func TestGCSPublicURLRoundTrip(t *testing.T) {
	u := GCSPublicURL("", "/inventory/item 1/a.png", "shop-images")
	if u != "https://storage.googleapis.com/shop-images/inventory/item%201/a.png" {
		t.Fatalf("url = %s", u)
	}
	b, obj, ok := ParseGCSURL(u)
	if !ok || b != "shop-images" || obj != "inventory/item 1/a.png" {
		t.Fatalf("parsed = %q %q %v", b, obj, ok)
	}
	if _, _, ok := ParseGCSURL("https://example.com/a/b"); ok {
		t.Fatalf("foreign host accepted")
	}
}
