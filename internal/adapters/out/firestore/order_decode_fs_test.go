package firestore

import (
	"testing"
	"time"

	invdom "github.com/daniuniv/Efficient-Clothing/internal/domain/inventory"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

func TestOrderFromMap_LegacySharedSubOrderIDs(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := map[string]any{
		"customerId":  "c1",
		"totalAmount": int64(25),
		"status":      "processing",
		"createdAt":   created,
		"deliveryAddress": map[string]any{
			"street": "1 Main St", "city": "Cluj", "postalCode": 400000,
		},
		"subOrders": []any{
			map[string]any{
				"id": "order-1", "storeName": "A", "totalAmount": 20.0, "status": "Processing",
				"items": []any{map[string]any{"name": "Tee", "size": "M", "quantity": int64(2), "price": "10", "images": "a.jpg"}},
			},
			map[string]any{"id": "order-1", "storeName": "", "totalAmount": 5, "status": "Shipped"},
		},
	}

	o := orderFromMap("order-1", raw)
	if o.Status != orderdom.StatusProcessing || o.TotalAmount != 25 || !o.CreatedAt.Equal(created) {
		t.Fatalf("order = %+v", o)
	}
	if o.DeliveryAddress.PostalCode != "400000" {
		t.Fatalf("postal code = %q", o.DeliveryAddress.PostalCode)
	}
	if len(o.SubOrders) != 2 {
		t.Fatalf("sub-orders = %d", len(o.SubOrders))
	}
	a, b := o.SubOrders[0], o.SubOrders[1]
	if a.ID != "order-1-0" || b.ID != "order-1-1" || a.OrderID != "order-1" {
		t.Fatalf("ids a=%q b=%q", a.ID, b.ID)
	}
	if b.StoreName != orderdom.UnknownStore {
		t.Fatalf("blank store = %q", b.StoreName)
	}
	if a.Items[0].Quantity != 2 || a.Items[0].Price != 10 || a.Items[0].Image != "a.jpg" {
		t.Fatalf("item = %+v", a.Items[0])
	}
	if len(o.StoreNames) != 2 {
		t.Fatalf("storeNames = %v", o.StoreNames)
	}
}

func TestOrderDocRoundTripKeepsSubOrderIdentity(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	o := orderdom.Order{
		ID: "o1", CustomerID: "c1", Status: orderdom.StatusShipped, TotalAmount: 5, CreatedAt: now, UpdatedAt: now,
		SubOrders:  []orderdom.SubOrder{{ID: "s-uuid", OrderID: "o1", StoreName: "B", TotalAmount: 5, Status: orderdom.StatusShipped}},
		StoreNames: []string{"B"},
	}
	doc := orderToDoc(o)

	// Firestore hands maps and slices back as map[string]any / []any.
	subs := doc["subOrders"].([]map[string]any)
	asAny := make([]any, len(subs))
	for i, s := range subs {
		asAny[i] = s
	}
	doc["subOrders"] = asAny
	doc["storeNames"] = []any{"B"}

	got := orderFromMap("o1", doc)
	if got.SubOrders[0].ID != "s-uuid" || got.Status != orderdom.StatusShipped || got.StoreNames[0] != "B" {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestDecodeSizes(t *testing.T) {
	sizes, tracked := decodeSizes("S, M,L")
	if tracked || len(sizes) != 3 || sizes[1].Size != "M" {
		t.Fatalf("legacy sizes = %+v tracked=%v", sizes, tracked)
	}

	sizes, tracked = decodeSizes([]any{
		map[string]any{"size": "30", "quantity": int64(4)},
		map[string]any{"size": "32", "quantity": "1"},
	})
	if !tracked || len(sizes) != 2 || sizes[0].Quantity != 4 || sizes[1].Quantity != 1 {
		t.Fatalf("tracked sizes = %+v tracked=%v", sizes, tracked)
	}

	if _, tracked := decodeSizes([]any{"S", "M"}); tracked {
		t.Fatalf("plain string array should be untracked")
	}

	it := invdom.Item{Sizes: sizes, SizesTracked: true}
	enc, ok := encodeSizes(it).([]map[string]any)
	if !ok || enc[0]["quantity"] != 4 {
		t.Fatalf("encoded = %#v", encodeSizes(it))
	}
	if s := encodeSizes(invdom.Item{Sizes: invdom.ParseLegacySizes("S,M")}); s != "S,M" {
		t.Fatalf("legacy encode = %#v", s)
	}
}
