// internal/adapters/out/firestore/order_decode_fs.go
package firestore

import (
	"fmt"

	"cloud.google.com/go/firestore"

	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
)

// ========================
// Encode
// ========================

func orderToDoc(o orderdom.Order) map[string]any {
	subs := make([]map[string]any, 0, len(o.SubOrders))
	for _, s := range o.SubOrders {
		items := make([]map[string]any, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, map[string]any{
				"productId": it.ProductID,
				"name":      it.Name,
				"size":      it.Size,
				"quantity":  it.Quantity,
				"price":     it.Price,
				"image":     it.Image,
			})
		}
		sub := map[string]any{
			"id":          s.ID,
			"orderId":     s.OrderID,
			"storeName":   s.StoreName,
			"items":       items,
			"totalAmount": s.TotalAmount,
			"status":      string(s.Status),
		}
		if !s.UpdatedAt.IsZero() {
			sub["updatedAt"] = s.UpdatedAt
		}
		subs = append(subs, sub)
	}

	storeNames := o.StoreNames
	if storeNames == nil {
		storeNames = []string{}
	}

	return map[string]any{
		"customerId":    o.CustomerID,
		"customerEmail": o.CustomerEmail,
		"deliveryAddress": map[string]any{
			"street":     o.DeliveryAddress.Street,
			"city":       o.DeliveryAddress.City,
			"postalCode": o.DeliveryAddress.PostalCode,
		},
		"totalAmount": o.TotalAmount,
		"status":      string(o.Status),
		"subOrders":   subs,
		"storeNames":  storeNames,
		"createdAt":   o.CreatedAt,
		"updatedAt":   o.UpdatedAt,
	}
}

// ========================
// Decode (older documents absorbed)
// ========================

// decodeStatus keeps unknown spellings as-is rather than failing the read.
func decodeStatus(v any) orderdom.Status {
	s := asString(v)
	if st, err := orderdom.ParseStatus(s); err == nil {
		return st
	}
	return orderdom.Status(s)
}

func orderFromSnapshot(snap *firestore.DocumentSnapshot) orderdom.Order {
	return orderFromMap(snap.Ref.ID, snap.Data())
}

func orderFromMap(id string, raw map[string]any) orderdom.Order {
	o := orderdom.Order{
		ID:            id,
		CustomerID:    asString(raw["customerId"]),
		CustomerEmail: asString(raw["customerEmail"]),
		TotalAmount:   asFloat(raw["totalAmount"]),
		Status:        decodeStatus(raw["status"]),
	}
	if addr := asMapAny(raw["deliveryAddress"]); addr != nil {
		o.DeliveryAddress = orderdom.DeliveryAddress{
			Street:     asString(addr["street"]),
			City:       asString(addr["city"]),
			PostalCode: asString(addr["postalCode"]),
		}
	}
	if t, ok := asTime(raw["createdAt"]); ok {
		o.CreatedAt = t
	}
	if t, ok := asTime(raw["updatedAt"]); ok {
		o.UpdatedAt = t
	} else {
		o.UpdatedAt = o.CreatedAt
	}

	seen := map[string]bool{}
	for i, v := range asSlice(raw["subOrders"]) {
		m := asMapAny(v)
		if m == nil {
			continue
		}
		s := orderdom.SubOrder{
			ID:          asString(m["id"]),
			OrderID:     asString(m["orderId"]),
			StoreName:   asString(m["storeName"]),
			TotalAmount: asFloat(m["totalAmount"]),
			Status:      decodeStatus(m["status"]),
		}
		// Older documents reused the parent id for every sub-order. Give
		// those a positional id so each one stays addressable; the next
		// write persists it.
		if s.ID == "" || s.ID == id || seen[s.ID] {
			s.ID = legacySubOrderID(id, i)
		}
		seen[s.ID] = true
		if s.OrderID == "" {
			s.OrderID = id
		}
		if s.StoreName == "" {
			s.StoreName = orderdom.UnknownStore
		}
		if t, ok := asTime(m["updatedAt"]); ok {
			s.UpdatedAt = t
		}
		for _, iv := range asSlice(m["items"]) {
			im := asMapAny(iv)
			if im == nil {
				continue
			}
			img := asString(im["image"])
			if img == "" {
				img = asString(im["images"])
			}
			s.Items = append(s.Items, orderdom.Item{
				ProductID: asString(im["productId"]),
				Name:      asString(im["name"]),
				Size:      asString(im["size"]),
				Quantity:  asInt(im["quantity"]),
				Price:     asFloat(im["price"]),
				Image:     img,
			})
		}
		o.SubOrders = append(o.SubOrders, s)
	}

	o.StoreNames = asStrings(raw["storeNames"])
	if len(o.StoreNames) == 0 {
		for _, s := range o.SubOrders {
			o.StoreNames = append(o.StoreNames, s.StoreName)
		}
	}
	return o
}

func legacySubOrderID(orderID string, idx int) string {
	return fmt.Sprintf("%s-%d", orderID, idx)
}
