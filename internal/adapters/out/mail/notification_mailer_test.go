package mail

import (
	"context"
	"strings"
	"testing"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	orderdom "github.com/daniuniv/Efficient-Clothing/internal/domain/order"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

type sent struct{ from, to, subject, body string }

type fakeClient struct{ mails []sent }

func (f *fakeClient) Send(_ context.Context, from, to, subject, body string) error {
	f.mails = append(f.mails, sent{from, to, subject, body})
	return nil
}

func TestOrderPlacedMailGoesToCustomer(t *testing.T) {
	c := &fakeClient{}
	m := NewNotificationMailer(c, "shop@example.com", "https://shop.example.com/")

	m.PublishOrderEvent(context.Background(), usecase.OrderEvent{
		Kind:          usecase.OrderPlaced,
		OrderID:       "order-1",
		StoreNames:    []string{"A", "B"},
		TotalAmount:   25,
		CustomerEmail: "c@example.com",
	})

	if len(c.mails) != 1 {
		t.Fatalf("mails = %d", len(c.mails))
	}
	got := c.mails[0]
	if got.to != "c@example.com" || got.from != "shop@example.com" {
		t.Fatalf("addresses = %+v", got)
	}
	if !strings.Contains(got.body, "25.00") || !strings.Contains(got.body, "A, B") {
		t.Fatalf("body = %q", got.body)
	}
	if !strings.Contains(got.body, "https://shop.example.com/orders") {
		t.Fatalf("site link missing: %q", got.body)
	}
}

func TestStatusMailAndSkips(t *testing.T) {
	c := &fakeClient{}
	m := NewNotificationMailer(c, "shop@example.com", "")

	m.PublishOrderEvent(context.Background(), usecase.OrderEvent{
		Kind:        usecase.SubOrderStatusChanged,
		OrderID:     "order-1",
		StoreNames:  []string{"A"},
		Status:      orderdom.StatusShipped,
		OrderStatus: orderdom.StatusProcessing,
	})
	if len(c.mails) != 0 {
		t.Fatalf("mail sent without a customer email")
	}

	m.PublishOrderEvent(context.Background(), usecase.OrderEvent{
		Kind:          usecase.SubOrderStatusChanged,
		OrderID:       "order-1",
		StoreNames:    []string{"A"},
		Status:        orderdom.StatusShipped,
		OrderStatus:   orderdom.StatusProcessing,
		CustomerEmail: "c@example.com",
	})
	if len(c.mails) != 1 || !strings.Contains(c.mails[0].subject, "Shipped") {
		t.Fatalf("mails = %+v", c.mails)
	}
}

func TestNotifyManagerApproved(t *testing.T) {
	c := &fakeClient{}
	m := NewNotificationMailer(c, "shop@example.com", "https://shop.example.com")

	err := m.NotifyManagerApproved(context.Background(), userdom.Profile{
		UID: "u1", Email: "m@example.com", Role: userdom.RoleStoreManager, StoreName: "A",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(c.mails) != 1 || c.mails[0].to != "m@example.com" {
		t.Fatalf("mails = %+v", c.mails)
	}

	var nilMailer *NotificationMailer
	if err := nilMailer.NotifyManagerApproved(context.Background(), userdom.Profile{Email: "x@example.com"}); err == nil {
		t.Fatalf("nil mailer should error")
	}
}

func TestWireDisabledWithoutKey(t *testing.T) {
	if m := NewNotificationMailerWithSendGrid("", "shop@example.com", ""); m != nil {
		t.Fatalf("expected nil mailer")
	}
}
