package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	usecase "github.com/daniuniv/Efficient-Clothing/internal/application/usecase"
	userdom "github.com/daniuniv/Efficient-Clothing/internal/domain/user"
)

// EmailClient is the transport used by NotificationMailer.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// NotificationMailer sends customer order mails and manager approval mails.
type NotificationMailer struct {
	client  EmailClient
	from    string
	siteURL string
}

var (
	_ usecase.OrderEventPublisher = (*NotificationMailer)(nil)
	_ usecase.AccountNotifier     = (*NotificationMailer)(nil)
)

func NewNotificationMailer(client EmailClient, from, siteURL string) *NotificationMailer {
	return &NotificationMailer{
		client:  client,
		from:    strings.TrimSpace(from),
		siteURL: strings.TrimRight(strings.TrimSpace(siteURL), "/"),
	}
}

// PublishOrderEvent mails the customer. Failures are logged only.
func (m *NotificationMailer) PublishOrderEvent(ctx context.Context, ev usecase.OrderEvent) {
	if m == nil || m.client == nil {
		return
	}
	to := strings.TrimSpace(ev.CustomerEmail)
	if to == "" {
		return
	}

	subject, body := orderMail(ev, m.siteURL)
	if subject == "" {
		return
	}
	if err := m.client.Send(ctx, m.from, to, subject, body); err != nil {
		log.Printf("[mail] order mail failed kind=%s order=%s err=%v", ev.Kind, ev.OrderID, err)
	}
}

func (m *NotificationMailer) NotifyManagerApproved(ctx context.Context, p userdom.Profile) error {
	if m == nil || m.client == nil {
		return errors.New("mail: notification mailer is not configured")
	}
	to := strings.TrimSpace(p.Email)
	if to == "" {
		return userdom.ErrInvalidEmail
	}

	subject := fmt.Sprintf("Your store %s is now live", p.StoreName)
	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\n")
	fmt.Fprintf(&b, "The owner approved your manager account for %s.\n", p.StoreName)
	fmt.Fprintf(&b, "You can now manage inventory and orders")
	if m.siteURL != "" {
		fmt.Fprintf(&b, " at %s/manager", m.siteURL)
	}
	fmt.Fprintf(&b, ".\n")
	return m.client.Send(ctx, m.from, to, subject, b.String())
}

func orderMail(ev usecase.OrderEvent, siteURL string) (string, string) {
	var b strings.Builder
	switch ev.Kind {
	case usecase.OrderPlaced:
		fmt.Fprintf(&b, "Thank you for your order.\n\n")
		fmt.Fprintf(&b, "Order: %s\n", ev.OrderID)
		fmt.Fprintf(&b, "Total: %.2f\n", ev.TotalAmount)
		if len(ev.StoreNames) > 0 {
			fmt.Fprintf(&b, "Shipped by: %s\n", strings.Join(ev.StoreNames, ", "))
		}
		if siteURL != "" {
			fmt.Fprintf(&b, "\nTrack it at %s/orders\n", siteURL)
		}
		return fmt.Sprintf("Order %s received", ev.OrderID), b.String()

	case usecase.SubOrderStatusChanged:
		store := ""
		if len(ev.StoreNames) > 0 {
			store = ev.StoreNames[0]
		}
		fmt.Fprintf(&b, "Order: %s\n", ev.OrderID)
		if store != "" {
			fmt.Fprintf(&b, "Items from %s are now %s.\n", store, ev.Status)
		} else {
			fmt.Fprintf(&b, "Part of your order is now %s.\n", ev.Status)
		}
		fmt.Fprintf(&b, "Overall order status: %s\n", ev.OrderStatus)
		return fmt.Sprintf("Order %s update: %s", ev.OrderID, ev.Status), b.String()
	}
	return "", ""
}
