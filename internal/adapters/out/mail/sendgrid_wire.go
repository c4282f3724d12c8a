package mail

import (
	"log"
	"strings"
)

// NewNotificationMailerWithSendGrid returns nil when apiKey or from is
// empty, so callers can leave mail switched off.
func NewNotificationMailerWithSendGrid(apiKey, from, siteURL string) *NotificationMailer {
	apiKey = strings.TrimSpace(apiKey)
	from = strings.TrimSpace(from)

	if apiKey == "" {
		log.Printf("[mail] WARN: SendGrid API key is empty. notification mail disabled.")
		return nil
	}
	if from == "" {
		log.Printf("[mail] WARN: MAIL_FROM is empty. notification mail disabled.")
		return nil
	}

	mailer := NewNotificationMailer(NewSendGridClient(apiKey, ""), from, siteURL)
	log.Printf("[mail] NotificationMailerWithSendGrid initialized. from=%s site=%s", from, siteURL)
	return mailer
}
