package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"lovedktech/internal/domain/entities"
)

// Outbound contact channels: the site never sends mail or messages itself,
// it constructs links the client opens in its own mail/chat app.

// MailtoLink builds the contact-form mailto URL: subject names the sender,
// body carries name, reply address and message.
func MailtoLink(contactEmail, name, email, message string) string {
	subject := fmt.Sprintf("New Contact from %s", name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", name, email, message)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		contactEmail, url.QueryEscape(subject), url.QueryEscape(body))
}

// WhatsAppPaymentLink builds the manual payment follow-up link with a
// pre-filled order summary, pointing at the fixed business number.
func WhatsAppPaymentLink(phone string, o entities.Order, priceDisplay, fullName string) string {
	msg := strings.Join([]string{
		"New Order:",
		fmt.Sprintf("Service: %s", o.ServiceTitle),
		fmt.Sprintf("Price: %s", priceDisplay),
		fmt.Sprintf("Client: %s (%s)", fullName, o.OwnerEmail),
		fmt.Sprintf("Phone: %s", o.Phone),
		fmt.Sprintf("Notes: %s", o.Notes),
		"",
		"I would like to proceed with payment.",
	}, "\n")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(msg))
}
