package service

import (
	"fmt"
	"strings"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

const (
	orderFooterRule = "----"
	orderFooterText = "This order was submitted from your website checkout. Please follow up with the customer for payment if needed."
)

// FormatOrderEmail renders an order as an email subject and plain-text body.
// The output depends only on the order.
func FormatOrderEmail(o models.Order) (subject, body string) {
	name := o.Name
	if name == "" {
		name = "(no name)"
	}
	subject = fmt.Sprintf("New Mail Order — %s — %s", name, o.ID)

	id := o.ID
	if id == "" {
		id = "(none)"
	}
	createdAt := o.CreatedAt
	if createdAt == "" {
		createdAt = "(unknown)"
	}

	lines := []string{
		"Order ID: " + id,
		"Date: " + createdAt,
		"",
		"Customer:",
		"  Name: " + o.Name,
		"  Email: " + o.Email,
		"  Phone: " + o.Phone,
		"  Address:",
	}
	for _, l := range splitLines(o.Address) {
		lines = append(lines, "    "+l)
	}

	lines = append(lines, "", "Items:")
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("  - %s  x %s  @ $%.2f   = $%.2f",
			it.Title, it.QuantityText, it.Price, it.Total()))
	}

	lines = append(lines, "", fmt.Sprintf("Subtotal: $%.2f", o.Subtotal), "")

	if o.Notes != "" {
		lines = append(lines, "Notes:")
		for _, l := range splitLines(o.Notes) {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}

	lines = append(lines, orderFooterRule, orderFooterText)
	return subject, strings.Join(lines, "\n")
}

// FormatContactEmail renders a contact message as an email subject and body.
func FormatContactEmail(m models.ContactMessage) (subject, body string) {
	subject = "New Contact Message — " + m.Name
	body = fmt.Sprintf("From: %s <%s>\n\nMessage:\n%s", m.Name, m.Email, m.Message)
	return subject, body
}
