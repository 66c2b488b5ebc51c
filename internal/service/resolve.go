package service

import (
	"math"
	"unicode/utf8"

	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

const (
	defaultItemTitle = "(item)"

	// maxQuantity bounds the quantity used for line totals.
	maxQuantity = math.MaxInt32
)

// ResolveOrder turns a submitted order into a closed, fully defaulted Order.
// It never fails: presence of the required fields is checked by the caller.
func ResolveOrder(req models.OrderRequest) models.Order {
	notes := req.Notes.String()
	if notes == "" {
		notes = req.Message.String()
	}

	items := make([]models.LineItem, 0, len(req.Items.List))
	for _, it := range req.Items.List {
		items = append(items, resolveItem(it))
	}

	return models.Order{
		ID:        req.ID.String(),
		CreatedAt: req.CreatedAt.String(),
		Name:      req.Name.String(),
		Email:     req.Email.String(),
		Phone:     req.Phone.String(),
		Address:   req.Address.String(),
		Items:     items,
		Subtotal:  req.Subtotal.Float(0),
		Notes:     notes,
	}
}

func resolveItem(it models.OrderItemRequest) models.LineItem {
	title := it.Title.String()
	if title == "" {
		title = it.Name.String()
	}
	if title == "" {
		title = defaultItemTitle
	}

	qty := it.Qty
	if !qty.Valid {
		qty = it.Quantity
	}
	quantityText, quantity := "1", 1
	if qty.Valid {
		quantityText = qty.Raw
		quantity = int(math.Trunc(math.Max(-maxQuantity, math.Min(qty.Value, maxQuantity))))
	}

	return models.LineItem{
		Title:        title,
		QuantityText: quantityText,
		Quantity:     quantity,
		Price:        it.Price.Float(0),
	}
}

// ResolveContact copies a contact submission into a ContactMessage.
func ResolveContact(req models.ContactRequest) models.ContactMessage {
	return models.ContactMessage{
		Name:    req.Name.String(),
		Email:   req.Email.String(),
		Message: req.Message.String(),
	}
}

// hasOrderFields reports whether name, address and at least one item are present.
func hasOrderFields(req models.OrderRequest) bool {
	return req.Name != "" && req.Address != "" && req.Items.Present()
}

// hasContactFields reports whether name, email and message are all present.
func hasContactFields(req models.ContactRequest) bool {
	return req.Name != "" && req.Email != "" && req.Message != ""
}

// splitLines splits text at line boundaries: \n, \r\n, \r, \v, \f,
// \x1c-\x1e, U+0085, U+2028 and U+2029. A trailing line break does not
// produce an empty final line, and empty text yields no lines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
