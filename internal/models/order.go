package models

import (
	"bytes"
	"encoding/json"
)

// OrderRequest represents an incoming checkout submission.
// Only name, address and items are required; everything else is optional
// and defaulted when the order is resolved.
type OrderRequest struct {
	ID        Text               `json:"id"`
	CreatedAt Text               `json:"createdAt"`
	Name      Text               `json:"name"`
	Email     Text               `json:"email"`
	Phone     Text               `json:"phone"`
	Address   Text               `json:"address"`
	Items     OrderItems         `json:"items"`
	Subtotal  Number             `json:"subtotal"`
	Notes     Text               `json:"notes"`
	Message   Text               `json:"message"`
}

// OrderItemRequest represents a single submitted line item.
// Title wins over Name, and Qty wins over Quantity.
type OrderItemRequest struct {
	Title    Text   `json:"title"`
	Name     Text   `json:"name"`
	Qty      Number `json:"qty"`
	Quantity Number `json:"quantity"`
	Price    Number `json:"price"`
}

// OrderItems is the submitted items list.
// A value that is not an array of objects never fails decoding; it is kept
// as Malformed when it is non-empty, so it still counts as present.
type OrderItems struct {
	List      []OrderItemRequest
	Malformed bool
}

// UnmarshalJSON never fails; see OrderItems.
func (o *OrderItems) UnmarshalJSON(data []byte) error {
	*o = OrderItems{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		o.Malformed = !isEmptyJSON(data)
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		o.Malformed = true
		return nil
	}

	list := make([]OrderItemRequest, 0, len(elems))
	for _, elem := range elems {
		elem = bytes.TrimSpace(elem)
		var it OrderItemRequest
		if len(elem) == 0 || elem[0] != '{' || json.Unmarshal(elem, &it) != nil {
			o.Malformed = true
			return nil
		}
		list = append(list, it)
	}
	o.List = list
	return nil
}

// Present reports whether any items were submitted, well-formed or not.
func (o OrderItems) Present() bool {
	return len(o.List) > 0 || o.Malformed
}

// Order is a fully resolved order, ready to be formatted.
type Order struct {
	ID        string
	CreatedAt string
	Name      string
	Email     string
	Phone     string
	Address   string
	Items     []LineItem
	Subtotal  float64
	Notes     string
}

// LineItem is a resolved order line.
type LineItem struct {
	Title string
	// QuantityText is the quantity as the customer submitted it.
	QuantityText string
	// Quantity is the submitted quantity truncated to a whole number.
	Quantity int
	Price    float64
}

// Total returns the extended price of the line.
func (li LineItem) Total() float64 {
	return li.Price * float64(li.Quantity)
}
