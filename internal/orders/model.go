package orders

import (
	"time"

	"github.com/sportshoplabs/sportshop-backend/pkg/enums"
	"github.com/sportshoplabs/sportshop-backend/pkg/types"
)

// Item is one frozen line within an order. Items are copied by value at
// creation; later cart mutations never reach a placed order.
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl"`
}

// Order is the immutable snapshot of a checkout. Only Status and UpdatedAt
// change after creation.
type Order struct {
	ID              string            `json:"id"`
	SubjectID       string            `json:"userId"`
	Items           []Item            `json:"items"`
	Status          enums.OrderStatus `json:"status"`
	Total           float64           `json:"total"`
	ShippingAddress *types.Address    `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy so repository callers can never alias stored
// item slices.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	out := *o
	out.Items = make([]Item, len(o.Items))
	copy(out.Items, o.Items)
	if o.ShippingAddress != nil {
		addr := *o.ShippingAddress
		out.ShippingAddress = &addr
	}
	return &out
}
