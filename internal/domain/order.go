package domain

import (
	"context"
	"time"
)

// Order is the snapshot handed to the order pipeline at checkout. This
// service does not persist orders; it publishes them and clears the cart.
type Order struct {
	Number        string
	MerchantID    string
	MerchantLabel string
	Lines         []CartLine
	Subtotal      Money
	ShippingFee   Money
	Total         Money
	SubmittedAt   time.Time
}

type OrderEventPublisher interface {
	PublishOrderSubmitted(ctx context.Context, order *Order) error
}
