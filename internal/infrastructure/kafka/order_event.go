package kafka

import "time"

type OrderSubmittedEvent struct {
	OrderNumber   string           `json:"order_number"`
	MerchantID    string           `json:"merchant_id"`
	MerchantLabel string           `json:"merchant_label"`
	Lines         []OrderLineEvent `json:"lines"`
	Subtotal      int64            `json:"subtotal"`
	ShippingFee   int64            `json:"shipping_fee"`
	Total         int64            `json:"total"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

type OrderLineEvent struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}
