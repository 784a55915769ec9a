package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/craftlane/storefront-service/internal/domain"
)

type CheckoutPublisher struct {
	writer *kafka.Writer
}

func NewCheckoutPublisher(brokers []string, topic string) *CheckoutPublisher {
	return &CheckoutPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderSubmitted emits the order snapshot keyed by merchant id, so
// every order of one merchant lands in the same partition.
func (k *CheckoutPublisher) PublishOrderSubmitted(ctx context.Context, order *domain.Order) error {
	event := OrderSubmittedEvent{
		OrderNumber:   order.Number,
		MerchantID:    order.MerchantID,
		MerchantLabel: order.MerchantLabel,
		Lines:         make([]OrderLineEvent, 0, len(order.Lines)),
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		SubmittedAt:   order.SubmittedAt,
	}
	for _, line := range order.Lines {
		event.Lines = append(event.Lines, OrderLineEvent{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.MerchantID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *CheckoutPublisher) Close() error {
	return k.writer.Close()
}
