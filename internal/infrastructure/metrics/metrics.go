package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StorefrontMetrics covers promotion evaluation, cart activity and checkout.
type StorefrontMetrics struct {
	PriceResolutionsTotal prometheus.CounterVec
	DiscountsAppliedTotal prometheus.CounterVec
	DiscountAmountTotal   prometheus.CounterVec

	CartMutationsTotal prometheus.CounterVec
	CartItemsCount     prometheus.GaugeVec

	OrdersSubmittedTotal       prometheus.CounterVec
	OrdersSubmittedAmountTotal prometheus.CounterVec
	CheckoutErrorsTotal        prometheus.CounterVec
}

func NewStorefrontMetrics() *StorefrontMetrics {
	return &StorefrontMetrics{
		PriceResolutionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_resolutions_total",
				Help: "Number of storefront price resolutions",
			},
			[]string{"merchant_id"},
		),

		DiscountsAppliedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discounts_applied_total",
				Help: "Number of price resolutions where a promotion applied",
			},
			[]string{"merchant_id", "kind"},
		),

		DiscountAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discount_amount_total",
				Help: "Total reduction granted, in minor currency units",
			},
			[]string{"merchant_id"},
		),

		CartMutationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_mutations_total",
				Help: "Cart mutations by operation",
			},
			[]string{"merchant_id", "op"},
		),

		CartItemsCount: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cart_items_count",
				Help: "Current number of items in the cart partition",
			},
			[]string{"merchant_id"},
		),

		OrdersSubmittedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_submitted_total",
				Help: "Orders handed to the order pipeline at checkout",
			},
			[]string{"merchant_id"},
		),

		OrdersSubmittedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_submitted_amount_total",
				Help: "Total value of submitted orders, in minor currency units",
			},
			[]string{"merchant_id"},
		),

		CheckoutErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_errors_total",
				Help: "Checkout failures by type",
			},
			[]string{"merchant_id", "error_type"},
		),
	}
}

func (m *StorefrontMetrics) RecordPriceResolution(merchantID string) {
	m.PriceResolutionsTotal.WithLabelValues(merchantID).Inc()
}

func (m *StorefrontMetrics) RecordDiscountApplied(merchantID, kind string, amount int64) {
	m.DiscountsAppliedTotal.WithLabelValues(merchantID, kind).Inc()
	m.DiscountAmountTotal.WithLabelValues(merchantID).Add(float64(amount))
}

func (m *StorefrontMetrics) RecordCartMutation(merchantID, op string, itemCount int) {
	m.CartMutationsTotal.WithLabelValues(merchantID, op).Inc()
	m.CartItemsCount.WithLabelValues(merchantID).Set(float64(itemCount))
}

func (m *StorefrontMetrics) RecordOrderSubmitted(merchantID string, total int64) {
	m.OrdersSubmittedTotal.WithLabelValues(merchantID).Inc()
	m.OrdersSubmittedAmountTotal.WithLabelValues(merchantID).Add(float64(total))
}

func (m *StorefrontMetrics) RecordCheckoutError(merchantID, errorType string) {
	m.CheckoutErrorsTotal.WithLabelValues(merchantID, errorType).Inc()
}
