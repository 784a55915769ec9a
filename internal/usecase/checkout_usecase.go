package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/craftlane/storefront-service/internal/cartstore"
	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/metrics"
	"github.com/jaevor/go-nanoid"
)

type CheckoutUsecase interface {
	SubmitOrder(ctx context.Context, merchantID string) (*domain.Order, error)
}

type DefaultCheckoutUsecase struct {
	Store     *cartstore.Store
	Publisher domain.OrderEventPublisher
	Metrics   *metrics.StorefrontMetrics
}

func NewDefaultCheckoutUsecase(
	store *cartstore.Store,
	publisher domain.OrderEventPublisher,
	storefrontMetrics *metrics.StorefrontMetrics,
) *DefaultCheckoutUsecase {
	return &DefaultCheckoutUsecase{
		Store:     store,
		Publisher: publisher,
		Metrics:   storefrontMetrics,
	}
}

// SubmitOrder snapshots the merchant's cart partition, hands it to the order
// pipeline and clears the cart. The cart is only cleared after the publish
// succeeded; a failed publish leaves the cart untouched so the shopper can
// retry. Redemption counters are incremented downstream by the order
// pipeline, not here.
func (uc *DefaultCheckoutUsecase) SubmitOrder(ctx context.Context, merchantID string) (*domain.Order, error) {
	lines := uc.Store.LinesFor(merchantID)
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("failed to init order number generator: %w", err)
	}

	order := &domain.Order{
		Number:        idGenerator(),
		MerchantID:    merchantID,
		MerchantLabel: lines[0].MerchantLabel,
		Lines:         lines,
		Subtotal:      uc.Store.Subtotal(merchantID),
		ShippingFee:   uc.Store.ShippingFee(merchantID),
		Total:         uc.Store.Total(merchantID),
		SubmittedAt:   time.Now().UTC(),
	}

	if err := uc.Publisher.PublishOrderSubmitted(ctx, order); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordCheckoutError(merchantID, "publish_failed")
		}
		return nil, fmt.Errorf("failed to publish order: %w", err)
	}

	if err := uc.Store.Clear(); err != nil {
		if uc.Metrics != nil {
			uc.Metrics.RecordCheckoutError(merchantID, "clear_failed")
		}
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderSubmitted(merchantID, order.Total)
	}
	return order, nil
}
