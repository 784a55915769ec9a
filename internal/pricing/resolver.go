package pricing

import (
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
)

// BestPromotion selects the applicable promotion with the largest reduction
// percent, or nil when none applies. Ties keep the first promotion in input
// order that reached the maximum, so repeated calls over the same input are
// stable.
func BestPromotion(product *domain.Product, promotions []*domain.Promotion, now time.Time) *domain.Promotion {
	var best *domain.Promotion
	for _, p := range promotions {
		if !IsApplicable(p, product, now) {
			continue
		}
		if best == nil || p.ReductionPercent > best.ReductionPercent {
			best = p
		}
	}
	return best
}

// DiscountedPrice computes the discounted unit price for the product. The
// second return value is false when no promotion applies and the base price
// stands. It never mutates redemption counters; incrementing usage belongs to
// the order pipeline.
func DiscountedPrice(product *domain.Product, promotions []*domain.Promotion, now time.Time) (domain.Money, bool) {
	best := BestPromotion(product, promotions, now)
	if best == nil {
		return 0, false
	}
	return best.ReducedPrice(product.Price), true
}
