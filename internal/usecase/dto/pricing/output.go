package pricing

import "github.com/craftlane/storefront-service/internal/domain"

// ResolvedPrice is the storefront price of one product at one instant.
// PromotionID is empty when no promotion applied and FinalPrice equals
// BasePrice.
type ResolvedPrice struct {
	ProductID        string
	MerchantID       string
	BasePrice        domain.Money
	FinalPrice       domain.Money
	ReductionPercent int
	PromotionID      string
	PromotionKind    string
	ResolvedAtUnix   int64
}

func (r *ResolvedPrice) Discounted() bool {
	return r.PromotionID != ""
}
