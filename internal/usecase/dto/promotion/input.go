package promotion

import "time"

type CreatePromotionInput struct {
	MerchantID       string
	Kind             string
	Code             string
	ReductionPercent int
	ValidFrom        time.Time
	ValidTo          time.Time
	Scope            string
	ProductIDs       []string
	CategoryIDs      []string
	MinimumPurchase  int64
	MaxRedemptions   *int
	AutoDisplay      bool
}

type UpdatePromotionInput struct {
	ID               string
	Kind             string
	Code             string
	ReductionPercent int
	ValidFrom        time.Time
	ValidTo          time.Time
	Scope            string
	ProductIDs       []string
	CategoryIDs      []string
	MinimumPurchase  int64
	MaxRedemptions   *int
	AutoDisplay      bool
	Active           bool
}
