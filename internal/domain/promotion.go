package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PromotionKind string

const (
	KindCode            PromotionKind = "CODE"
	KindProductDiscount PromotionKind = "PRODUCT_DISCOUNT"
	KindLimitedOffer    PromotionKind = "LIMITED_OFFER"
)

type PromotionScope string

const (
	ScopeEntireCart PromotionScope = "ENTIRE_CART"
	ScopeCategories PromotionScope = "CATEGORIES"
	ScopeProducts   PromotionScope = "PRODUCTS"
)

type Promotion struct {
	ID                 string
	MerchantID         string
	Kind               PromotionKind
	Code               string // set only when Kind == KindCode
	ReductionPercent   int    // 0..100
	ValidFrom          time.Time
	ValidTo            time.Time
	Active             bool
	Scope              PromotionScope
	ProductIDs         []string
	CategoryIDs        []string
	MinimumPurchase    Money
	MaxRedemptions     *int // nil means unlimited
	CurrentRedemptions int
	AutoDisplay        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ReducedPrice returns the price after applying this promotion's reduction.
// Every kind reduces by percentage; LIMITED_OFFER is no exception. Rounding
// is half-up to a whole minor unit and happens nowhere else in the codebase.
// An unknown kind leaves the base price untouched.
func (p *Promotion) ReducedPrice(base Money) Money {
	switch p.Kind {
	case KindCode, KindProductDiscount, KindLimitedOffer:
		pct := p.ReductionPercent
		if pct <= 0 {
			return base
		}
		if pct >= 100 {
			return 0
		}
		reduced := decimal.NewFromInt(base).
			Mul(decimal.NewFromInt(int64(100 - pct))).
			Div(decimal.NewFromInt(100)).
			Round(0)
		return reduced.IntPart()
	default:
		return base
	}
}

type PromotionRepository interface {
	CreatePromotion(ctx context.Context, promotion *Promotion) error
	UpdatePromotion(ctx context.Context, promotion *Promotion) error
	GetPromotionByID(ctx context.Context, id string) (*Promotion, error)
	GetPromotionByCode(ctx context.Context, merchantID, code string) (*Promotion, error)
	ListPromotions(ctx context.Context, merchantID string) ([]*Promotion, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
