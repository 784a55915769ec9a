package pricing

import (
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
)

// IsLive reports whether the promotion can be redeemed at all right now:
// active, inside its validity window (inclusive on both ends) and not
// exhausted. Scope is checked separately because it needs a product.
func IsLive(p *domain.Promotion, now time.Time) bool {
	if p == nil {
		return false
	}
	if !p.Active {
		return false
	}
	if now.Before(p.ValidFrom) || now.After(p.ValidTo) {
		return false
	}
	if p.MaxRedemptions != nil && p.CurrentRedemptions >= *p.MaxRedemptions {
		return false
	}
	return true
}

// IsApplicable reports whether the promotion applies to the given product at
// the given instant. Unknown scopes never match.
func IsApplicable(p *domain.Promotion, product *domain.Product, now time.Time) bool {
	if product == nil || !IsLive(p, now) {
		return false
	}
	switch p.Scope {
	case domain.ScopeEntireCart:
		return true
	case domain.ScopeProducts:
		return containsID(p.ProductIDs, product.ID)
	case domain.ScopeCategories:
		if product.CategoryID == "" {
			return false
		}
		return containsID(p.CategoryIDs, product.CategoryID)
	default:
		return false
	}
}

// FilterApplicable returns the promotions applicable to the product at the
// given instant. Callers must not rely on the order of the result.
func FilterApplicable(promotions []*domain.Promotion, product *domain.Product, now time.Time) []*domain.Promotion {
	var applicable []*domain.Promotion
	for _, p := range promotions {
		if IsApplicable(p, product, now) {
			applicable = append(applicable, p)
		}
	}
	return applicable
}

func containsID(ids []string, id string) bool {
	if id == "" {
		return false
	}
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
