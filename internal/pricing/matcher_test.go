package pricing

import (
	"testing"
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
)

var (
	windowStart = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	midWindow   = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
)

func cartWide(percent int) *domain.Promotion {
	return &domain.Promotion{
		ID:               "promo-cart",
		Kind:             domain.KindProductDiscount,
		Scope:            domain.ScopeEntireCart,
		ReductionPercent: percent,
		ValidFrom:        windowStart,
		ValidTo:          windowEnd,
		Active:           true,
	}
}

func testProduct() *domain.Product {
	return &domain.Product{ID: "prod-1", Name: "Mug", Price: 1000, CategoryID: "cat-1"}
}

func TestIsApplicable_Window(t *testing.T) {
	p := cartWide(10)
	product := testProduct()

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"inside window", midWindow, true},
		{"exactly validFrom", windowStart, true},
		{"exactly validTo", windowEnd, true},
		{"one second before validFrom", windowStart.Add(-time.Second), false},
		{"one second after validTo", windowEnd.Add(time.Second), false},
	}
	for _, tc := range cases {
		if got := IsApplicable(p, product, tc.now); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsApplicable_InactiveKillSwitch(t *testing.T) {
	p := cartWide(10)
	p.Active = false
	if IsApplicable(p, testProduct(), midWindow) {
		t.Error("inactive promotion must not apply even inside its window")
	}
}

func TestIsApplicable_RedemptionCap(t *testing.T) {
	cap := 5
	p := cartWide(10)
	p.MaxRedemptions = &cap

	p.CurrentRedemptions = 4
	if !IsApplicable(p, testProduct(), midWindow) {
		t.Error("current == max-1 must still be applicable")
	}

	p.CurrentRedemptions = 5
	if IsApplicable(p, testProduct(), midWindow) {
		t.Error("current == max must not be applicable")
	}

	p.MaxRedemptions = nil
	p.CurrentRedemptions = 100000
	if !IsApplicable(p, testProduct(), midWindow) {
		t.Error("unset cap means unlimited redemptions")
	}
}

func TestIsApplicable_Scopes(t *testing.T) {
	product := testProduct()

	byProduct := cartWide(10)
	byProduct.Scope = domain.ScopeProducts
	byProduct.ProductIDs = []string{"prod-9", "prod-1"}
	if !IsApplicable(byProduct, product, midWindow) {
		t.Error("PRODUCTS scope must match a listed product")
	}
	byProduct.ProductIDs = []string{"prod-9"}
	if IsApplicable(byProduct, product, midWindow) {
		t.Error("PRODUCTS scope must not match an unlisted product")
	}
	byProduct.ProductIDs = nil
	if IsApplicable(byProduct, product, midWindow) {
		t.Error("PRODUCTS scope with no product ids matches nothing")
	}

	byCategory := cartWide(10)
	byCategory.Scope = domain.ScopeCategories
	byCategory.CategoryIDs = []string{"cat-1"}
	if !IsApplicable(byCategory, product, midWindow) {
		t.Error("CATEGORIES scope must match the product's category")
	}
	uncategorized := testProduct()
	uncategorized.CategoryID = ""
	if IsApplicable(byCategory, uncategorized, midWindow) {
		t.Error("a product without a category never matches CATEGORIES scope")
	}

	unknown := cartWide(10)
	unknown.Scope = domain.PromotionScope("REGIONS")
	if IsApplicable(unknown, product, midWindow) {
		t.Error("unknown scope must fail closed")
	}
}

func TestFilterApplicable(t *testing.T) {
	product := testProduct()
	expired := cartWide(20)
	expired.ValidTo = windowStart.Add(-time.Hour)
	expired.ValidFrom = windowStart.Add(-48 * time.Hour)

	got := FilterApplicable([]*domain.Promotion{expired, cartWide(10), nil}, product, midWindow)
	if len(got) != 1 || got[0].ReductionPercent != 10 {
		t.Errorf("expected only the live cart-wide promotion, got %d entries", len(got))
	}

	if got := FilterApplicable(nil, product, midWindow); len(got) != 0 {
		t.Errorf("nil promotion list: expected empty result, got %d", len(got))
	}
}
