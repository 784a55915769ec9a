package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
)

func TestResolvePrice(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", MerchantID: "merchant-a", Name: "Mug", Price: 1000},
	}}
	promos := &fakePromotionRepo{promotions: []*domain.Promotion{
		liveCartWidePromotion("merchant-a", 25),
	}}
	uc := NewDefaultPricingUsecase(promos, products, nil)

	resolved, err := uc.ResolvePrice(context.Background(), "merchant-a", "prod-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !resolved.Discounted() {
		t.Fatal("expected a discount to apply")
	}
	if resolved.BasePrice != 1000 || resolved.FinalPrice != 750 {
		t.Errorf("expected 1000 -> 750, got %d -> %d", resolved.BasePrice, resolved.FinalPrice)
	}
	if resolved.PromotionID != "promo-live" {
		t.Errorf("expected the live promotion to be reported, got %q", resolved.PromotionID)
	}
}

func TestResolvePrice_NoPromotions(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", MerchantID: "merchant-a", Name: "Mug", Price: 1000},
	}}
	uc := NewDefaultPricingUsecase(&fakePromotionRepo{}, products, nil)

	resolved, err := uc.ResolvePrice(context.Background(), "merchant-a", "prod-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Discounted() {
		t.Error("no promotions: nothing must apply")
	}
	if resolved.FinalPrice != resolved.BasePrice {
		t.Errorf("expected base price to stand, got %d", resolved.FinalPrice)
	}
}

func TestResolvePrice_UnknownProduct(t *testing.T) {
	uc := NewDefaultPricingUsecase(&fakePromotionRepo{}, &fakeProductRepo{products: map[string]*domain.Product{}}, nil)
	if _, err := uc.ResolvePrice(context.Background(), "merchant-a", "ghost"); err != domain.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDisplayPromotions(t *testing.T) {
	now := time.Now().UTC()
	display := liveCartWidePromotion("merchant-a", 10)
	display.ID = "promo-display"
	display.AutoDisplay = true

	hidden := liveCartWidePromotion("merchant-a", 15)
	hidden.ID = "promo-hidden"

	expired := liveCartWidePromotion("merchant-a", 20)
	expired.ID = "promo-expired"
	expired.AutoDisplay = true
	expired.ValidTo = now.Add(-time.Minute)

	uc := NewDefaultPricingUsecase(&fakePromotionRepo{
		promotions: []*domain.Promotion{display, hidden, expired},
	}, &fakeProductRepo{}, nil)

	got, err := uc.DisplayPromotions(context.Background(), "merchant-a")
	if err != nil {
		t.Fatalf("display: %v", err)
	}
	if len(got) != 1 || got[0].ID != "promo-display" {
		t.Errorf("expected only the live auto-display promotion, got %+v", got)
	}
}

func TestValidateCode(t *testing.T) {
	code := liveCartWidePromotion("merchant-a", 15)
	code.ID = "promo-code"
	code.Kind = domain.KindCode
	code.Code = "SUMMER15"

	uc := NewDefaultPricingUsecase(&fakePromotionRepo{
		promotions: []*domain.Promotion{code},
	}, &fakeProductRepo{}, nil)
	ctx := context.Background()

	got, err := uc.ValidateCode(ctx, "merchant-a", "SUMMER15")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got.ID != "promo-code" {
		t.Errorf("expected the code promotion, got %+v", got)
	}

	if _, err := uc.ValidateCode(ctx, "merchant-a", "NOPE"); err != domain.ErrPromotionNotFound {
		t.Errorf("unknown code: expected ErrPromotionNotFound, got %v", err)
	}

	code.Active = false
	if _, err := uc.ValidateCode(ctx, "merchant-a", "SUMMER15"); err != domain.ErrPromotionNotFound {
		t.Errorf("inactive code promotion must not validate, got %v", err)
	}
}
