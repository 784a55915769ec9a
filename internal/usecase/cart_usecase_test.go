package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/craftlane/storefront-service/internal/cartstore"
	"github.com/craftlane/storefront-service/internal/domain"
	cartdto "github.com/craftlane/storefront-service/internal/usecase/dto/cart"
)

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) ListProductsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range f.products {
		if p.MerchantID == merchantID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePromotionRepo struct {
	promotions []*domain.Promotion
}

func (f *fakePromotionRepo) CreatePromotion(ctx context.Context, p *domain.Promotion) error {
	f.promotions = append(f.promotions, p)
	return nil
}

func (f *fakePromotionRepo) UpdatePromotion(ctx context.Context, p *domain.Promotion) error {
	for i, existing := range f.promotions {
		if existing.ID == p.ID {
			f.promotions[i] = p
		}
	}
	return nil
}

func (f *fakePromotionRepo) GetPromotionByID(ctx context.Context, id string) (*domain.Promotion, error) {
	for _, p := range f.promotions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePromotionRepo) GetPromotionByCode(ctx context.Context, merchantID, code string) (*domain.Promotion, error) {
	for _, p := range f.promotions {
		if p.MerchantID == merchantID && p.Kind == domain.KindCode && p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePromotionRepo) ListPromotions(ctx context.Context, merchantID string) ([]*domain.Promotion, error) {
	var out []*domain.Promotion
	for _, p := range f.promotions {
		if p.MerchantID == merchantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromotionRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, p := range f.promotions {
		if p.Active && p.ValidTo.Before(now) {
			p.Active = false
			n++
		}
	}
	return n, nil
}

func liveCartWidePromotion(merchantID string, percent int) *domain.Promotion {
	now := time.Now().UTC()
	return &domain.Promotion{
		ID:               "promo-live",
		MerchantID:       merchantID,
		Kind:             domain.KindProductDiscount,
		Scope:            domain.ScopeEntireCart,
		ReductionPercent: percent,
		ValidFrom:        now.Add(-time.Hour),
		ValidTo:          now.Add(time.Hour),
		Active:           true,
	}
}

func newCartUsecase(products *fakeProductRepo, promos *fakePromotionRepo) *DefaultCartUsecase {
	store := cartstore.New(nil, 500)
	return NewDefaultCartUsecase(store, promos, products, nil)
}

func TestAddProductToCart_CapturesDiscountedPrice(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", MerchantID: "merchant-a", Name: "Mug", Price: 1000},
	}}
	promos := &fakePromotionRepo{promotions: []*domain.Promotion{
		liveCartWidePromotion("merchant-a", 10),
	}}
	uc := newCartUsecase(products, promos)

	summary, err := uc.AddProductToCart(context.Background(), &cartdto.AddItemInput{
		ProductID:     "prod-1",
		MerchantID:    "merchant-a",
		MerchantLabel: "Merchant A",
		Quantity:      2,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(summary.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(summary.Lines))
	}
	if got := summary.Lines[0].UnitPrice; got != 900 {
		t.Errorf("expected discounted unit price 900, got %d", got)
	}
	if summary.Subtotal != 1800 {
		t.Errorf("expected subtotal 1800, got %d", summary.Subtotal)
	}
	if summary.Total != summary.Subtotal+summary.ShippingFee {
		t.Errorf("total %d != subtotal %d + shipping %d", summary.Total, summary.Subtotal, summary.ShippingFee)
	}
}

func TestAddProductToCart_NoPromotionsUsesBasePrice(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", MerchantID: "merchant-a", Name: "Mug", Price: 1000},
	}}
	uc := newCartUsecase(products, &fakePromotionRepo{})

	summary, err := uc.AddProductToCart(context.Background(), &cartdto.AddItemInput{
		ProductID:     "prod-1",
		MerchantID:    "merchant-a",
		MerchantLabel: "Merchant A",
		Quantity:      1,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := summary.Lines[0].UnitPrice; got != 1000 {
		t.Errorf("expected base price 1000, got %d", got)
	}
}

func TestAddProductToCart_UnknownProduct(t *testing.T) {
	uc := newCartUsecase(&fakeProductRepo{products: map[string]*domain.Product{}}, &fakePromotionRepo{})

	_, err := uc.AddProductToCart(context.Background(), &cartdto.AddItemInput{
		ProductID:  "ghost",
		MerchantID: "merchant-a",
		Quantity:   1,
	})
	if err != domain.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateAndRemoveThroughUsecase(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", MerchantID: "merchant-a", Name: "Mug", Price: 1000},
	}}
	uc := newCartUsecase(products, &fakePromotionRepo{})

	ctx := context.Background()
	uc.AddProductToCart(ctx, &cartdto.AddItemInput{ProductID: "prod-1", MerchantID: "merchant-a", MerchantLabel: "Merchant A", Quantity: 1})

	summary, err := uc.UpdateQuantity(ctx, &cartdto.UpdateQuantityInput{ProductID: "prod-1", MerchantID: "merchant-a", Quantity: 4})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if summary.ItemCount != 4 {
		t.Errorf("expected item count 4, got %d", summary.ItemCount)
	}

	summary, err = uc.RemoveItem(ctx, &cartdto.RemoveItemInput{ProductID: "prod-1", MerchantID: "merchant-a"})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(summary.Lines) != 0 {
		t.Errorf("expected empty partition after removal, got %d lines", len(summary.Lines))
	}
	if uc.Contains("prod-1", "merchant-a") {
		t.Error("removed product must not be contained")
	}
}
