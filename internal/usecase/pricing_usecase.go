package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/metrics"
	"github.com/craftlane/storefront-service/internal/pricing"
	pricingdto "github.com/craftlane/storefront-service/internal/usecase/dto/pricing"
)

type PricingUsecase interface {
	ResolvePrice(ctx context.Context, merchantID, productID string) (*pricingdto.ResolvedPrice, error)
	ApplicablePromotions(ctx context.Context, merchantID, productID string) ([]*domain.Promotion, error)
	DisplayPromotions(ctx context.Context, merchantID string) ([]*domain.Promotion, error)
	ValidateCode(ctx context.Context, merchantID, code string) (*domain.Promotion, error)
}

type DefaultPricingUsecase struct {
	PromotionRepo domain.PromotionRepository
	ProductRepo   domain.ProductRepository
	Metrics       *metrics.StorefrontMetrics
}

func NewDefaultPricingUsecase(
	promotionRepo domain.PromotionRepository,
	productRepo domain.ProductRepository,
	storefrontMetrics *metrics.StorefrontMetrics,
) *DefaultPricingUsecase {
	return &DefaultPricingUsecase{
		PromotionRepo: promotionRepo,
		ProductRepo:   productRepo,
		Metrics:       storefrontMetrics,
	}
}

// ResolvePrice loads the product and the merchant's promotions and resolves
// the price the storefront should charge right now. "Now" is captured once
// so the window checks and the response timestamp agree.
func (uc *DefaultPricingUsecase) ResolvePrice(ctx context.Context, merchantID, productID string) (*pricingdto.ResolvedPrice, error) {
	product, promotions, err := uc.load(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resolved := &pricingdto.ResolvedPrice{
		ProductID:      product.ID,
		MerchantID:     merchantID,
		BasePrice:      product.Price,
		FinalPrice:     product.Price,
		ResolvedAtUnix: now.Unix(),
	}

	if best := pricing.BestPromotion(product, promotions, now); best != nil {
		resolved.FinalPrice = best.ReducedPrice(product.Price)
		resolved.ReductionPercent = best.ReductionPercent
		resolved.PromotionID = best.ID
		resolved.PromotionKind = string(best.Kind)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPriceResolution(merchantID)
		if resolved.Discounted() {
			uc.Metrics.RecordDiscountApplied(merchantID, resolved.PromotionKind, resolved.BasePrice-resolved.FinalPrice)
		}
	}

	return resolved, nil
}

func (uc *DefaultPricingUsecase) ApplicablePromotions(ctx context.Context, merchantID, productID string) ([]*domain.Promotion, error) {
	product, promotions, err := uc.load(ctx, merchantID, productID)
	if err != nil {
		return nil, err
	}
	return pricing.FilterApplicable(promotions, product, time.Now().UTC()), nil
}

// DisplayPromotions returns the merchant's currently redeemable promotions
// flagged for storefront display (banners, product badges).
func (uc *DefaultPricingUsecase) DisplayPromotions(ctx context.Context, merchantID string) ([]*domain.Promotion, error) {
	promotions, err := uc.PromotionRepo.ListPromotions(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	now := time.Now().UTC()
	var display []*domain.Promotion
	for _, p := range promotions {
		if p.AutoDisplay && pricing.IsLive(p, now) {
			display = append(display, p)
		}
	}
	return display, nil
}

// ValidateCode resolves a redemption code to its promotion when the
// promotion is currently redeemable. Scope is checked later, against the
// product or cart the shopper applies the code to.
func (uc *DefaultPricingUsecase) ValidateCode(ctx context.Context, merchantID, code string) (*domain.Promotion, error) {
	if code == "" {
		return nil, domain.ErrPromotionNotFound
	}

	promotion, err := uc.PromotionRepo.GetPromotionByCode(ctx, merchantID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up code: %w", err)
	}
	if promotion == nil || !pricing.IsLive(promotion, time.Now().UTC()) {
		return nil, domain.ErrPromotionNotFound
	}
	return promotion, nil
}

func (uc *DefaultPricingUsecase) load(ctx context.Context, merchantID, productID string) (*domain.Product, []*domain.Promotion, error) {
	product, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, nil, domain.ErrProductNotFound
	}

	promotions, err := uc.PromotionRepo.ListPromotions(ctx, merchantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return product, promotions, nil
}
