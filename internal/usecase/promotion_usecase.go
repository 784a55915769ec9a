package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/craftlane/storefront-service/internal/domain"
	promodto "github.com/craftlane/storefront-service/internal/usecase/dto/promotion"
	"github.com/google/uuid"
)

type PromotionUsecase interface {
	CreatePromotion(ctx context.Context, input *promodto.CreatePromotionInput) (*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, input *promodto.UpdatePromotionInput) (*domain.Promotion, error)
	DeactivatePromotion(ctx context.Context, id string) error
	GetPromotionByID(ctx context.Context, id string) (*domain.Promotion, error)
	ListPromotionsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Promotion, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type DefaultPromotionUsecase struct {
	PromotionRepo domain.PromotionRepository
}

func NewDefaultPromotionUsecase(promotionRepo domain.PromotionRepository) *DefaultPromotionUsecase {
	return &DefaultPromotionUsecase{
		PromotionRepo: promotionRepo,
	}
}

func (uc *DefaultPromotionUsecase) CreatePromotion(ctx context.Context, input *promodto.CreatePromotionInput) (*domain.Promotion, error) {
	if input.MerchantID == "" {
		return nil, fmt.Errorf("merchant_id is required")
	}
	kind := domain.PromotionKind(input.Kind)
	scope := domain.PromotionScope(input.Scope)
	if err := validatePromotionFields(kind, scope, input.Code, input.ReductionPercent, input.ValidFrom, input.ValidTo); err != nil {
		return nil, err
	}

	promotion := &domain.Promotion{
		ID:               uuid.New().String(),
		MerchantID:       input.MerchantID,
		Kind:             kind,
		Code:             input.Code,
		ReductionPercent: input.ReductionPercent,
		ValidFrom:        input.ValidFrom,
		ValidTo:          input.ValidTo,
		Active:           true,
		Scope:            scope,
		ProductIDs:       input.ProductIDs,
		CategoryIDs:      input.CategoryIDs,
		MinimumPurchase:  input.MinimumPurchase,
		MaxRedemptions:   input.MaxRedemptions,
		AutoDisplay:      input.AutoDisplay,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := uc.PromotionRepo.CreatePromotion(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	return promotion, nil
}

func (uc *DefaultPromotionUsecase) UpdatePromotion(ctx context.Context, input *promodto.UpdatePromotionInput) (*domain.Promotion, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("promotion id is required")
	}

	promotion, err := uc.PromotionRepo.GetPromotionByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotion: %w", err)
	}
	if promotion == nil {
		return nil, domain.ErrPromotionNotFound
	}

	kind := domain.PromotionKind(input.Kind)
	scope := domain.PromotionScope(input.Scope)
	if err := validatePromotionFields(kind, scope, input.Code, input.ReductionPercent, input.ValidFrom, input.ValidTo); err != nil {
		return nil, err
	}

	promotion.Kind = kind
	promotion.Code = input.Code
	promotion.ReductionPercent = input.ReductionPercent
	promotion.ValidFrom = input.ValidFrom
	promotion.ValidTo = input.ValidTo
	promotion.Scope = scope
	promotion.ProductIDs = input.ProductIDs
	promotion.CategoryIDs = input.CategoryIDs
	promotion.MinimumPurchase = input.MinimumPurchase
	promotion.MaxRedemptions = input.MaxRedemptions
	promotion.AutoDisplay = input.AutoDisplay
	promotion.Active = input.Active
	promotion.UpdatedAt = time.Now()

	if err := uc.PromotionRepo.UpdatePromotion(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	return promotion, nil
}

// DeactivatePromotion is the soft kill-switch. Promotions are never hard
// deleted while historical orders may reference them.
func (uc *DefaultPromotionUsecase) DeactivatePromotion(ctx context.Context, id string) error {
	promotion, err := uc.PromotionRepo.GetPromotionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load promotion: %w", err)
	}
	if promotion == nil {
		return domain.ErrPromotionNotFound
	}
	if !promotion.Active {
		return nil
	}

	promotion.Active = false
	promotion.UpdatedAt = time.Now()

	if err := uc.PromotionRepo.UpdatePromotion(ctx, promotion); err != nil {
		return fmt.Errorf("failed to deactivate promotion: %w", err)
	}
	return nil
}

func (uc *DefaultPromotionUsecase) GetPromotionByID(ctx context.Context, id string) (*domain.Promotion, error) {
	promotion, err := uc.PromotionRepo.GetPromotionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load promotion: %w", err)
	}
	if promotion == nil {
		return nil, domain.ErrPromotionNotFound
	}
	return promotion, nil
}

func (uc *DefaultPromotionUsecase) ListPromotionsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Promotion, error) {
	if merchantID == "" {
		return nil, fmt.Errorf("merchant_id is required")
	}
	return uc.PromotionRepo.ListPromotions(ctx, merchantID)
}

func (uc *DefaultPromotionUsecase) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	return uc.PromotionRepo.DeactivateExpired(ctx, now)
}

func validatePromotionFields(kind domain.PromotionKind, scope domain.PromotionScope, code string, percent int, from, to time.Time) error {
	switch kind {
	case domain.KindCode, domain.KindProductDiscount, domain.KindLimitedOffer:
	default:
		return domain.ErrInvalidKind
	}
	switch scope {
	case domain.ScopeEntireCart, domain.ScopeCategories, domain.ScopeProducts:
	default:
		return domain.ErrInvalidScope
	}
	if kind == domain.KindCode && code == "" {
		return domain.ErrCodeRequired
	}
	if percent < 0 || percent > 100 {
		return domain.ErrInvalidReduction
	}
	if from.After(to) {
		return domain.ErrInvalidWindow
	}
	return nil
}
