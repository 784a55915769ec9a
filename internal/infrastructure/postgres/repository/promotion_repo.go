package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/postgres/models"
)

type DefaultPromotionRepository struct {
	db *gorm.DB
}

func NewDefaultPromotionRepository(db *gorm.DB) *DefaultPromotionRepository {
	return &DefaultPromotionRepository{db: db}
}

func (r *DefaultPromotionRepository) CreatePromotion(ctx context.Context, promotion *domain.Promotion) error {
	return r.db.WithContext(ctx).Create(r.toModel(promotion)).Error
}

func (r *DefaultPromotionRepository) UpdatePromotion(ctx context.Context, promotion *domain.Promotion) error {
	return r.db.WithContext(ctx).Save(r.toModel(promotion)).Error
}

func (r *DefaultPromotionRepository) GetPromotionByID(ctx context.Context, id string) (*domain.Promotion, error) {
	var model models.PromotionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.toDomain(&model), nil
}

func (r *DefaultPromotionRepository) GetPromotionByCode(ctx context.Context, merchantID, code string) (*domain.Promotion, error) {
	var model models.PromotionModel
	err := r.db.WithContext(ctx).
		First(&model, "merchant_id = ? AND kind = ? AND code = ?", merchantID, string(domain.KindCode), code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.toDomain(&model), nil
}

func (r *DefaultPromotionRepository) ListPromotions(ctx context.Context, merchantID string) ([]*domain.Promotion, error) {
	var promotionModels []*models.PromotionModel

	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).Find(&promotionModels).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(promotionModels), nil
}

// DeactivateExpired flips the active flag off for promotions whose window has
// fully elapsed. Returns the number of promotions touched.
func (r *DefaultPromotionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.PromotionModel{}).
		Where("active = ? AND valid_to < ?", true, now).
		Update("active", false)
	return res.RowsAffected, res.Error
}

func (r *DefaultPromotionRepository) toModel(promotion *domain.Promotion) *models.PromotionModel {
	return &models.PromotionModel{
		ID:                 promotion.ID,
		MerchantID:         promotion.MerchantID,
		Kind:               string(promotion.Kind),
		Code:               promotion.Code,
		ReductionPercent:   promotion.ReductionPercent,
		ValidFrom:          promotion.ValidFrom,
		ValidTo:            promotion.ValidTo,
		Active:             promotion.Active,
		Scope:              string(promotion.Scope),
		ProductIDs:         promotion.ProductIDs,
		CategoryIDs:        promotion.CategoryIDs,
		MinimumPurchase:    promotion.MinimumPurchase,
		MaxRedemptions:     promotion.MaxRedemptions,
		CurrentRedemptions: promotion.CurrentRedemptions,
		AutoDisplay:        promotion.AutoDisplay,
		CreatedAt:          promotion.CreatedAt,
		UpdatedAt:          promotion.UpdatedAt,
	}
}

func (r *DefaultPromotionRepository) toDomain(model *models.PromotionModel) *domain.Promotion {
	return &domain.Promotion{
		ID:                 model.ID,
		MerchantID:         model.MerchantID,
		Kind:               domain.PromotionKind(model.Kind),
		Code:               model.Code,
		ReductionPercent:   model.ReductionPercent,
		ValidFrom:          model.ValidFrom,
		ValidTo:            model.ValidTo,
		Active:             model.Active,
		Scope:              domain.PromotionScope(model.Scope),
		ProductIDs:         model.ProductIDs,
		CategoryIDs:        model.CategoryIDs,
		MinimumPurchase:    model.MinimumPurchase,
		MaxRedemptions:     model.MaxRedemptions,
		CurrentRedemptions: model.CurrentRedemptions,
		AutoDisplay:        model.AutoDisplay,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func (r *DefaultPromotionRepository) toDomainList(promotionModels []*models.PromotionModel) []*domain.Promotion {
	promotions := make([]*domain.Promotion, len(promotionModels))
	for i, model := range promotionModels {
		promotions[i] = r.toDomain(model)
	}
	return promotions
}
