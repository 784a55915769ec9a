package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/postgres/models"
)

type DefaultProductRepository struct {
	db *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{db: db}
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return r.toDomain(&model), nil
}

func (r *DefaultProductRepository) ListProductsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Product, error) {
	var productModels []*models.ProductModel

	if err := r.db.WithContext(ctx).Where("merchant_id = ?", merchantID).Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(productModels))
	for i, model := range productModels {
		products[i] = r.toDomain(model)
	}
	return products, nil
}

func (r *DefaultProductRepository) toDomain(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		MerchantID:  model.MerchantID,
		Name:        model.Name,
		Price:       model.Price,
		CategoryID:  model.CategoryID,
		ImageURL:    model.ImageURL,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
