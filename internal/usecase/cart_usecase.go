package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/craftlane/storefront-service/internal/cartstore"
	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/metrics"
	"github.com/craftlane/storefront-service/internal/pricing"
	cartdto "github.com/craftlane/storefront-service/internal/usecase/dto/cart"
)

type CartUsecase interface {
	AddProductToCart(ctx context.Context, input *cartdto.AddItemInput) (*cartdto.CartSummary, error)
	UpdateQuantity(ctx context.Context, input *cartdto.UpdateQuantityInput) (*cartdto.CartSummary, error)
	RemoveItem(ctx context.Context, input *cartdto.RemoveItemInput) (*cartdto.CartSummary, error)
	GetCart(ctx context.Context, merchantID string) (*cartdto.CartSummary, error)
	Contains(productID, merchantID string) bool
}

type DefaultCartUsecase struct {
	Store         *cartstore.Store
	PromotionRepo domain.PromotionRepository
	ProductRepo   domain.ProductRepository
	Metrics       *metrics.StorefrontMetrics
}

func NewDefaultCartUsecase(
	store *cartstore.Store,
	promotionRepo domain.PromotionRepository,
	productRepo domain.ProductRepository,
	storefrontMetrics *metrics.StorefrontMetrics,
) *DefaultCartUsecase {
	return &DefaultCartUsecase{
		Store:         store,
		PromotionRepo: promotionRepo,
		ProductRepo:   productRepo,
		Metrics:       storefrontMetrics,
	}
}

// AddProductToCart resolves the product's discounted price at add-time and
// snapshots it into the cart line. Every add goes through the same resolver
// the storefront display uses, so the captured price can never drift from
// the displayed one.
func (uc *DefaultCartUsecase) AddProductToCart(ctx context.Context, input *cartdto.AddItemInput) (*cartdto.CartSummary, error) {
	if input.MerchantID == "" {
		return nil, fmt.Errorf("merchant_id is required")
	}

	product, err := uc.ProductRepo.GetProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	promotions, err := uc.PromotionRepo.ListPromotions(ctx, input.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	unitPrice := product.Price
	if discounted, ok := pricing.DiscountedPrice(product, promotions, time.Now().UTC()); ok {
		unitPrice = discounted
	}

	if err := uc.Store.AddItem(product, input.MerchantID, input.MerchantLabel, input.Quantity, unitPrice); err != nil {
		return nil, fmt.Errorf("failed to add cart line: %w", err)
	}

	uc.recordMutation(input.MerchantID, "add")
	return uc.summary(input.MerchantID), nil
}

func (uc *DefaultCartUsecase) UpdateQuantity(ctx context.Context, input *cartdto.UpdateQuantityInput) (*cartdto.CartSummary, error) {
	if err := uc.Store.UpdateQuantity(input.ProductID, input.MerchantID, input.Quantity); err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}
	uc.recordMutation(input.MerchantID, "update")
	return uc.summary(input.MerchantID), nil
}

func (uc *DefaultCartUsecase) RemoveItem(ctx context.Context, input *cartdto.RemoveItemInput) (*cartdto.CartSummary, error) {
	if err := uc.Store.RemoveItem(input.ProductID, input.MerchantID); err != nil {
		return nil, fmt.Errorf("failed to remove cart line: %w", err)
	}
	uc.recordMutation(input.MerchantID, "remove")
	return uc.summary(input.MerchantID), nil
}

func (uc *DefaultCartUsecase) GetCart(ctx context.Context, merchantID string) (*cartdto.CartSummary, error) {
	return uc.summary(merchantID), nil
}

func (uc *DefaultCartUsecase) Contains(productID, merchantID string) bool {
	return uc.Store.Contains(productID, merchantID)
}

func (uc *DefaultCartUsecase) summary(merchantID string) *cartdto.CartSummary {
	return &cartdto.CartSummary{
		MerchantID:  merchantID,
		Lines:       uc.Store.LinesFor(merchantID),
		Subtotal:    uc.Store.Subtotal(merchantID),
		ShippingFee: uc.Store.ShippingFee(merchantID),
		Total:       uc.Store.Total(merchantID),
		ItemCount:   uc.Store.ItemCount(merchantID),
	}
}

func (uc *DefaultCartUsecase) recordMutation(merchantID, op string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordCartMutation(merchantID, op, uc.Store.ItemCount(merchantID))
	}
}
