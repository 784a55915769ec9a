package setup

import (
	"github.com/craftlane/storefront-service/internal/usecase"
)

type UseCases struct {
	PromotionUsecase usecase.PromotionUsecase
	PricingUsecase   usecase.PricingUsecase
	CartUsecase      usecase.CartUsecase
	CheckoutUsecase  usecase.CheckoutUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	promotionUsecase := usecase.NewDefaultPromotionUsecase(deps.Repositories.PromotionRepo)

	pricingUsecase := usecase.NewDefaultPricingUsecase(
		deps.Repositories.PromotionRepo,
		deps.Repositories.ProductRepo,
		deps.Metrics,
	)

	cartUsecase := usecase.NewDefaultCartUsecase(
		deps.CartStore,
		deps.Repositories.PromotionRepo,
		deps.Repositories.ProductRepo,
		deps.Metrics,
	)

	checkoutUsecase := usecase.NewDefaultCheckoutUsecase(
		deps.CartStore,
		deps.OrderPublisher,
		deps.Metrics,
	)

	return &UseCases{
		PromotionUsecase: promotionUsecase,
		PricingUsecase:   pricingUsecase,
		CartUsecase:      cartUsecase,
		CheckoutUsecase:  checkoutUsecase,
	}, nil
}
