package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/craftlane/storefront-service/internal/delivery/httpapi/handlers"
	"github.com/craftlane/storefront-service/internal/delivery/httpapi/middleware"
	"github.com/craftlane/storefront-service/internal/usecase"
)

// NewRouter builds the HTTP surface of the storefront-service.
func NewRouter(
	pricingUsecase usecase.PricingUsecase,
	promotionUsecase usecase.PromotionUsecase,
	cartUsecase usecase.CartUsecase,
	checkoutUsecase usecase.CheckoutUsecase,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	pricingHandler := handlers.NewPricingHandler(pricingUsecase)
	promotionHandler := handlers.NewPromotionHandler(promotionUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUsecase)

	// Shopper-facing storefront endpoints
	r.Route("/storefront/{merchantID}", func(r chi.Router) {
		r.Get("/products/{productID}/price", pricingHandler.ResolvePrice)
		r.Get("/products/{productID}/promotions", pricingHandler.ApplicablePromotions)
		r.Get("/promotions", pricingHandler.DisplayPromotions)
		r.Post("/promotions/code/{code}", pricingHandler.ValidateCode)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Post("/items", cartHandler.AddItem)
		r.Patch("/items", cartHandler.UpdateQuantity)
		r.Delete("/items", cartHandler.RemoveItem)
		r.Get("/{merchantID}", cartHandler.GetCart)
	})

	r.Post("/checkout/{merchantID}", checkoutHandler.SubmitOrder)

	// Merchant admin endpoints
	r.Route("/admin/promotions", func(r chi.Router) {
		r.Post("/", promotionHandler.CreatePromotion)
		r.Get("/", promotionHandler.ListPromotions)
		r.Put("/{promotionID}", promotionHandler.UpdatePromotion)
		r.Post("/{promotionID}/deactivate", promotionHandler.DeactivatePromotion)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
