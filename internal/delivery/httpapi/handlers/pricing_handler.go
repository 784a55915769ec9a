package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftlane/storefront-service/internal/usecase"
	pricingdto "github.com/craftlane/storefront-service/internal/usecase/dto/pricing"
)

type PricingHandler struct {
	pricingUsecase usecase.PricingUsecase
}

func NewPricingHandler(pricingUsecase usecase.PricingUsecase) *PricingHandler {
	return &PricingHandler{pricingUsecase: pricingUsecase}
}

type resolvedPriceResponse struct {
	ProductID        string `json:"product_id"`
	MerchantID       string `json:"merchant_id"`
	BasePrice        int64  `json:"base_price"`
	FinalPrice       int64  `json:"final_price"`
	Discounted       bool   `json:"discounted"`
	ReductionPercent int    `json:"reduction_percent,omitempty"`
	PromotionID      string `json:"promotion_id,omitempty"`
	PromotionKind    string `json:"promotion_kind,omitempty"`
	ResolvedAt       int64  `json:"resolved_at"`
}

func toResolvedPriceResponse(r *pricingdto.ResolvedPrice) resolvedPriceResponse {
	return resolvedPriceResponse{
		ProductID:        r.ProductID,
		MerchantID:       r.MerchantID,
		BasePrice:        r.BasePrice,
		FinalPrice:       r.FinalPrice,
		Discounted:       r.Discounted(),
		ReductionPercent: r.ReductionPercent,
		PromotionID:      r.PromotionID,
		PromotionKind:    r.PromotionKind,
		ResolvedAt:       r.ResolvedAtUnix,
	}
}

func (h *PricingHandler) ResolvePrice(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")
	productID := chi.URLParam(r, "productID")

	resolved, err := h.pricingUsecase.ResolvePrice(r.Context(), merchantID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResolvedPriceResponse(resolved))
}

func (h *PricingHandler) ApplicablePromotions(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")
	productID := chi.URLParam(r, "productID")

	promotions, err := h.pricingUsecase.ApplicablePromotions(r.Context(), merchantID, productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPromotionResponseList(promotions))
}

func (h *PricingHandler) DisplayPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.pricingUsecase.DisplayPromotions(r.Context(), chi.URLParam(r, "merchantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPromotionResponseList(promotions))
}

func (h *PricingHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	merchantID := chi.URLParam(r, "merchantID")
	code := chi.URLParam(r, "code")

	promotion, err := h.pricingUsecase.ValidateCode(r.Context(), merchantID, code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPromotionResponse(promotion))
}
