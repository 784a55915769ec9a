package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/usecase"
	promodto "github.com/craftlane/storefront-service/internal/usecase/dto/promotion"
)

type PromotionHandler struct {
	promotionUsecase usecase.PromotionUsecase
}

func NewPromotionHandler(promotionUsecase usecase.PromotionUsecase) *PromotionHandler {
	return &PromotionHandler{promotionUsecase: promotionUsecase}
}

type promotionRequest struct {
	MerchantID       string    `json:"merchant_id"`
	Kind             string    `json:"kind"`
	Code             string    `json:"code,omitempty"`
	ReductionPercent int       `json:"reduction_percent"`
	ValidFrom        time.Time `json:"valid_from"`
	ValidTo          time.Time `json:"valid_to"`
	Scope            string    `json:"scope"`
	ProductIDs       []string  `json:"product_ids,omitempty"`
	CategoryIDs      []string  `json:"category_ids,omitempty"`
	MinimumPurchase  int64     `json:"minimum_purchase"`
	MaxRedemptions   *int      `json:"max_redemptions,omitempty"`
	AutoDisplay      bool      `json:"auto_display"`
	Active           bool      `json:"active"`
}

type promotionResponse struct {
	ID                 string    `json:"id"`
	MerchantID         string    `json:"merchant_id"`
	Kind               string    `json:"kind"`
	Code               string    `json:"code,omitempty"`
	ReductionPercent   int       `json:"reduction_percent"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidTo            time.Time `json:"valid_to"`
	Active             bool      `json:"active"`
	Scope              string    `json:"scope"`
	ProductIDs         []string  `json:"product_ids,omitempty"`
	CategoryIDs        []string  `json:"category_ids,omitempty"`
	MinimumPurchase    int64     `json:"minimum_purchase"`
	MaxRedemptions     *int      `json:"max_redemptions,omitempty"`
	CurrentRedemptions int       `json:"current_redemptions"`
	AutoDisplay        bool      `json:"auto_display"`
}

func toPromotionResponse(p *domain.Promotion) promotionResponse {
	return promotionResponse{
		ID:                 p.ID,
		MerchantID:         p.MerchantID,
		Kind:               string(p.Kind),
		Code:               p.Code,
		ReductionPercent:   p.ReductionPercent,
		ValidFrom:          p.ValidFrom,
		ValidTo:            p.ValidTo,
		Active:             p.Active,
		Scope:              string(p.Scope),
		ProductIDs:         p.ProductIDs,
		CategoryIDs:        p.CategoryIDs,
		MinimumPurchase:    p.MinimumPurchase,
		MaxRedemptions:     p.MaxRedemptions,
		CurrentRedemptions: p.CurrentRedemptions,
		AutoDisplay:        p.AutoDisplay,
	}
}

func toPromotionResponseList(promotions []*domain.Promotion) []promotionResponse {
	out := make([]promotionResponse, 0, len(promotions))
	for _, p := range promotions {
		out = append(out, toPromotionResponse(p))
	}
	return out
}

func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	created, err := h.promotionUsecase.CreatePromotion(r.Context(), &promodto.CreatePromotionInput{
		MerchantID:       req.MerchantID,
		Kind:             req.Kind,
		Code:             req.Code,
		ReductionPercent: req.ReductionPercent,
		ValidFrom:        req.ValidFrom,
		ValidTo:          req.ValidTo,
		Scope:            req.Scope,
		ProductIDs:       req.ProductIDs,
		CategoryIDs:      req.CategoryIDs,
		MinimumPurchase:  req.MinimumPurchase,
		MaxRedemptions:   req.MaxRedemptions,
		AutoDisplay:      req.AutoDisplay,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPromotionResponse(created))
}

func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	updated, err := h.promotionUsecase.UpdatePromotion(r.Context(), &promodto.UpdatePromotionInput{
		ID:               chi.URLParam(r, "promotionID"),
		Kind:             req.Kind,
		Code:             req.Code,
		ReductionPercent: req.ReductionPercent,
		ValidFrom:        req.ValidFrom,
		ValidTo:          req.ValidTo,
		Scope:            req.Scope,
		ProductIDs:       req.ProductIDs,
		CategoryIDs:      req.CategoryIDs,
		MinimumPurchase:  req.MinimumPurchase,
		MaxRedemptions:   req.MaxRedemptions,
		AutoDisplay:      req.AutoDisplay,
		Active:           req.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPromotionResponse(updated))
}

func (h *PromotionHandler) DeactivatePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.promotionUsecase.DeactivatePromotion(r.Context(), chi.URLParam(r, "promotionID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	merchantID := r.URL.Query().Get("merchant_id")
	promotions, err := h.promotionUsecase.ListPromotionsByMerchantID(r.Context(), merchantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPromotionResponseList(promotions))
}
