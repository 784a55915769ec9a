package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftlane/storefront-service/internal/usecase"
	cartdto "github.com/craftlane/storefront-service/internal/usecase/dto/cart"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

type cartItemRequest struct {
	ProductID     string `json:"product_id"`
	MerchantID    string `json:"merchant_id"`
	MerchantLabel string `json:"merchant_label,omitempty"`
	Quantity      int    `json:"quantity"`
}

type cartLineResponse struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	UnitPrice     int64  `json:"unit_price"`
	ImageURL      string `json:"image_url"`
	Description   string `json:"description,omitempty"`
	Quantity      int    `json:"quantity"`
	MerchantID    string `json:"merchant_id"`
	MerchantLabel string `json:"merchant_label"`
	LineTotal     int64  `json:"line_total"`
}

type cartSummaryResponse struct {
	MerchantID  string             `json:"merchant_id"`
	Lines       []cartLineResponse `json:"lines"`
	Subtotal    int64              `json:"subtotal"`
	ShippingFee int64              `json:"shipping_fee"`
	Total       int64              `json:"total"`
	ItemCount   int                `json:"item_count"`
}

func toCartSummaryResponse(summary *cartdto.CartSummary) cartSummaryResponse {
	lines := make([]cartLineResponse, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		lines = append(lines, cartLineResponse{
			ProductID:     l.ProductID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			ImageURL:      l.ImageURL,
			Description:   l.Description,
			Quantity:      l.Quantity,
			MerchantID:    l.MerchantID,
			MerchantLabel: l.MerchantLabel,
			LineTotal:     l.LineTotal(),
		})
	}
	return cartSummaryResponse{
		MerchantID:  summary.MerchantID,
		Lines:       lines,
		Subtotal:    summary.Subtotal,
		ShippingFee: summary.ShippingFee,
		Total:       summary.Total,
		ItemCount:   summary.ItemCount,
	}
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	summary, err := h.cartUsecase.AddProductToCart(r.Context(), &cartdto.AddItemInput{
		ProductID:     req.ProductID,
		MerchantID:    req.MerchantID,
		MerchantLabel: req.MerchantLabel,
		Quantity:      req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	summary, err := h.cartUsecase.UpdateQuantity(r.Context(), &cartdto.UpdateQuantityInput{
		ProductID:  req.ProductID,
		MerchantID: req.MerchantID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	summary, err := h.cartUsecase.RemoveItem(r.Context(), &cartdto.RemoveItemInput{
		ProductID:  req.ProductID,
		MerchantID: req.MerchantID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartUsecase.GetCart(r.Context(), chi.URLParam(r, "merchantID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartSummaryResponse(summary))
}
