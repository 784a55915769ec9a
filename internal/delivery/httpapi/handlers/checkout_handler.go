package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/craftlane/storefront-service/internal/usecase"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUsecase
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

type orderResponse struct {
	Number        string             `json:"number"`
	MerchantID    string             `json:"merchant_id"`
	MerchantLabel string             `json:"merchant_label"`
	Lines         []cartLineResponse `json:"lines"`
	Subtotal      int64              `json:"subtotal"`
	ShippingFee   int64              `json:"shipping_fee"`
	Total         int64              `json:"total"`
	SubmittedAt   time.Time          `json:"submitted_at"`
}

func (h *CheckoutHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkoutUsecase.SubmitOrder(r.Context(), chi.URLParam(r, "merchantID"))
	if err != nil {
		writeError(w, err)
		return
	}

	lines := make([]cartLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
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

	writeJSON(w, http.StatusCreated, orderResponse{
		Number:        order.Number,
		MerchantID:    order.MerchantID,
		MerchantLabel: order.MerchantLabel,
		Lines:         lines,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.Total,
		SubmittedAt:   order.SubmittedAt,
	})
}
