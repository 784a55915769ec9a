package cart

import "github.com/craftlane/storefront-service/internal/domain"

type CartSummary struct {
	MerchantID  string
	Lines       []domain.CartLine
	Subtotal    domain.Money
	ShippingFee domain.Money
	Total       domain.Money
	ItemCount   int
}
