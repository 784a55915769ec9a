package domain

// LineKey identifies one cart line. A composite key rather than a
// concatenated string, so merchant or product ids containing separator
// characters cannot collide.
type LineKey struct {
	MerchantID string
	ProductID  string
}

// CartLine is a snapshot of a product taken when it was added to the cart.
// UnitPrice is the price actually charged, already reflecting whatever
// promotion was applied at add-time.
type CartLine struct {
	ProductID     string
	Name          string
	UnitPrice     Money
	ImageURL      string
	Description   string
	Quantity      int // always >= 1
	MerchantID    string
	MerchantLabel string
}

func (l *CartLine) Key() LineKey {
	return LineKey{MerchantID: l.MerchantID, ProductID: l.ProductID}
}

// LineTotal is the line's contribution to the partition subtotal.
func (l *CartLine) LineTotal() Money {
	return l.UnitPrice * Money(l.Quantity)
}
