package cart

type AddItemInput struct {
	ProductID     string
	MerchantID    string
	MerchantLabel string
	Quantity      int
}

type UpdateQuantityInput struct {
	ProductID  string
	MerchantID string
	Quantity   int
}

type RemoveItemInput struct {
	ProductID  string
	MerchantID string
}
