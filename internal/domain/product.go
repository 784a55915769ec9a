package domain

import (
	"context"
	"time"
)

type Product struct {
	ID          string
	MerchantID  string
	Name        string
	Price       Money // base unit price before any promotion
	CategoryID  string
	ImageURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductRepository is the read side of the product catalog. Catalog CRUD
// lives in the catalog service; this service only resolves prices against it.
type ProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
	ListProductsByMerchantID(ctx context.Context, merchantID string) ([]*Product, error)
}
