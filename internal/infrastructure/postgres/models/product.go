package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	MerchantID  string `gorm:"index:idx_products_merchant"`
	Name        string `gorm:"not null"`
	Price       int64  `gorm:"not null;default:0"`
	CategoryID  string `gorm:"index:idx_products_category"`
	ImageURL    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}
