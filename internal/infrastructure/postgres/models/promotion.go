package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PromotionModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	MerchantID         string `gorm:"index:idx_promotions_merchant"`
	Kind               string `gorm:"not null"`
	Code               string `gorm:"index:idx_promotions_code"`
	ReductionPercent   int    `gorm:"not null;default:0"`
	ValidFrom          time.Time
	ValidTo            time.Time
	Active             bool           `gorm:"default:true"`
	Scope              string         `gorm:"not null"`
	ProductIDs         pq.StringArray `gorm:"type:text[]"`
	CategoryIDs        pq.StringArray `gorm:"type:text[]"`
	MinimumPurchase    int64          `gorm:"default:0"`
	MaxRedemptions     *int
	CurrentRedemptions int  `gorm:"default:0"`
	AutoDisplay        bool `gorm:"default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (PromotionModel) TableName() string {
	return "promotions"
}
