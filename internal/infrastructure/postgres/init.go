package postgres

import (
	"log"

	"github.com/craftlane/storefront-service/internal/config"
	"github.com/craftlane/storefront-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.StorefrontConfig) *gorm.DB {
	dsn := cfg.StorefrontDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.PromotionModel{}, &models.ProductModel{})

	return db
}
