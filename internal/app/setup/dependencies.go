package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/craftlane/storefront-service/internal/cartstore"
	"github.com/craftlane/storefront-service/internal/config"
	"github.com/craftlane/storefront-service/internal/domain"
	"github.com/craftlane/storefront-service/internal/infrastructure/cartfile"
	"github.com/craftlane/storefront-service/internal/infrastructure/kafka"
	"github.com/craftlane/storefront-service/internal/infrastructure/metrics"
	"github.com/craftlane/storefront-service/internal/infrastructure/postgres"
	"github.com/craftlane/storefront-service/internal/infrastructure/postgres/repository"
)

type Dependencies struct {
	Config         *config.StorefrontConfig
	DB             *gorm.DB
	OrderPublisher *kafka.CheckoutPublisher
	CartStore      *cartstore.Store
	Metrics        *metrics.StorefrontMetrics
	Repositories   *Repositories
}

type Repositories struct {
	PromotionRepo domain.PromotionRepository
	ProductRepo   domain.ProductRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	orderPublisher := kafka.NewCheckoutPublisher(
		[]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)},
		cfg.KafkaService.OrderTopic,
	)

	persister := cartfile.NewSnapshotStore(cfg.Cart.StatePath)
	store := cartstore.New(persister, cfg.Cart.ShippingFee)

	repos := &Repositories{
		PromotionRepo: repository.NewDefaultPromotionRepository(db),
		ProductRepo:   repository.NewDefaultProductRepository(db),
	}

	return &Dependencies{
		Config:         cfg,
		DB:             db,
		OrderPublisher: orderPublisher,
		CartStore:      store,
		Metrics:        metrics.NewStorefrontMetrics(),
		Repositories:   repos,
	}, nil
}
