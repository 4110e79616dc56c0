package order

import (
	"database/sql"

	"go.uber.org/zap"

	"senthur/internal/config"
	"senthur/internal/invoice"
	"senthur/internal/order/controller"
	orderrepo "senthur/internal/order/repository"
	"senthur/internal/order/service"
	"senthur/internal/order/usecase"
)

// NewMySQLStore builds the transactional MySQL order store.
func NewMySQLStore(db *sql.DB, cfg *config.Config, logger *zap.Logger) *service.OrderStoreService {
	return service.NewOrderStoreService(
		db,
		orderrepo.NewMySQLOrderRepository(db),
		orderrepo.NewMySQLOrderItemRepository(db),
		logger,
		cfg.Order.TxTimeout,
	)
}

func NewMemoryStore() *orderrepo.MemoryOrderStore {
	return orderrepo.NewMemoryOrderStore()
}

func NewModule(
	store usecase.OrderStore,
	catalog usecase.ProductCatalog,
	reports usecase.ReportInvalidator,
	renderer *invoice.Renderer,
	cfg *config.Config,
	logger *zap.Logger,
) *controller.BookingController {
	uc := usecase.NewBookingUseCase(
		store,
		catalog,
		reports,
		logger,
		cfg.Order.MaxRetryAttempts,
		cfg.Order.NumberPrefix,
	)

	return controller.NewBookingController(
		uc,
		renderer,
		invoice.Branding{
			ShopName:     cfg.Shop.Name,
			City:         cfg.Shop.City,
			DefaultNotes: cfg.Shop.DefaultNotes,
		},
		controller.ShareSettings{
			ShopName:    cfg.Shop.Name,
			CountryCode: cfg.Shop.WhatsAppCountryCode,
		},
		logger,
	)
}
