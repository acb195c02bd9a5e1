package routes

import (
	"errors"
	"log"

	_ "lovedktech/docs" // This will be auto-generated
	"lovedktech/internal/adapter/http/handlers"
	"lovedktech/internal/adapter/http/middleware"
	"lovedktech/internal/adapter/persistence/repository"
	"lovedktech/internal/config"
	"lovedktech/internal/domain/currency"
	"lovedktech/internal/infrastructure/database"
	"lovedktech/internal/infrastructure/events"
	"lovedktech/internal/infrastructure/payments"
	"lovedktech/internal/infrastructure/rates"
	"lovedktech/internal/infrastructure/storage"
	"lovedktech/internal/usecase"
	"lovedktech/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run assembles the service from configuration and starts the server.
func Run() {
	cfg := config.Load()
	if err := checkConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// checkConfig refuses startup states that would silently break security.
// An empty JWT secret would let RequireAuth validate tokens signed over an
// empty key, making the admin gate forgeable.
func checkConfig(cfg *config.Config) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	return nil
}

func getRoutes(cfg *config.Config) {
	store := newStore(cfg)

	rateTable := currency.NewTable()
	rates.NewClient(cfg.RatesURL).RefreshInBackground(rateTable)

	catalogRepo := repository.NewCatalogStorageRepository(store)
	orderRepo := repository.NewOrderStorageRepository(store)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	adminUseCase := usecase.NewAdminUseCase(catalogUseCase, rateTable)
	checkoutUseCase := usecase.NewCheckoutUseCase(
		catalogRepo,
		orderRepo,
		newPaymentGateway(cfg),
		newOrderPublisher(cfg),
		rateTable,
		usecase.CheckoutConfig{
			StoreName:     cfg.StoreName,
			StoreTagline:  cfg.StoreTagline,
			BaseURL:       cfg.BaseURL,
			WhatsAppPhone: cfg.WhatsAppPhone,
		},
	)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, rateTable)
	contentHandler := handlers.NewContentHandler(catalogUseCase, rateTable, cfg.ContactEmail, cfg.WhatsAppPhone)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, rateTable)
	ordersHandler := handlers.NewOrdersHandler(orderUseCase, rateTable)
	adminHandler := handlers.NewAdminHandler(adminUseCase, orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSiteRoutes(v1, catalogHandler, contentHandler, checkoutHandler)
	addAccountRoutes(v1, cfg, checkoutHandler, ordersHandler)
	addAdminRoutes(v1, cfg, adminHandler)
}

// newStore picks the persistence backend. The file store is the dev
// default; DynamoDB carries the same single-key catalog/orders layout.
func newStore(cfg *config.Config) storage.Store {
	switch cfg.StorageBackend {
	case "dynamodb":
		log.Printf("[routes][storage] using dynamodb backend table=%s", cfg.StorageTable)
		return storage.NewDynamoStore(database.ConnectDynamoDB(), cfg.StorageTable)
	default:
		log.Printf("[routes][storage] using file backend dir=%s", cfg.StorageDir)
		fs, err := storage.NewFileStore(cfg.StorageDir)
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		return fs
	}
}

// newPaymentGateway selects the hosted-payment provider. A misconfigured
// gateway fails at checkout time instead of blocking startup for routes
// that don't need payments.
func newPaymentGateway(cfg *config.Config) interfaces.IPaymentGateway {
	switch cfg.PaymentProvider {
	case "mercadopago":
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
			return nil
		}
		return gw
	default:
		gw, err := payments.NewPayDunyaGateway(payments.PayDunyaConfig{
			Endpoint:   cfg.PayDunyaEndpoint,
			MasterKey:  cfg.PayDunyaMaster,
			PrivateKey: cfg.PayDunyaPrivate,
			Token:      cfg.PayDunyaToken,
		})
		if err != nil {
			log.Printf("PayDunya gateway not configured: %v", err)
			return nil
		}
		return gw
	}
}

func newOrderPublisher(cfg *config.Config) interfaces.IOrderEventPublisher {
	if cfg.RabbitMQURL == "" {
		return nil
	}
	pub, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
	if err != nil {
		log.Printf("Order event publisher not configured: %v", err)
		return nil
	}
	return pub
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Prometheus())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
