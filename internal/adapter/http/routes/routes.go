package routes

import (
	"context"
	"net/http"
	"time"

	_ "contractor_estimates/docs" // swagger spec registration
	"contractor_estimates/internal/adapter/http/handlers"
	"contractor_estimates/internal/adapter/persistence/repository"
	"contractor_estimates/internal/infrastructure/config"
	"contractor_estimates/internal/infrastructure/database"
	"contractor_estimates/internal/infrastructure/functions"
	"contractor_estimates/internal/infrastructure/logging"
	"contractor_estimates/internal/infrastructure/payments"
	"contractor_estimates/internal/usecase"
	"contractor_estimates/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const PathV1 = "/v1"

// Handlers groups the transport handlers mounted under /v1.
type Handlers struct {
	Wizard      *handlers.WizardHandler
	Lead        *handlers.LeadHandler
	Catalog     *handlers.CatalogHandler
	Measurement *handlers.MeasurementHandler
	Payment     *handlers.BillingPaymentHandler
}

// Run wires the application from cfg and serves it until the listener fails.
func Run(cfg config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	h, err := BuildHandlers(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	router := NewRouter(h, logger)

	logger.Info("[http] listening", zap.String("port", cfg.Port))
	return router.Run(":" + cfg.Port)
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(logging.Recovery(logger))
	router.Use(logging.RequestLogger(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addWizardRoutes(v1, h.Wizard)
	addLeadRoutes(v1, h.Lead)
	addCatalogRoutes(v1, h.Catalog)
	addMeasurementRoutes(v1, h.Measurement)
	addBillingRoutes(v1, h.Payment)
	return router
}

// BuildHandlers connects DynamoDB, the remote functions and the payment gateway,
// and assembles the use cases behind each handler.
func BuildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	leadRepo := repository.NewLeadDynamoRepository(ddb, cfg.LeadsTable, logger)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	categoryRepo := repository.NewCategoryDynamoRepository(ddb, cfg.CategoriesTable)

	if cfg.FunctionsBaseURL == "" {
		logger.Warn("[functions] FUNCTIONS_BASE_URL not set; estimates will use the fallback price")
	}
	remote := functions.NewClient(cfg.FunctionsBaseURL, cfg.FunctionsAPIKey, &http.Client{Timeout: 2 * time.Minute}, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, logger)
	if err != nil {
		logger.Warn("[payment] mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, logger)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, remote, remote, usecase.LeadUseCaseConfig{
		Retry: usecase.RetryPolicy{
			MaxRetries: cfg.LeadFetchRetries,
			BaseDelay:  cfg.LeadFetchBaseDelay,
			MaxDelay:   cfg.LeadFetchMaxDelay,
		},
		Poll:              usecase.PollPolicy{Attempts: cfg.PollAttempts, Interval: cfg.PollInterval},
		GenerationTimeout: cfg.GenerationTimeout,
	}, logger)
	orchestrator := usecase.NewSubmissionOrchestrator(leadRepo, remote, usecase.SubmissionConfig{
		GenerationTimeout: cfg.GenerationTimeout,
		FallbackPrice:     cfg.FallbackPrice,
	}, logger)
	store := usecase.NewSessionStore(cfg.SessionCapacity, cfg.SessionTTL)
	wizardUseCase := usecase.NewWizardUseCase(store, catalogUseCase, leadUseCase, orchestrator, logger)
	measurementUseCase := usecase.NewMeasurementUseCase(remote, logger)
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, leadRepo, paymentGateway, usecase.PaymentConfig{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.TestPayerEmail,
		TestPayerUserID: cfg.TestPayerUserID,
	}, logger)

	return Handlers{
		Wizard:      handlers.NewWizardHandler(wizardUseCase, logger),
		Lead:        handlers.NewLeadHandler(leadUseCase, logger),
		Catalog:     handlers.NewCatalogHandler(catalogUseCase, logger),
		Measurement: handlers.NewMeasurementHandler(measurementUseCase, logger),
		Payment:     handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, logger),
	}, nil
}
