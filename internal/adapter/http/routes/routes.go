package routes

import (
	"log"

	_ "webquote/docs" // generated swagger docs
	"webquote/internal/adapter/http/handlers"
	"webquote/internal/adapter/persistence/repository"
	"webquote/internal/domain/catalog"
	"webquote/internal/infrastructure/config"
	"webquote/internal/infrastructure/database"
	"webquote/internal/infrastructure/payments"
	"webquote/internal/usecase"
	"webquote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the application together and starts the server.
func Run() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.ServerAddress); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)
	draftRepo := repository.NewDraftDynamoRepository(ddb, cfg.DraftsTable)

	cat := catalog.Default()
	sessionUseCase := usecase.NewOfferSessionUseCase(cat, draftRepo, cfg.AutosaveInterval)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	acceptanceUseCase := usecase.NewAcceptanceUseCase(sessionUseCase, paymentGateway)

	offerHandler := handlers.NewOfferHandler(sessionUseCase, acceptanceUseCase)
	catalogHandler := handlers.NewCatalogHandler(cat)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOfferRoutes(v1, offerHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
