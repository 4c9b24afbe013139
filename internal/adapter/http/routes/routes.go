package routes

import (
	"log"
	"strconv"

	_ "duka_payments/docs"
	"duka_payments/internal/adapter/http/handlers"
	repository "duka_payments/internal/adapter/persistence/repository"
	"duka_payments/internal/config"
	"duka_payments/internal/infrastructure/database"
	"duka_payments/internal/infrastructure/payments"
	"duka_payments/internal/usecase"
	"duka_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	intentRepo := repository.NewPaymentIntentDynamoRepository(ddb, cfg.IntentsTable, cfg.OrderClaimsTable)

	var gateway interfaces.IMpesaGateway
	daraja, err := payments.NewDarajaGateway(cfg.Mpesa)
	if err != nil {
		log.Printf("M-Pesa gateway not configured: %v", err)
	} else {
		gateway = daraja
	}

	initiateUseCase := usecase.NewInitiatePaymentUseCase(intentRepo, gateway)
	callbackUseCase := usecase.NewProcessCallbackUseCase(intentRepo)
	statusUseCase := usecase.NewPaymentStatusUseCase(intentRepo)

	paymentHandler := handlers.NewPaymentHandler(initiateUseCase, statusUseCase)
	callbackHandler := handlers.NewCallbackHandler(callbackUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, cfg, paymentHandler, callbackHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
