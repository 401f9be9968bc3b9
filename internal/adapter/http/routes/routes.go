package routes

import (
	"log"
	"os"
	"strconv"

	_ "homeservice/docs" // This will be auto-generated
	"homeservice/internal/adapter/http/handlers"
	repository2 "homeservice/internal/adapter/persistence/repository"
	"homeservice/internal/infrastructure/database"
	"homeservice/internal/infrastructure/payments"
	"homeservice/internal/infrastructure/promotions"
	"homeservice/internal/usecase"
	"homeservice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewBookingSessionDynamoRepository(ddb)
	catalogRepo := repository2.NewSubServiceDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)

	var promoGateway interfaces.IPromotionGateway
	promoClient, err := promotions.NewPromoHTTPClient(os.Getenv("PROMO_SERVICE_URL"))
	if err != nil {
		log.Printf("Promotion service not configured: %v", err)
	} else {
		promoGateway = promoClient
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	sessionUseCase := usecase.NewBookingSessionUseCase(sessionRepo, catalogRepo)
	promotionUseCase := usecase.NewPromotionUseCase(sessionRepo, promoGateway)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, bookingRepo, paymentGateway)

	sessionHandler := handlers.NewBookingSessionHandler(sessionUseCase)
	promotionHandler := handlers.NewPromotionHandler(promotionUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, sessionHandler, promotionHandler, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
