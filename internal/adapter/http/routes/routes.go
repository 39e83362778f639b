package routes

import (
	"log"
	"strconv"

	_ "kcc_quote/docs" // swag-generated swagger registration
	"kcc_quote/internal/adapter/http/handlers"
	repository2 "kcc_quote/internal/adapter/persistence/repository"
	"kcc_quote/internal/infrastructure/database"
	"kcc_quote/internal/infrastructure/quotesys"
	"kcc_quote/internal/infrastructure/spreadsheet"
	"kcc_quote/internal/usecase"
	"kcc_quote/internal/usecase/interfaces"

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

	estimateRepo := repository2.NewEstimateRecordDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)

	var quoteLookup interfaces.IQuoteLookupGateway
	lookupClient, err := quotesys.NewClientFromEnv()
	if err != nil {
		log.Printf("Quote system lookup not configured: %v", err)
	} else {
		quoteLookup = lookupClient
	}

	contractUseCase := usecase.NewContractUseCase(contractRepo, quoteLookup)

	pricingHandler := handlers.NewPricingHandler()
	extractHandler := handlers.NewExtractHandler(spreadsheet.NewParser())
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, pricingHandler, extractHandler, estimateHandler, contractHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
