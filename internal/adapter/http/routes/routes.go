package routes

import (
	"log"
	"strconv"

	_ "sellerhub/docs" // This will be auto-generated
	"sellerhub/internal/adapter/http/handlers"
	repository2 "sellerhub/internal/adapter/persistence/repository"
	"sellerhub/internal/domain/entities"
	"sellerhub/internal/infrastructure/cache"
	"sellerhub/internal/infrastructure/database"
	"sellerhub/internal/infrastructure/notify"
	"sellerhub/internal/infrastructure/token"
	"sellerhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	redisClient := cache.ConnectRedis()

	threadRepo := repository2.NewDealThreadDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	messageRepo := repository2.NewMessageDynamoRepository(ddb)
	addressRepo := repository2.NewAddressDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	txRunner := repository2.NewDynamoTxRunner(ddb)
	queue := cache.NewThreadQueue(redisClient)
	dispatcher := notify.NewDispatcher(queue, notificationRepo)
	issuer := token.NewIssuerFromEnv()
	invoiceCfg := usecase.InvoiceConfigFromEnv()

	buildKind := func(kind entities.ItemKind) (*handlers.QuotationHandler, *handlers.InvoiceHandler) {
		quotationRepo := repository2.NewQuotationDynamoRepository(ddb, kind)
		invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb, kind)

		sagaUseCase := usecase.NewQuotationSagaUseCase(kind, usecase.QuotationSagaDeps{
			Quotations: quotationRepo,
			Threads:    threadRepo,
			Invoices:   invoiceRepo,
			Orders:     orderRepo,
			Messages:   messageRepo,
			Addresses:  addressRepo,
			Sequences:  sequenceRepo,
			Tx:         txRunner,
			Dispatcher: dispatcher,
		})
		invoiceUseCase := usecase.NewInvoiceUseCase(kind, usecase.InvoiceDeps{
			Quotations: quotationRepo,
			Threads:    threadRepo,
			Invoices:   invoiceRepo,
			Messages:   messageRepo,
			Addresses:  addressRepo,
			Sequences:  sequenceRepo,
			Tx:         txRunner,
			Tokens:     issuer,
			Dispatcher: dispatcher,
		}, invoiceCfg)

		return handlers.NewQuotationHandler(sagaUseCase), handlers.NewInvoiceHandler(invoiceUseCase)
	}

	productQuotations, productInvoices := buildKind(entities.ItemKindProduct)
	serviceQuotations, serviceInvoices := buildKind(entities.ItemKindService)

	orderUseCase := usecase.NewOrderUseCase(usecase.OrderDeps{
		Orders:     orderRepo,
		Threads:    threadRepo,
		Messages:   messageRepo,
		Tx:         txRunner,
		Dispatcher: dispatcher,
	})
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDealRoutes(v1, productQuotations, productInvoices, serviceQuotations, serviceInvoices, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
