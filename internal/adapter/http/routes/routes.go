package routes

import (
	"log"
	"os"
	"strconv"

	_ "gestao_servicos/docs" // This will be auto-generated
	"gestao_servicos/internal/adapter/http/handlers"
	"gestao_servicos/internal/adapter/http/middleware"
	"gestao_servicos/internal/adapter/persistence/repository"
	"gestao_servicos/internal/infrastructure/clock"
	"gestao_servicos/internal/infrastructure/database"
	"gestao_servicos/internal/infrastructure/export"
	"gestao_servicos/internal/infrastructure/images"
	"gestao_servicos/internal/infrastructure/share"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/internal/usecase/interfaces"
	"gestao_servicos/pkg/format"

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
	recordRepo := newRecordRepository()

	formatter := format.Default()
	systemClock := clock.NewSystemClock()
	imageStore := images.NewCompressingImageStore()
	exporter := export.NewPDFExporter()
	whatsApp := share.NewWhatsAppChannel()

	recordUseCase := usecase.NewRecordUseCase(recordRepo, imageStore, systemClock)
	reportUseCase := usecase.NewReportUseCase(recordRepo, exporter, formatter)
	receiptUseCase := usecase.NewReceiptUseCase(recordRepo, whatsApp, exporter, formatter)

	recordHandler := handlers.NewRecordHandler(recordUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase, formatter)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Tudo abaixo é escopado ao dono autenticado.
	owned := v1.Group("", middleware.OwnerAuth())
	addRecordRoutes(owned, recordHandler, receiptHandler)
	addReportRoutes(owned, reportHandler)
}

// newRecordRepository picks the storage backend. DynamoDB is the default;
// STORAGE_BACKEND=memory keeps everything in process for local runs without
// a DynamoDB endpoint.
func newRecordRepository() interfaces.IServiceRecordRepository {
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Printf("[routes] STORAGE_BACKEND=memory; records will not survive restarts")
		return repository.NewMemoryRecordRepository()
	}
	return repository.NewServiceRecordDynamoRepository(database.ConnectDynamoDB())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
