package routes

import (
	"gestao_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRecords = "/records"
	PathReports = "/reports"
)

func addRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.RecordHandler, receiptHandler *handlers.ReceiptHandler) {
	records := rg.Group(PathRecords)
	{
		records.POST("", recordHandler.CreateRecord)
		records.GET("", recordHandler.ListRecords)
		records.GET("/expiring", recordHandler.ExpiringRecords)
		records.PUT("/:id", recordHandler.UpdateRecord)
		records.DELETE("/:id", recordHandler.DeleteRecord)

		records.GET("/:id/receipt", receiptHandler.ReceiptDisplay)
		records.GET("/:id/receipt/share", receiptHandler.ReceiptShare)
		records.GET("/:id/receipt/export", receiptHandler.ReceiptExport)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/:month", reportHandler.MonthlyReport)
		reports.GET("/:month/export", reportHandler.ExportMonthlyReport)
	}
}
