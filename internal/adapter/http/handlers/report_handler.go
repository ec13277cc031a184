package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/adapter/http/middleware"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"
	"gestao_servicos/pkg/format"

	"github.com/gin-gonic/gin"
)

var errInvalidReportMonth = pkg.NewDomainErrorSimple("INVALID_MONTH", "Month must be YYYY-MM", http.StatusBadRequest)

// ReportHandler serves the monthly financial summary and its PDF export.

type ReportHandler struct {
	usecase   usecase.IReportUseCase
	formatter *format.Formatter
}

func NewReportHandler(uc usecase.IReportUseCase, f *format.Formatter) *ReportHandler {
	return &ReportHandler{usecase: uc, formatter: f}
}

// MonthlyReport godoc
// @Summary  Financial summary of one calendar month
// @Tags     reports
// @Produce  json
// @Param    month path string true "Month in YYYY-MM"
// @Success  200 {object} response.MonthlyReportResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /reports/{month} [get]
func (h *ReportHandler) MonthlyReport(c *gin.Context) {
	year, month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	summary, err := h.usecase.MonthlyReport(c.Request.Context(), c.GetString(middleware.OwnerKey), year, month)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMonthlySummary(summary, h.formatter))
}

// ExportMonthlyReport godoc
// @Summary  Monthly report as a downloadable PDF
// @Tags     reports
// @Produce  application/pdf
// @Param    month path string true "Month in YYYY-MM"
// @Success  200 {file} binary
// @Failure  502 {object} pkg.HTTPError
// @Security Bearer
// @Router   /reports/{month}/export [get]
func (h *ReportHandler) ExportMonthlyReport(c *gin.Context) {
	year, month, ok := parseMonthParam(c)
	if !ok {
		return
	}

	artifact, err := h.usecase.ExportMonthlyReport(c.Request.Context(), c.GetString(middleware.OwnerKey), year, month)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("relatorio_%04d-%02d.pdf", year, month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", artifact)
}

func parseMonthParam(c *gin.Context) (int, time.Month, bool) {
	raw := strings.TrimSpace(c.Param("month"))
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		c.JSON(errInvalidReportMonth.HTTPStatus, errInvalidReportMonth.ToHTTPError())
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportMonth):
		return errInvalidReportMonth
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Report export failed, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
