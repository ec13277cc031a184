package handlers

import (
	"errors"
	"net/http"

	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/adapter/http/middleware"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler serves the three receipt outputs: the display model for the
// visual document, the share text with its deep link, and the PDF export.

type ReceiptHandler struct {
	usecase usecase.IReceiptUseCase
}

func NewReceiptHandler(uc usecase.IReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// ReceiptDisplay godoc
// @Summary  Receipt display model for one record
// @Tags     receipts
// @Produce  json
// @Param    id path string true "Record ID"
// @Success  200 {object} response.ReceiptDisplayResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records/{id}/receipt [get]
func (h *ReceiptHandler) ReceiptDisplay(c *gin.Context) {
	receipt, err := h.usecase.Compose(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Param("id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReceiptDisplay(h.usecase.DisplayModel(receipt)))
}

// ReceiptShare godoc
// @Summary  Receipt share text and deep link
// @Tags     receipts
// @Produce  json
// @Param    id path string true "Record ID"
// @Success  200 {object} response.ReceiptShareResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records/{id}/receipt/share [get]
func (h *ReceiptHandler) ReceiptShare(c *gin.Context) {
	receipt, err := h.usecase.Compose(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Param("id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ReceiptShareResponse{
		Text: h.usecase.ShareText(receipt),
		Link: h.usecase.ShareLink(receipt),
	})
}

// ReceiptExport godoc
// @Summary  Receipt as a downloadable PDF
// @Tags     receipts
// @Produce  application/pdf
// @Param    id path string true "Record ID"
// @Success  200 {file} binary
// @Failure  502 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records/{id}/receipt/export [get]
func (h *ReceiptHandler) ReceiptExport(c *gin.Context) {
	artifact, err := h.usecase.ExportReceipt(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Param("id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="comprovante.pdf"`)
	c.Data(http.StatusOK, "application/pdf", artifact)
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReceiptRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Service record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "Receipt export failed, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
