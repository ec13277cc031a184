package handlers

import (
	"errors"
	"net/http"

	request "gestao_servicos/internal/adapter/http/dto/request"
	response "gestao_servicos/internal/adapter/http/dto/response"
	"gestao_servicos/internal/adapter/http/middleware"
	"gestao_servicos/internal/usecase"
	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)

// RecordHandler handles the service-record form flow: create, list/search,
// update, delete and the warranty alert feed.

type RecordHandler struct {
	usecase usecase.IRecordUseCase
}

func NewRecordHandler(uc usecase.IRecordUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc}
}

// CreateRecord godoc
// @Summary  Register a service record
// @Tags     records
// @Accept   json
// @Produce  json
// @Param    record body request.RecordRequest true "Record payload"
// @Success  201 {object} response.CreatedRecordResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	in, ok := bindRecordInput(c)
	if !ok {
		return
	}

	rec, err := h.usecase.Create(c.Request.Context(), c.GetString(middleware.OwnerKey), in)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedRecord(rec))
}

// ListRecords godoc
// @Summary  List records, newest service first
// @Tags     records
// @Produce  json
// @Param    search query string false "Case-insensitive term matched against client name and observations"
// @Success  200 {array} response.RecordResponse
// @Security Bearer
// @Router   /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Query("search"))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecords(records))
}

// UpdateRecord godoc
// @Summary  Replace a record's editable fields
// @Tags     records
// @Accept   json
// @Produce  json
// @Param    id     path string                true "Record ID"
// @Param    record body request.RecordRequest true "Record payload"
// @Success  200 {object} response.CreatedRecordResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	in, ok := bindRecordInput(c)
	if !ok {
		return
	}

	rec, err := h.usecase.Update(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Param("id"), in)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCreatedRecord(rec))
}

// DeleteRecord godoc
// @Summary  Delete a record
// @Tags     records
// @Produce  json
// @Param    id path string true "Record ID"
// @Success  204 "deleted"
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.GetString(middleware.OwnerKey), c.Param("id")); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExpiringRecords godoc
// @Summary  Warranties expiring within 30 days
// @Tags     records
// @Produce  json
// @Success  200 {object} response.ExpiringResponse
// @Security Bearer
// @Router   /records/expiring [get]
func (h *RecordHandler) ExpiringRecords(c *gin.Context) {
	records, err := h.usecase.ExpiringSoon(c.Request.Context(), c.GetString(middleware.OwnerKey))
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromExpiring(records))
}

func bindRecordInput(c *gin.Context) (usecase.RecordInput, bool) {
	var payload request.RecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return usecase.RecordInput{}, false
	}

	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return usecase.RecordInput{}, false
	}

	return usecase.RecordInput{
		ClientName:     payload.ClientName,
		ServiceDate:    serviceDate,
		WarrantyMonths: payload.WarrantyMonths,
		ServiceValue:   payload.ServiceValue,
		PaymentStatus:  payload.ResolveStatus(),
		Observations:   payload.Observations,
		Parts:          payload.ResolveParts(),
		PhotoData:      payload.PhotoData,
	}, true
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidServiceDate),
		errors.Is(err, usecase.ErrInvalidServiceValue),
		errors.Is(err, usecase.ErrInvalidWarranty),
		errors.Is(err, usecase.ErrInvalidPartName),
		errors.Is(err, usecase.ErrInvalidPartCost),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOwner):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Service record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
