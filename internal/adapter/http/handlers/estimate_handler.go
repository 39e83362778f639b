package handlers

import (
	"errors"
	"net/http"

	request "kcc_quote/internal/adapter/http/dto/request"
	response "kcc_quote/internal/adapter/http/dto/response"
	"kcc_quote/internal/usecase"
	"kcc_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidRemarkPayload   = pkg.NewDomainErrorSimple("INVALID_REMARK_INPUT", "Invalid remark payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate snapshot lifecycle:
// save, lookup list, detail, and the remark edit.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// SaveEstimate persists an immutable pricing snapshot.
//
// Soft warnings (unset supply cost, inconsistent sheet sums) come back as a
// 409 CONFIRM_REQUIRED until the payload is resubmitted with confirm=true.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	extract := payload.Extract.ToExtract()
	cmd := usecase.SaveEstimateCommand{
		Extract: extract,
		Inputs:  payload.Inputs.ToInputs(extract),
		Remark:  payload.Remark,
		Confirm: payload.Confirm,
	}

	rec, err := h.usecase.SaveEstimate(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimateRecord(rec))
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	records, err := h.usecase.ListEstimates(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRecords(records))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	rec, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRecord(rec))
}

func (h *EstimateHandler) UpdateRemark(c *gin.Context) {
	var payload request.UpdateRemarkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRemarkPayload.HTTPStatus, errInvalidRemarkPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.UpdateRemark(c.Request.Context(), c.Param("id"), payload.Remark, payload.ResolveRevision())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRecord(rec))
}

func mapEstimateError(err error) *pkg.AppError {
	var confirmErr *usecase.ConfirmRequiredError
	switch {
	case errors.As(err, &confirmErr):
		return pkg.NewDomainErrorSimple("CONFIRM_REQUIRED", confirmErr.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateRevisionConflict):
		return pkg.NewDomainErrorSimple("REMARK_REVISION_CONFLICT", "Estimate remark was changed by someone else", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
