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
	errInvalidContractPayload  = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)
	errInvalidReconcilePayload = pkg.NewDomainErrorSimple("INVALID_RECONCILE_INPUT", "Invalid reconcile payload", http.StatusBadRequest)
)

// ContractHandler handles contract administration and the operator-triggered
// reconciliation against the external quote system.

type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) SaveContract(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveContract(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractRecord(saved))
}

func (h *ContractHandler) GetContract(c *gin.Context) {
	contract, err := h.usecase.GetContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractRecord(contract))
}

// ReconcileContract runs the (name, phone) lookup. confirm=false previews the
// copy; confirm=true applies it. No match and lookup failure are distinct
// error kinds, and neither ever leaves a partially updated contract.
func (h *ContractHandler) ReconcileContract(c *gin.Context) {
	var payload request.ReconcileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReconcilePayload.HTTPStatus, errInvalidReconcilePayload.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ReconcileContract(c.Request.Context(), c.Param("id"), payload.Confirm)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReconcileOutcome(outcome))
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReconcileNoMatch):
		return pkg.NewDomainErrorSimple("RECONCILE_NO_MATCH", "No matching estimate for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReconcileLookupFailed):
		// The operator sees the raw lookup failure verbatim.
		return pkg.NewDomainErrorSimple("RECONCILE_LOOKUP_FAILED", err.Error(), http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
