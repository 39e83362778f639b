package handlers

import (
	"net/http"

	request "kcc_quote/internal/adapter/http/dto/request"
	response "kcc_quote/internal/adapter/http/dto/response"
	"kcc_quote/internal/domain/pricing"
	"kcc_quote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)

// PricingHandler serves the reactive recompute endpoint: the UI posts the
// current extract and inputs on every change and renders the result whole.
// The engine is pure, so there is nothing to persist or map here.

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

func (h *PricingHandler) PreviewPricing(c *gin.Context) {
	var payload request.PricingPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	extract := payload.Extract.ToExtract()
	result := pricing.Compute(extract, payload.Inputs.ToInputs(extract))

	c.JSON(http.StatusOK, response.FromPricingResult(result))
}
