package routes

import (
	"kcc_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathEstimates = "/estimates"
	PathContracts = "/contracts"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	extractHandler *handlers.ExtractHandler,
	estimateHandler *handlers.EstimateHandler,
	contractHandler *handlers.ContractHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		// Pricing session: parse a sheet, then recompute on every change.
		quotes.POST("/preview", pricingHandler.PreviewPricing)
		quotes.POST("/extract", extractHandler.UploadEstimateSheet)
		quotes.POST("/extract/fetch", extractHandler.FetchEstimateSheet)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.SaveEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/remark", estimateHandler.UpdateRemark)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.PUT("", contractHandler.SaveContract)
		contracts.GET("/:id", contractHandler.GetContract)
		contracts.POST("/:id/reconcile", contractHandler.ReconcileContract)
	}
}
