package response

import (
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/domain/pricing"
)

type EstimateResponse struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"`
	Status         string               `json:"status"`
	CustomerName   string               `json:"customer_name"`
	CustomerPhone  string               `json:"customer_phone"`
	Address        string               `json:"address"`
	TotalSum       int64                `json:"total_sum"`
	FinalQuote     int64                `json:"final_quote"`
	DiscountAmount int64                `json:"discount_amount"`
	FinalBenefit   int64                `json:"final_benefit"`
	MarginAmount   int64                `json:"margin_amount"`
	MarginRate     float64              `json:"margin_rate"`
	DiscountRate   float64              `json:"discount_rate"`
	ExtraDiscount  int64                `json:"extra_discount"`
	Items          []entities.QuoteItem `json:"items"`
	Remark         string               `json:"remark"`
	Revision       int64                `json:"revision"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromEstimateRecord(rec entities.EstimateRecord) EstimateResponse {
	return EstimateResponse{
		ID:             rec.ID,
		Date:           rec.Date,
		Status:         string(rec.Status),
		CustomerName:   rec.CustomerName,
		CustomerPhone:  rec.CustomerPhone,
		Address:        rec.Address,
		TotalSum:       rec.TotalSum,
		FinalQuote:     rec.FinalQuote,
		DiscountAmount: rec.DiscountAmount,
		FinalBenefit:   rec.FinalBenefit,
		MarginAmount:   rec.MarginAmount,
		MarginRate:     rec.MarginRate,
		DiscountRate:   rec.DiscountRate,
		ExtraDiscount:  rec.ExtraDiscount,
		Items:          rec.Items,
		Remark:         rec.Remark,
		Revision:       rec.Revision,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

func FromEstimateRecords(recs []entities.EstimateRecord) []EstimateResponse {
	out := make([]EstimateResponse, len(recs))
	for i, rec := range recs {
		out[i] = FromEstimateRecord(rec)
	}
	return out
}

// ExtractResponse returns a freshly parsed extract together with the session
// defaults and any consistency warnings, so the UI can start a pricing
// session in one round trip.
type ExtractResponse struct {
	Extract  pricing.RawQuoteExtract `json:"extract"`
	Inputs   pricing.Inputs          `json:"inputs"`
	Warnings []string                `json:"warnings"`
}

func FromExtract(extract pricing.RawQuoteExtract) ExtractResponse {
	return ExtractResponse{
		Extract:  extract,
		Inputs:   pricing.DefaultInputs(extract),
		Warnings: pricing.ValidateExtract(extract),
	}
}
