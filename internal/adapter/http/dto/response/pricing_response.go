package response

import (
	"kcc_quote/internal/domain/pricing"
)

// PricingResponse is the derived pricing artifact for one preview request.
// The schedule maps tenor months to the floored monthly payment.
type PricingResponse struct {
	KCCQuote       int64         `json:"kcc_quote"`
	FinalQuote     int64         `json:"final_quote"`
	DiscountAmount int64         `json:"discount_amount"`
	FinalBenefit   int64         `json:"final_benefit"`
	MarginAmount   int64         `json:"margin_amount"`
	MarginRate     float64       `json:"margin_rate"`
	Schedule       map[int]int64 `json:"schedule"`
}

func FromPricingResult(res pricing.Result) PricingResponse {
	return PricingResponse{
		KCCQuote:       res.KCCQuote,
		FinalQuote:     res.FinalQuote,
		DiscountAmount: res.DiscountAmount,
		FinalBenefit:   res.FinalBenefit,
		MarginAmount:   res.MarginAmount,
		MarginRate:     res.MarginRate,
		Schedule:       res.Schedule,
	}
}
