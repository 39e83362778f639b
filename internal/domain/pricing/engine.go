package pricing

import (
	"fmt"
	"math"

	"kcc_quote/internal/domain/entities"
)

// RawQuoteExtract is the normalized output of the estimate-sheet adapter:
// the supplier's (KCC) raw quote before any markup or discount.
//
// Contents are partially trusted: missing fields degrade to zero during
// computation, they never fail it. Consistency of the item sums against
// TotalSum/TotalEtc is checked separately by ValidateExtract.
type RawQuoteExtract struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	Address       string               `json:"address"`
	TotalSum      int64                `json:"total_sum"`
	TotalEtc      int64                `json:"total_etc"`
	Items         []entities.QuoteItem `json:"items"`
}

// Inputs are the operator-controlled pricing knobs for one session.
type Inputs struct {
	Status          entities.EstimateStatus `json:"status"`
	SupplyCost      int64                   `json:"supply_cost"`
	PriceMultiplier float64                 `json:"price_multiplier"`
	DiscountRate    float64                 `json:"discount_rate"`
	ExtraDiscount   int64                   `json:"extra_discount"`
}

// Result is the derived pricing artifact. It is recomputed whole on every
// input change; callers must never patch individual fields.
type Result struct {
	KCCQuote       int64         `json:"kcc_quote"`
	FinalQuote     int64         `json:"final_quote"`
	DiscountAmount int64         `json:"discount_amount"`
	FinalBenefit   int64         `json:"final_benefit"`
	MarginAmount   int64         `json:"margin_amount"`
	MarginRate     float64       `json:"margin_rate"`
	Schedule       map[int]int64 `json:"schedule"`
}

const (
	// DefaultPriceMultiplier is the markup applied to the material share of
	// the supplier quote.
	DefaultPriceMultiplier = 1.35
	// DefaultDiscountRate is the standard customer discount, in percent.
	DefaultDiscountRate = 8.0
	// subscriptionAnnualRate is the nominal annual rate behind every
	// subscription tenor.
	subscriptionAnnualRate = 0.10
)

// Tenors are the offered subscription plan lengths, in months.
var Tenors = []int{24, 36, 48, 60}

// DefaultInputs returns the knobs a fresh pricing session starts with.
// SupplyCost starts at the extract's TotalSum; the operator edits it freely
// afterwards.
func DefaultInputs(extract RawQuoteExtract) Inputs {
	return Inputs{
		Status:          entities.EstimateStatusPreliminary,
		SupplyCost:      extract.TotalSum,
		PriceMultiplier: DefaultPriceMultiplier,
		DiscountRate:    DefaultDiscountRate,
		ExtraDiscount:   0,
	}
}

// Compute derives the customer-facing price, margin analysis and subscription
// schedule from a raw supplier quote and the operator inputs.
//
// Pure and deterministic. It never fails: an empty extract yields an all-zero
// Result. All roundings are floor: the final quote lands on a multiple of
// 100 won, the rate discount on a multiple of 100, schedule payments on a
// multiple of 10.
func Compute(extract RawQuoteExtract, inputs Inputs) Result {
	kccQuote := nonNegative(extract.TotalSum)
	baseCost := nonNegative(inputs.SupplyCost)
	otherCost := nonNegative(extract.TotalEtc)

	// Etc cost can exceed the operator-edited base; material share never
	// goes negative.
	materialCost := baseCost - otherCost
	if materialCost < 0 {
		materialCost = 0
	}

	rawFinalQuote := float64(materialCost)*inputs.PriceMultiplier + float64(otherCost)
	finalQuote := floorTo(rawFinalQuote, 100)

	discountAmount := floorTo(float64(finalQuote)*inputs.DiscountRate/100, 100)
	finalBenefit := finalQuote - discountAmount - inputs.ExtraDiscount

	marginAmount := finalBenefit - baseCost

	// Margin as a fraction of the customer-paid amount, not of cost.
	// Zero whenever the base cost is unset or the benefit would divide by
	// zero, so no Inf/NaN ever leaves the engine.
	marginRate := 0.0
	if baseCost > 0 && finalBenefit != 0 {
		marginRate = float64(marginAmount) / float64(finalBenefit) * 100
	}

	return Result{
		KCCQuote:       kccQuote,
		FinalQuote:     finalQuote,
		DiscountAmount: discountAmount,
		FinalBenefit:   finalBenefit,
		MarginAmount:   marginAmount,
		MarginRate:     marginRate,
		Schedule:       schedule(finalBenefit),
	}
}

// schedule computes the monthly payment for every offered tenor with the
// standard fixed-rate amortizing annuity formula, floored to 10 won.
func schedule(finalBenefit int64) map[int]int64 {
	monthlyRate := subscriptionAnnualRate / 12
	out := make(map[int]int64, len(Tenors))
	for _, months := range Tenors {
		payment := float64(finalBenefit) * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-months)))
		out[months] = floorTo(payment, 10)
	}
	return out
}

// AdjustItems produces the item snapshot persisted with an estimate: every
// non-etc price is multiplied and floored to whole won, etc items pass
// through at the supplier price.
func AdjustItems(items []entities.QuoteItem, multiplier float64) []entities.QuoteItem {
	out := make([]entities.QuoteItem, len(items))
	for i, it := range items {
		if !it.IsEtc {
			it.Price = int64(math.Floor(float64(it.Price) * multiplier))
		}
		out[i] = it
	}
	return out
}

// ValidateExtract reconciles the item lines against the sheet totals. It
// returns one human-readable warning per mismatch; an empty slice means the
// extract is internally consistent. Callers decide whether a mismatch blocks
// the save or just needs operator confirmation.
func ValidateExtract(extract RawQuoteExtract) []string {
	var itemSum, etcSum int64
	for _, it := range extract.Items {
		itemSum += it.Price
		if it.IsEtc {
			etcSum += it.Price
		}
	}

	var warnings []string
	if len(extract.Items) > 0 && itemSum != extract.TotalSum {
		warnings = append(warnings, fmt.Sprintf("item prices sum to %d but the sheet total is %d", itemSum, extract.TotalSum))
	}
	if len(extract.Items) > 0 && etcSum != extract.TotalEtc {
		warnings = append(warnings, fmt.Sprintf("etc item prices sum to %d but the sheet etc total is %d", etcSum, extract.TotalEtc))
	}
	if extract.TotalEtc > extract.TotalSum {
		warnings = append(warnings, fmt.Sprintf("etc total %d exceeds the sheet total %d", extract.TotalEtc, extract.TotalSum))
	}
	return warnings
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func floorTo(v float64, unit int64) int64 {
	return int64(math.Floor(v/float64(unit))) * unit
}
