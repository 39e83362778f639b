package request

import (
	"strings"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/domain/pricing"
)

type QuoteItemPayload struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	IsEtc bool   `json:"is_etc"`
}

// ExtractPayload mirrors the spreadsheet adapter output. Every field is
// optional; missing amounts degrade to zero in the engine.
type ExtractPayload struct {
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Address       string             `json:"address"`
	TotalSum      int64              `json:"total_sum"`
	TotalEtc      int64              `json:"total_etc"`
	Items         []QuoteItemPayload `json:"items"`
}

// InputsPayload carries the operator knobs. Pointer fields distinguish "not
// sent" from zero so the session defaults apply: supply cost falls back to
// the sheet total, multiplier to 1.35, discount rate to 8.
type InputsPayload struct {
	Status          string   `json:"status"`
	SupplyCost      *int64   `json:"supply_cost"`
	PriceMultiplier *float64 `json:"price_multiplier"`
	DiscountRate    *float64 `json:"discount_rate"`
	ExtraDiscount   *int64   `json:"extra_discount"`
}

// PricingPreviewRequest is the reactive recompute payload: the UI posts it on
// every input change and renders the returned result whole.
type PricingPreviewRequest struct {
	Extract ExtractPayload `json:"extract"`
	Inputs  InputsPayload  `json:"inputs"`
}

// SaveEstimateRequest persists the snapshot. Confirm acknowledges soft
// warnings (unset supply cost, inconsistent sheet sums).
type SaveEstimateRequest struct {
	Extract ExtractPayload `json:"extract"`
	Inputs  InputsPayload  `json:"inputs"`
	Remark  string         `json:"remark"`
	Confirm bool           `json:"confirm"`
}

// UpdateRemarkRequest edits the one mutable field of a saved estimate.
// Revision is the record revision the operator last saw; omitting it skips
// the conflict check.
type UpdateRemarkRequest struct {
	Remark   string `json:"remark"`
	Revision *int64 `json:"revision"`
}

func (r UpdateRemarkRequest) ResolveRevision() int64 {
	if r.Revision == nil {
		return -1
	}
	return *r.Revision
}

// FetchExtractRequest points the download proxy at a hosted workbook.
type FetchExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

func (p ExtractPayload) ToExtract() pricing.RawQuoteExtract {
	items := make([]entities.QuoteItem, len(p.Items))
	for i, it := range p.Items {
		items[i] = entities.QuoteItem{Name: it.Name, Price: it.Price, IsEtc: it.IsEtc}
	}
	return pricing.RawQuoteExtract{
		CustomerName:  strings.TrimSpace(p.CustomerName),
		CustomerPhone: strings.TrimSpace(p.CustomerPhone),
		Address:       strings.TrimSpace(p.Address),
		TotalSum:      p.TotalSum,
		TotalEtc:      p.TotalEtc,
		Items:         items,
	}
}

// ToInputs resolves the payload against the session defaults for the given
// extract.
func (p InputsPayload) ToInputs(extract pricing.RawQuoteExtract) pricing.Inputs {
	inputs := pricing.DefaultInputs(extract)
	if s := strings.TrimSpace(p.Status); s != "" {
		inputs.Status = entities.EstimateStatus(s)
	}
	if p.SupplyCost != nil {
		inputs.SupplyCost = *p.SupplyCost
	}
	if p.PriceMultiplier != nil {
		inputs.PriceMultiplier = *p.PriceMultiplier
	}
	if p.DiscountRate != nil {
		inputs.DiscountRate = *p.DiscountRate
	}
	if p.ExtraDiscount != nil {
		inputs.ExtraDiscount = *p.ExtraDiscount
	}
	return inputs
}
