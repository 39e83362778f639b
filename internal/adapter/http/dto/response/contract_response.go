package response

import (
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase"
)

type ContractResponse struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	Address         string    `json:"address"`
	FinalQuotePrice int64     `json:"final_quote_price"`
	KCCSupplyPrice  int64     `json:"kcc_supply_price"`
	ContractDate    string    `json:"contract_date"`
	TenorMonths     int       `json:"tenor_months"`
	MonthlyPayment  int64     `json:"monthly_payment"`
	Remark          string    `json:"remark"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromContractRecord(c entities.ContractRecord) ContractResponse {
	return ContractResponse{
		ID:              c.ID,
		CustomerName:    c.CustomerName,
		CustomerPhone:   c.CustomerPhone,
		Address:         c.Address,
		FinalQuotePrice: c.FinalQuotePrice,
		KCCSupplyPrice:  c.KCCSupplyPrice,
		ContractDate:    c.ContractDate,
		TenorMonths:     c.TenorMonths,
		MonthlyPayment:  c.MonthlyPayment,
		Remark:          c.Remark,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ReconcileResponse reports the reconciliation outcome. With Applied false
// the contract fields are unchanged and the price fields show what a
// confirmed run would copy; nil means the external record omits that field.
type ReconcileResponse struct {
	Contract        ContractResponse `json:"contract"`
	FinalQuotePrice *int64           `json:"final_quote_price,omitempty"`
	KCCSupplyPrice  *int64           `json:"kcc_supply_price,omitempty"`
	Applied         bool             `json:"applied"`
}

func FromReconcileOutcome(o usecase.ReconcileOutcome) ReconcileResponse {
	return ReconcileResponse{
		Contract:        FromContractRecord(o.Contract),
		FinalQuotePrice: o.FinalQuotePrice,
		KCCSupplyPrice:  o.KCCSupplyPrice,
		Applied:         o.Applied,
	}
}
