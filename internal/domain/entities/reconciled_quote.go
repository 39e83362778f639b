package entities

// ReconciledQuote is the loosely-typed record the external quote system
// returns for a (name, phone) lookup. Fields are pointers because the remote
// record may omit either one; an absent field must leave the corresponding
// contract field untouched.
type ReconciledQuote struct {
	FinalBenefit *int64 `json:"final_benefit,omitempty"`
	KCCPrice     *int64 `json:"kcc_price,omitempty"`
}
