package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrInvalidCustomerName   = errors.New("invalid customer name")
	ErrReconcileNoMatch      = errors.New("no matching estimate for customer")
	ErrReconcileLookupFailed = errors.New("estimate lookup failed")
)

// ReconcileOutcome reports what a reconciliation run found and whether it was
// applied. With Applied false the contract is returned untouched together
// with the values a confirmed run would copy.
type ReconcileOutcome struct {
	Contract        entities.ContractRecord
	FinalQuotePrice *int64
	KCCSupplyPrice  *int64
	Applied         bool
}

// IContractUseCase covers contract administration plus the cross-system
// quote reconciliation.
//
// Reconciliation behavior:
//   - the external system is queried by (name, phone) from the contract
//   - "no match" and "request failed" are distinct error kinds
//   - nothing is ever written without confirm, and never partially

type IContractUseCase interface {
	SaveContract(ctx context.Context, c entities.ContractRecord) (entities.ContractRecord, error)
	GetContract(ctx context.Context, id string) (entities.ContractRecord, error)
	ReconcileContract(ctx context.Context, id string, confirm bool) (ReconcileOutcome, error)
}

type ContractUseCase struct {
	repo    interfaces.IContractRepository
	gateway interfaces.IQuoteLookupGateway
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, gateway interfaces.IQuoteLookupGateway) *ContractUseCase {
	return &ContractUseCase{repo: repo, gateway: gateway}
}

func (u *ContractUseCase) SaveContract(ctx context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	if c.CustomerName == "" {
		return entities.ContractRecord{}, ErrInvalidCustomerName
	}
	c.CustomerPhone = strings.TrimSpace(c.CustomerPhone)

	now := time.Now().UTC()
	if strings.TrimSpace(c.ID) == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = now
	} else if existing, err := u.repo.GetByID(ctx, c.ID); err != nil {
		return entities.ContractRecord{}, err
	} else if existing.ID != "" {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	log.Printf("[contract][usecase] saving contract id=%s customer=%q", c.ID, c.CustomerName)
	return u.repo.SaveOrUpdate(ctx, c)
}

func (u *ContractUseCase) GetContract(ctx context.Context, id string) (entities.ContractRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContractRecord{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContractRecord{}, err
	}
	if c.ID == "" {
		return entities.ContractRecord{}, ErrContractNotFound
	}
	return c, nil
}

// ReconcileContract looks up the customer's latest estimate in the external
// quote system and, on a confirmed run, copies final benefit and KCC price
// into the contract's payment fields. The copy is all-or-nothing: any lookup
// failure leaves the contract exactly as it was, and there is no retry.
func (u *ContractUseCase) ReconcileContract(ctx context.Context, id string, confirm bool) (ReconcileOutcome, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ReconcileOutcome{}, ErrInvalidContractID
	}

	contract, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ReconcileOutcome{}, err
	}
	if contract.ID == "" {
		return ReconcileOutcome{}, ErrContractNotFound
	}

	if u.gateway == nil {
		log.Printf("[contract][usecase] reconcile gateway not configured id=%s", id)
		return ReconcileOutcome{}, fmt.Errorf("%w: quote system lookup not configured", ErrReconcileLookupFailed)
	}

	log.Printf("[contract][usecase] reconcile start id=%s customer=%q phone=%q confirm=%t", id, contract.CustomerName, contract.CustomerPhone, confirm)
	quote, err := u.gateway.FindLatestQuote(ctx, contract.CustomerName, contract.CustomerPhone)
	if err != nil {
		if errors.Is(err, interfaces.ErrQuoteNoMatch) {
			log.Printf("[contract][usecase] reconcile no match id=%s", id)
			return ReconcileOutcome{}, ErrReconcileNoMatch
		}
		log.Printf("[contract][usecase] reconcile lookup failed id=%s err=%v", id, err)
		// Keep the raw message; the operator sees it verbatim.
		return ReconcileOutcome{}, fmt.Errorf("%w: %v", ErrReconcileLookupFailed, err)
	}

	outcome := ReconcileOutcome{
		Contract:        contract,
		FinalQuotePrice: quote.FinalBenefit,
		KCCSupplyPrice:  quote.KCCPrice,
	}
	if !confirm {
		return outcome, nil
	}

	// Absent source fields leave the contract fields untouched.
	changed := false
	if quote.FinalBenefit != nil {
		contract.FinalQuotePrice = *quote.FinalBenefit
		changed = true
	}
	if quote.KCCPrice != nil {
		contract.KCCSupplyPrice = *quote.KCCPrice
		changed = true
	}
	if changed {
		contract.UpdatedAt = time.Now().UTC()
		contract, err = u.repo.SaveOrUpdate(ctx, contract)
		if err != nil {
			return ReconcileOutcome{}, err
		}
	}

	log.Printf("[contract][usecase] reconcile applied id=%s changed=%t", id, changed)
	outcome.Contract = contract
	outcome.Applied = true
	return outcome, nil
}
