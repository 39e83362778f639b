package interfaces

import (
	"context"
	"errors"

	"kcc_quote/internal/domain/entities"
)

// ErrQuoteNoMatch reports that the external quote system holds no estimate
// for the given customer identity. Distinct from transport failures, which
// implementations return verbatim.
var ErrQuoteNoMatch = errors.New("no matching quote in external system")

// IQuoteLookupGateway abstracts the read-only query endpoint of the separate
// estimate deployment used for contract reconciliation.
//
// The two systems share no customer id; the lookup key is the soft
// (name, phone) identity, so results are advisory and always go through an
// operator confirmation before they touch a contract.
type IQuoteLookupGateway interface {
	FindLatestQuote(ctx context.Context, name string, phone string) (entities.ReconciledQuote, error)
}
