package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/domain/pricing"
	"kcc_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound         = errors.New("estimate not found")
	ErrEstimateRevisionConflict = errors.New("estimate remark revision conflict")
	ErrInvalidEstimateID        = errors.New("invalid estimate id")
)

// ConfirmRequiredError blocks a save until the operator explicitly confirms
// the listed warnings (unset supply cost, inconsistent sheet sums). It is a
// soft guard, not a validation failure: resubmitting with Confirm set saves
// the same payload unchanged.
type ConfirmRequiredError struct {
	Warnings []string
}

func (e *ConfirmRequiredError) Error() string {
	return fmt.Sprintf("confirmation required: %s", strings.Join(e.Warnings, "; "))
}

// SaveEstimateCommand carries everything one save action needs: the raw
// supplier extract, the operator's pricing knobs, and the confirmation flag
// for soft warnings.
type SaveEstimateCommand struct {
	Extract pricing.RawQuoteExtract
	Inputs  pricing.Inputs
	Remark  string
	Confirm bool
}

// IEstimateUseCase exposes the estimate snapshot lifecycle.
//
// These operations map to the quote admin screens:
//   - "견적 저장" (save quote) => SaveEstimate()
//   - lookup/reporting list => ListEstimates()
//   - per-record remark edit => UpdateRemark()

type IEstimateUseCase interface {
	SaveEstimate(ctx context.Context, cmd SaveEstimateCommand) (entities.EstimateRecord, error)
	ListEstimates(ctx context.Context) ([]entities.EstimateRecord, error)
	GetEstimate(ctx context.Context, id string) (entities.EstimateRecord, error)
	UpdateRemark(ctx context.Context, id string, remark string, expectedRevision int64) (entities.EstimateRecord, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRecordRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRecordRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

// SaveEstimate computes the pricing artifact one final time from the command
// payload and persists it as an immutable snapshot. Later changes to the
// session inputs never touch a saved record.
func (u *EstimateUseCase) SaveEstimate(ctx context.Context, cmd SaveEstimateCommand) (entities.EstimateRecord, error) {
	warnings := pricing.ValidateExtract(cmd.Extract)
	if cmd.Inputs.SupplyCost <= 0 {
		warnings = append(warnings, "supply cost is not set")
	}
	if len(warnings) > 0 && !cmd.Confirm {
		log.Printf("[quote][usecase] save blocked pending confirmation warnings=%d", len(warnings))
		return entities.EstimateRecord{}, &ConfirmRequiredError{Warnings: warnings}
	}

	result := pricing.Compute(cmd.Extract, cmd.Inputs)

	status := cmd.Inputs.Status
	if status == "" {
		status = entities.EstimateStatusPreliminary
	}

	now := time.Now().UTC()
	rec := entities.EstimateRecord{
		ID:             uuid.NewString(),
		Date:           now.Format("2006-01-02"),
		Status:         status,
		CustomerName:   strings.TrimSpace(cmd.Extract.CustomerName),
		CustomerPhone:  strings.TrimSpace(cmd.Extract.CustomerPhone),
		Address:        strings.TrimSpace(cmd.Extract.Address),
		TotalSum:       result.KCCQuote,
		FinalQuote:     result.FinalQuote,
		DiscountAmount: result.DiscountAmount,
		FinalBenefit:   result.FinalBenefit,
		MarginAmount:   result.MarginAmount,
		MarginRate:     result.MarginRate,
		DiscountRate:   cmd.Inputs.DiscountRate,
		ExtraDiscount:  cmd.Inputs.ExtraDiscount,
		Items:          pricing.AdjustItems(cmd.Extract.Items, cmd.Inputs.PriceMultiplier),
		Remark:         cmd.Remark,
		Revision:       0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	log.Printf("[quote][usecase] saving estimate id=%s customer=%q final_benefit=%d", rec.ID, rec.CustomerName, rec.FinalBenefit)
	return u.repo.Create(ctx, rec)
}

func (u *EstimateUseCase) ListEstimates(ctx context.Context) ([]entities.EstimateRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// Scans come back unordered; the lookup view wants creation order.
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (u *EstimateUseCase) GetEstimate(ctx context.Context, id string) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	return rec, nil
}

// UpdateRemark is the only permitted post-save mutation. A non-negative
// expectedRevision makes a concurrent edit visible instead of silently
// overwriting it; -1 keeps the old last-write-wins behavior.
func (u *EstimateUseCase) UpdateRemark(ctx context.Context, id string, remark string, expectedRevision int64) (entities.EstimateRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateRecord{}, ErrInvalidEstimateID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimateRecord{}, ErrEstimateNotFound
	}
	if expectedRevision >= 0 && rec.Revision != expectedRevision {
		log.Printf("[quote][usecase] remark revision conflict id=%s have=%d want=%d", id, rec.Revision, expectedRevision)
		return entities.EstimateRecord{}, ErrEstimateRevisionConflict
	}

	updated, err := u.repo.UpdateRemark(ctx, id, remark, expectedRevision)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if updated.ID == "" {
		// Existence was checked above, so a failed conditional write means
		// the revision moved between read and write.
		return entities.EstimateRecord{}, ErrEstimateRevisionConflict
	}
	return updated, nil
}
