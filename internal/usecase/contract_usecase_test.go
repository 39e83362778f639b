package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase/interfaces"
	mock_interfaces "kcc_quote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleContract() entities.ContractRecord {
	return entities.ContractRecord{
		ID:              "ct-1",
		CustomerName:    "홍길동",
		CustomerPhone:   "010-1234-5678",
		FinalQuotePrice: 5_000_000,
		KCCSupplyPrice:  4_000_000,
		CreatedAt:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestContractUseCase_SaveContract(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		_, err := uc.SaveContract(context.Background(), entities.ContractRecord{CustomerName: "   "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("first save assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
				if c.ID == "" {
					t.Fatalf("expected generated id")
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		_, err := uc.SaveContract(context.Background(), entities.ContractRecord{CustomerName: " 홍길동 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update keeps original creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)

		existing := sampleContract()
		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(existing, nil)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
				if !c.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("creation time must survive updates: %v", c.CreatedAt)
				}
				return c, nil
			},
		)

		update := sampleContract()
		update.Remark = "조건 변경"
		if _, err := uc.SaveContract(context.Background(), update); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestContractUseCase_GetContract(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil)
		_, err := uc.GetContract(context.Background(), "")
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-9").Return(entities.ContractRecord{}, nil)

		_, err := uc.GetContract(context.Background(), "ct-9")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestContractUseCase_ReconcileContract(t *testing.T) {
	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-9").Return(entities.ContractRecord{}, nil)

		_, err := uc.ReconcileContract(context.Background(), "ct-9", true)
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)

		_, err := uc.ReconcileContract(context.Background(), "ct-1", true)
		if !errors.Is(err, ErrReconcileLookupFailed) {
			t.Fatalf("expected ErrReconcileLookupFailed, got %v", err)
		}
	})

	t.Run("no match leaves contract untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), "홍길동", "010-1234-5678").Return(entities.ReconciledQuote{}, interfaces.ErrQuoteNoMatch)

		_, err := uc.ReconcileContract(context.Background(), "ct-1", true)
		if !errors.Is(err, ErrReconcileNoMatch) {
			t.Fatalf("expected ErrReconcileNoMatch, got %v", err)
		}
	})

	t.Run("lookup failure keeps the raw message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciledQuote{}, errors.New("quote system returned status 503"))

		_, err := uc.ReconcileContract(context.Background(), "ct-1", true)
		if !errors.Is(err, ErrReconcileLookupFailed) {
			t.Fatalf("expected ErrReconcileLookupFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "status 503") {
			t.Fatalf("expected raw message preserved, got %q", err.Error())
		}
	})

	t.Run("preview without confirm writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciledQuote{
			FinalBenefit: int64Ptr(12_098_000),
			KCCPrice:     int64Ptr(10_000_000),
		}, nil)

		outcome, err := uc.ReconcileContract(context.Background(), "ct-1", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Applied {
			t.Fatalf("preview must not apply")
		}
		if outcome.Contract.FinalQuotePrice != 5_000_000 || outcome.Contract.KCCSupplyPrice != 4_000_000 {
			t.Fatalf("contract fields changed in preview: %+v", outcome.Contract)
		}
		if outcome.FinalQuotePrice == nil || *outcome.FinalQuotePrice != 12_098_000 {
			t.Fatalf("expected preview values, got %+v", outcome)
		}
	})

	t.Run("confirmed copy applies both fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciledQuote{
			FinalBenefit: int64Ptr(12_098_000),
			KCCPrice:     int64Ptr(10_000_000),
		}, nil)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
				if c.FinalQuotePrice != 12_098_000 || c.KCCSupplyPrice != 10_000_000 {
					t.Fatalf("unexpected copy: %+v", c)
				}
				return c, nil
			},
		)

		outcome, err := uc.ReconcileContract(context.Background(), "ct-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Applied {
			t.Fatalf("expected applied outcome")
		}
		if outcome.Contract.FinalQuotePrice != 12_098_000 {
			t.Fatalf("unexpected contract: %+v", outcome.Contract)
		}
	})

	t.Run("absent source field leaves target untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciledQuote{
			FinalBenefit: int64Ptr(12_098_000),
		}, nil)
		repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
				if c.KCCSupplyPrice != 4_000_000 {
					t.Fatalf("kcc supply price must be untouched, got %d", c.KCCSupplyPrice)
				}
				return c, nil
			},
		)

		if _, err := uc.ReconcileContract(context.Background(), "ct-1", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty remote record skips the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIQuoteLookupGateway(ctrl)
		uc := NewContractUseCase(repo, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(sampleContract(), nil)
		gateway.EXPECT().FindLatestQuote(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ReconciledQuote{}, nil)

		outcome, err := uc.ReconcileContract(context.Background(), "ct-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !outcome.Applied {
			t.Fatalf("expected applied outcome")
		}
	})
}
