// Package export builds a full JSON snapshot of the household's data for
// backup.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// Snapshot is the complete exported state.
type Snapshot struct {
	ExportedAt    time.Time              `json:"exported_at"`
	IncomeSources []*entity.IncomeSource `json:"income_sources"`
	Bills         []*entity.Bill         `json:"bills"`
	CreditCards   []*entity.CreditCard   `json:"credit_cards"`
	Loans         []*entity.Loan         `json:"loans"`
	Subscriptions []*entity.Subscription `json:"subscriptions"`
	BudgetNotes   []*entity.BudgetNote   `json:"budget_notes"`
	SavingsGoals  []*entity.SavingsGoal  `json:"savings_goals"`
}

// ExportSnapshotOutput represents the output of the export.
type ExportSnapshotOutput struct {
	Snapshot *Snapshot
}

// ExportSnapshotUseCase assembles the backup snapshot.
type ExportSnapshotUseCase struct {
	incomeRepo adapter.IncomeSourceRepository
	billRepo   adapter.BillRepository
	cardRepo   adapter.CreditCardRepository
	loanRepo   adapter.LoanRepository
	subRepo    adapter.SubscriptionRepository
	noteRepo   adapter.BudgetNoteRepository
	goalRepo   adapter.SavingsGoalRepository
	clock      adapter.Clock
}

// NewExportSnapshotUseCase creates a new ExportSnapshotUseCase instance.
func NewExportSnapshotUseCase(
	incomeRepo adapter.IncomeSourceRepository,
	billRepo adapter.BillRepository,
	cardRepo adapter.CreditCardRepository,
	loanRepo adapter.LoanRepository,
	subRepo adapter.SubscriptionRepository,
	noteRepo adapter.BudgetNoteRepository,
	goalRepo adapter.SavingsGoalRepository,
	clock adapter.Clock,
) *ExportSnapshotUseCase {
	return &ExportSnapshotUseCase{
		incomeRepo: incomeRepo,
		billRepo:   billRepo,
		cardRepo:   cardRepo,
		loanRepo:   loanRepo,
		subRepo:    subRepo,
		noteRepo:   noteRepo,
		goalRepo:   goalRepo,
		clock:      clock,
	}
}

// Execute assembles the snapshot.
func (uc *ExportSnapshotUseCase) Execute(ctx context.Context) (*ExportSnapshotOutput, error) {
	snapshot := &Snapshot{
		ExportedAt: uc.clock.Now().UTC(),
	}

	var err error
	if snapshot.IncomeSources, err = uc.incomeRepo.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export income sources: %w", err)
	}
	if snapshot.Bills, err = uc.billRepo.FindActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to export bills: %w", err)
	}
	if snapshot.CreditCards, err = uc.cardRepo.FindActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to export credit cards: %w", err)
	}
	if snapshot.Loans, err = uc.loanRepo.FindActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to export loans: %w", err)
	}
	if snapshot.Subscriptions, err = uc.subRepo.FindActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to export subscriptions: %w", err)
	}
	if snapshot.BudgetNotes, err = uc.noteRepo.FindAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to export notes: %w", err)
	}
	if snapshot.SavingsGoals, err = uc.goalRepo.FindActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to export savings goals: %w", err)
	}

	return &ExportSnapshotOutput{
		Snapshot: snapshot,
	}, nil
}
