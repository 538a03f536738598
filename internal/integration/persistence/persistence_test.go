// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.IncomeSourceModel{},
		&model.BillModel{},
		&model.CreditCardModel{},
		&model.LoanModel{},
		&model.SubscriptionModel{},
		&model.BudgetNoteModel{},
		&model.SavingsGoalModel{},
		&model.PaidCheckModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func TestBillRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBillRepository(openTestDB(t))

	rent := entity.NewBill("Rent", moneyPtr("1800"), 1, entity.BillCategoryRent, entity.PersonA, "checking")
	water := entity.NewBill("Water", nil, 20, entity.BillCategoryUtility, entity.PersonB, "checking")

	t.Run("create and find by id", func(t *testing.T) {
		if err := repo.Create(ctx, rent); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.Create(ctx, water); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, rent.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Rent" {
			t.Errorf("expected Rent, got %s", found.Name)
		}
		if found.DefaultAmount == nil || !found.DefaultAmount.Equal(money("1800")) {
			t.Errorf("expected amount 1800, got %v", found.DefaultAmount)
		}
	})

	t.Run("nil amount round-trips", func(t *testing.T) {
		found, err := repo.FindByID(ctx, water.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.DefaultAmount != nil {
			t.Errorf("expected nil amount, got %v", found.DefaultAmount)
		}
		if !found.Varies {
			t.Error("expected varies flag")
		}
	})

	t.Run("find active ordered by due day", func(t *testing.T) {
		bills, err := repo.FindActive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 2 {
			t.Fatalf("expected 2 bills, got %d", len(bills))
		}
		if bills[0].DueDate > bills[1].DueDate {
			t.Error("expected due-day order")
		}
	})

	t.Run("inactive bills are excluded", func(t *testing.T) {
		water.Active = false
		if err := repo.Update(ctx, water); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		bills, err := repo.FindActive(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bills) != 1 || bills[0].Name != "Rent" {
			t.Errorf("expected only Rent, got %d bills", len(bills))
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, rent.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(ctx, rent.ID); !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Errorf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrBillNotFound) {
			t.Errorf("expected ErrBillNotFound, got %v", err)
		}
	})
}

func TestIncomeSourceRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewIncomeSourceRepository(db)

	anchor := entity.NewIncomeSource(entity.PersonA, money("2000"), nil, "Friday")
	if err := db.Create(model.IncomeSourceFromEntity(anchor)).Error; err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	t.Run("nil pay date round-trips", func(t *testing.T) {
		found, err := repo.FindByID(ctx, anchor.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.NextPayDate != nil {
			t.Errorf("expected nil pay date, got %v", found.NextPayDate)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		found, err := repo.FindByID(ctx, anchor.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found.Amount = money("2100")
		if err := repo.Update(ctx, found); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		again, err := repo.FindByID(ctx, anchor.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Amount.Equal(money("2100")) {
			t.Errorf("expected 2100, got %s", again.Amount)
		}
	})
}

func TestPaidCheckRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPaidCheckRepository(openTestDB(t))

	check := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "rent"}

	t.Run("save is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := repo.Save(ctx, check); err != nil {
				t.Fatalf("unexpected error on save %d: %v", i, err)
			}
		}

		checks, err := repo.FindByPeriod(ctx, 2026, 3, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(checks) != 1 {
			t.Errorf("expected 1 check, got %d", len(checks))
		}
	})

	t.Run("periods are isolated", func(t *testing.T) {
		other := &entity.PaidCheck{Year: 2026, Month: 3, Period: 2, BillKey: "rent"}
		if err := repo.Save(ctx, other); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		checks, err := repo.FindByPeriod(ctx, 2026, 3, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(checks) != 1 {
			t.Errorf("expected 1 check in period 1, got %d", len(checks))
		}
	})

	t.Run("delete absent check is a no-op", func(t *testing.T) {
		absent := &entity.PaidCheck{Year: 2026, Month: 3, Period: 1, BillKey: "absent"}
		if err := repo.Delete(ctx, absent); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete removes the check", func(t *testing.T) {
		if err := repo.Delete(ctx, check); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		checks, err := repo.FindByPeriod(ctx, 2026, 3, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(checks) != 0 {
			t.Errorf("expected no checks, got %d", len(checks))
		}
	})
}
