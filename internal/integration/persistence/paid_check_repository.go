// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// paidCheckRepository implements the adapter.PaidCheckRepository interface.
type paidCheckRepository struct {
	db *gorm.DB
}

// NewPaidCheckRepository creates a new paid check repository instance.
func NewPaidCheckRepository(db *gorm.DB) adapter.PaidCheckRepository {
	return &paidCheckRepository{
		db: db,
	}
}

// FindByPeriod retrieves all checks for a given year, month and period.
func (r *paidCheckRepository) FindByPeriod(ctx context.Context, year, month, period int) ([]*entity.PaidCheck, error) {
	var models []model.PaidCheckModel
	result := r.db.WithContext(ctx).
		Where("year = ? AND month = ? AND period = ?", year, month, period).
		Order("bill_key ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	checks := make([]*entity.PaidCheck, len(models))
	for i, m := range models {
		checks[i] = m.ToEntity()
	}
	return checks, nil
}

// Save records a check. Re-saving an existing check is a no-op, making the
// mark operation idempotent.
func (r *paidCheckRepository) Save(ctx context.Context, check *entity.PaidCheck) error {
	m := model.PaidCheckFromEntity(check)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a check. Deleting an absent check is a no-op.
func (r *paidCheckRepository) Delete(ctx context.Context, check *entity.PaidCheck) error {
	result := r.db.WithContext(ctx).
		Where("year = ? AND month = ? AND period = ? AND bill_key = ?",
			check.Year, check.Month, check.Period, check.BillKey).
		Delete(&model.PaidCheckModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
