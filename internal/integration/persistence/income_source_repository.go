// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// incomeSourceRepository implements the adapter.IncomeSourceRepository interface.
type incomeSourceRepository struct {
	db *gorm.DB
}

// NewIncomeSourceRepository creates a new income source repository instance.
func NewIncomeSourceRepository(db *gorm.DB) adapter.IncomeSourceRepository {
	return &incomeSourceRepository{
		db: db,
	}
}

// FindAll retrieves all income sources ordered by creation time.
func (r *incomeSourceRepository) FindAll(ctx context.Context) ([]*entity.IncomeSource, error) {
	var models []model.IncomeSourceModel
	result := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	sources := make([]*entity.IncomeSource, len(models))
	for i, m := range models {
		sources[i] = m.ToEntity()
	}
	return sources, nil
}

// FindByID retrieves an income source by its ID.
func (r *incomeSourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	var m model.IncomeSourceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeSourceNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update updates an existing income source in the database.
func (r *incomeSourceRepository) Update(ctx context.Context, source *entity.IncomeSource) error {
	m := model.IncomeSourceFromEntity(source)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
