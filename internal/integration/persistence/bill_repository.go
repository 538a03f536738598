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

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// FindActive retrieves all active bills ordered by due day.
func (r *billRepository) FindActive(ctx context.Context) ([]*entity.Bill, error) {
	var models []model.BillModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("due_date ASC, name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.Bill, len(models))
	for i, m := range models {
		bills[i] = m.ToEntity()
	}
	return bills, nil
}

// FindByID retrieves a bill by its ID.
func (r *billRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var m model.BillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Create creates a new bill in the database.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	m := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing bill in the database.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	m := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a bill from the database.
func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
