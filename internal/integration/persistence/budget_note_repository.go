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

// budgetNoteRepository implements the adapter.BudgetNoteRepository interface.
type budgetNoteRepository struct {
	db *gorm.DB
}

// NewBudgetNoteRepository creates a new budget note repository instance.
func NewBudgetNoteRepository(db *gorm.DB) adapter.BudgetNoteRepository {
	return &budgetNoteRepository{
		db: db,
	}
}

// FindAll retrieves all notes, most recently updated first.
func (r *budgetNoteRepository) FindAll(ctx context.Context) ([]*entity.BudgetNote, error) {
	var models []model.BudgetNoteModel
	result := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.BudgetNote, len(models))
	for i, m := range models {
		notes[i] = m.ToEntity()
	}
	return notes, nil
}

// FindByID retrieves a note by its ID.
func (r *budgetNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetNote, error) {
	var m model.BudgetNoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Create creates a new note in the database.
func (r *budgetNoteRepository) Create(ctx context.Context, note *entity.BudgetNote) error {
	m := model.BudgetNoteFromEntity(note)
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing note in the database.
func (r *budgetNoteRepository) Update(ctx context.Context, note *entity.BudgetNote) error {
	m := model.BudgetNoteFromEntity(note)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a note from the database.
func (r *budgetNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetNoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
