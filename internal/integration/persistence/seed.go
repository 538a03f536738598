// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// EnsureIncomeSources creates one income source row per partner when none
// exist yet. The household always has exactly two income sources; they are
// edited in place, never created through the API.
func EnsureIncomeSources(db *gorm.DB) error {
	for _, person := range []entity.Person{entity.PersonA, entity.PersonB} {
		var count int64
		if err := db.Model(&model.IncomeSourceModel{}).
			Where("person = ?", string(person)).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count income sources: %w", err)
		}
		if count > 0 {
			continue
		}

		now := time.Now().UTC()
		row := &model.IncomeSourceModel{
			ID:        uuid.New(),
			Person:    string(person),
			Amount:    decimal.Zero,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.Create(row).Error; err != nil {
			return fmt.Errorf("failed to seed income source for %s: %w", person, err)
		}
	}
	return nil
}
