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

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindActive retrieves all active subscriptions.
func (r *subscriptionRepository) FindActive(ctx context.Context) ([]*entity.Subscription, error) {
	var models []model.SubscriptionModel
	result := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("frequency ASC, due_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	subs := make([]*entity.Subscription, len(models))
	for i, m := range models {
		subs[i] = m.ToEntity()
	}
	return subs, nil
}

// FindByID retrieves a subscription by its ID.
func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var m model.SubscriptionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSubscriptionNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	m := model.SubscriptionFromEntity(sub)
	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing subscription in the database.
func (r *subscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	m := model.SubscriptionFromEntity(sub)
	result := r.db.WithContext(ctx).Save(m)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a subscription from the database.
func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SubscriptionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
