package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studypath/reminder-service/internal/domain"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domain.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func withPlan(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PlanItems", orderByPosition).
		Preload("PlanItems.Subtopics", orderByPosition)
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	schedule.UpdatedAt = now

	model := scheduleModel{
		ID:               schedule.ID,
		Title:            schedule.Title,
		UserID:           schedule.UserID,
		RemindersEnabled: schedule.RemindersEnabled,
		StartDate:        schedule.StartDate,
		CreatedAt:        schedule.CreatedAt,
		UpdatedAt:        schedule.UpdatedAt,
	}

	for i := range schedule.PlanItems {
		item := &schedule.PlanItems[i]
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		itemModel := planItemModel{
			ID:         item.ID,
			ScheduleID: schedule.ID,
			Position:   i,
			RangeLabel: item.Range,
			Topic:      item.Topic,
		}
		for j := range item.Subtopics {
			sub := &item.Subtopics[j]
			if sub.ID == "" {
				sub.ID = uuid.NewString()
			}
			itemModel.Subtopics = append(itemModel.Subtopics, subtopicModel{
				ID:         sub.ID,
				PlanItemID: item.ID,
				Position:   j,
				Title:      sub.Title,
				Completed:  sub.Completed,
			})
		}
		model.PlanItems = append(model.PlanItems, itemModel)
	}

	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var model scheduleModel
	err := withPlan(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Schedule, error) {
	var models []scheduleModel
	err := withPlan(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	schedules := make([]*domain.Schedule, 0, len(models))
	for i := range models {
		schedules = append(schedules, models[i].toDomain())
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&scheduleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *scheduleRepository) ListReminderEnabled(ctx context.Context) ([]*domain.ScheduleWithOwner, error) {
	var models []scheduleModel
	err := withPlan(r.db.WithContext(ctx)).
		Where("reminders_enabled = ? AND start_date IS NOT NULL", true).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	if len(models) == 0 {
		return nil, nil
	}

	ownerIDs := make([]string, 0, len(models))
	for i := range models {
		ownerIDs = append(ownerIDs, models[i].UserID)
	}

	var owners []userModel
	if err := r.db.WithContext(ctx).Find(&owners, "id IN ?", ownerIDs).Error; err != nil {
		return nil, err
	}
	ownersByID := make(map[string]*domain.User, len(owners))
	for i := range owners {
		ownersByID[owners[i].ID] = owners[i].toDomain()
	}

	snapshots := make([]*domain.ScheduleWithOwner, 0, len(models))
	for i := range models {
		owner, ok := ownersByID[models[i].UserID]
		if !ok {
			// Orphaned schedule; nothing to deliver to.
			continue
		}
		snapshots = append(snapshots, &domain.ScheduleWithOwner{
			Schedule: models[i].toDomain(),
			Owner:    owner,
		})
	}
	return snapshots, nil
}

func (r *scheduleRepository) FindReminderEnabledByUser(ctx context.Context, userID string) (*domain.Schedule, error) {
	var model scheduleModel
	err := r.db.WithContext(ctx).
		First(&model, "user_id = ? AND reminders_enabled = ?", userID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *scheduleRepository) SetReminders(ctx context.Context, scheduleID string, enabled bool, startDate *time.Time) (*domain.Schedule, error) {
	result := r.db.WithContext(ctx).
		Model(&scheduleModel{}).
		Where("id = ?", scheduleID).
		Updates(map[string]any{
			"reminders_enabled": enabled,
			"start_date":        startDate,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrScheduleNotFound
	}
	return r.GetByID(ctx, scheduleID)
}

func (r *scheduleRepository) UpdateSubtopicCompletion(ctx context.Context, scheduleID, rangeLabel string, subIdx int, completed bool) (*domain.Subtopic, error) {
	if subIdx < 0 {
		return nil, domain.ErrSubtopicIndex
	}

	var updated domain.Subtopic
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item planItemModel
		err := tx.
			First(&item, "schedule_id = ? AND range_label = ?", scheduleID, rangeLabel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPlanItemNotFound
			}
			return err
		}

		var subs []subtopicModel
		err = tx.
			Where("plan_item_id = ?", item.ID).
			Order("position ASC").
			Find(&subs).Error
		if err != nil {
			return err
		}
		if subIdx >= len(subs) {
			return domain.ErrSubtopicIndex
		}

		target := &subs[subIdx]
		err = tx.Model(&subtopicModel{}).
			Where("id = ?", target.ID).
			Update("completed", completed).Error
		if err != nil {
			return err
		}

		err = tx.Model(&scheduleModel{}).
			Where("id = ?", scheduleID).
			Update("updated_at", time.Now().UTC()).Error
		if err != nil {
			return err
		}

		updated = domain.Subtopic{
			ID:        target.ID,
			Title:     target.Title,
			Completed: completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
