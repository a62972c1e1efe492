package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

// EventRepository 活动数据访问接口
// Update/Delete 按 "主键 + 归属用户" 复合条件执行，影响行数为 0 时返回 gorm.ErrRecordNotFound，
// 不区分记录缺失与归属不匹配
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error
	Delete(ctx context.Context, id, ownerID string) error
}

// eventRepo EventRepository 的 GORM 实现
type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).
		Order("event_date DESC, event_time DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepo) Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("event_id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
