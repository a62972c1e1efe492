package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

// NoteRepository 笔记数据访问接口
// 变更操作使用 "note_id + user_id" 复合 WHERE（归属保护），影响行数为 0 时
// 返回 gorm.ErrRecordNotFound，不区分记录缺失与归属不匹配
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id string) (*model.Note, error)
	List(ctx context.Context, filter *NoteFilter) ([]model.Note, error)
	ListByOwner(ctx context.Context, ownerID string, filter *NoteFilter) ([]model.Note, error)
	Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error
	Delete(ctx context.Context, id, ownerID string) error
}

// noteRepo NoteRepository 的 GORM 实现
type noteRepo struct {
	db *gorm.DB
}

// NewNoteRepo 创建 NoteRepository 实例
func NewNoteRepo(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepo) GetByID(ctx context.Context, id string) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Where("note_id = ?", id).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// applyFilter 将可选条件逐条 AND 到查询上
func applyFilter(db *gorm.DB, filter *NoteFilter) *gorm.DB {
	conds, args := filter.Conditions()
	for i, cond := range conds {
		db = db.Where(cond, args[i])
	}
	return db
}

func (r *noteRepo) List(ctx context.Context, filter *NoteFilter) ([]model.Note, error) {
	var notes []model.Note
	db := applyFilter(r.db.WithContext(ctx).Model(&model.Note{}), filter)
	if err := db.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) ListByOwner(ctx context.Context, ownerID string, filter *NoteFilter) ([]model.Note, error) {
	var notes []model.Note
	db := r.db.WithContext(ctx).Model(&model.Note{}).Where("user_id = ?", ownerID)
	db = applyFilter(db, filter)
	if err := db.Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepo) Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("note_id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
