package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

// PostRepository 帖子数据访问接口
// 读取视图 JOIN users 携带作者展示字段；变更同样按复合条件执行
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.PostWithAuthor, error)
	List(ctx context.Context) ([]model.PostWithAuthor, error)
	Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error
	Delete(ctx context.Context, id, ownerID string) error
}

// postRepo PostRepository 的 GORM 实现
type postRepo struct {
	db *gorm.DB
}

// NewPostRepo 创建 PostRepository 实例
func NewPostRepo(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

const postAuthorSelect = "posts.*, users.username, users.school, users.diploma"

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*model.PostWithAuthor, error) {
	var row model.PostWithAuthor
	result := r.db.WithContext(ctx).
		Table("posts").
		Select(postAuthorSelect).
		Joins("JOIN users ON users.user_id = posts.user_id").
		Where("posts.post_id = ?", id).
		Take(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return &row, nil
}

func (r *postRepo) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	var rows []model.PostWithAuthor
	err := r.db.WithContext(ctx).
		Table("posts").
		Select(postAuthorSelect).
		Joins("JOIN users ON users.user_id = posts.user_id").
		Order("posts.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *postRepo) Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("post_id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id, ownerID string) error {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
