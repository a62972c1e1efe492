package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

// UserRepository 用户数据访问接口
// 用户创建走种子数据，不在此服务暴露
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
