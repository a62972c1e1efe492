package model

import "time"

// Post 帖子表 — 对应 posts
type Post struct {
	PostID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"post_id"`
	UserID    string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Title     string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Content   string    `gorm:"type:text;not null"                             json:"content"`
	Category  string    `gorm:"type:varchar(50);not null"                      json:"category"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (Post) TableName() string { return "posts" }

// PostWithAuthor 帖子读取视图：JOIN users 携带作者展示字段
type PostWithAuthor struct {
	Post
	Username string `json:"username"`
	School   string `json:"school"`
	Diploma  string `json:"diploma"`
}
