package dto

// ── 帖子模块 DTO ──

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	Title    string `json:"title"    binding:"required,max=200"`
	Content  string `json:"content"  binding:"required"`
	Category string `json:"category" binding:"required,max=50"`
}

// UpdatePostRequest 更新帖子请求（字段均可选，nil 表示不修改）
type UpdatePostRequest struct {
	Title    *string `json:"title"    binding:"omitempty,max=200"`
	Content  *string `json:"content"`
	Category *string `json:"category" binding:"omitempty,max=50"`
}

// PostResponse 帖子响应（含作者展示字段）
type PostResponse struct {
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	Username  string `json:"username"`
	School    string `json:"school"`
	Diploma   string `json:"diploma"`
}

// CreatePostResponse 发帖响应
type CreatePostResponse struct {
	PostID string `json:"post_id"`
}
