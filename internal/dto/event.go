package dto

// ── 活动模块 DTO ──

// CreateEventRequest 创建活动请求
type CreateEventRequest struct {
	Title       string `json:"title"       binding:"required,max=200"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"  binding:"required,datetime=2006-01-02"`
	EventTime   string `json:"event_time"  binding:"required,datetime=15:04"`
	Location    string `json:"location"    binding:"max=200"`
}

// UpdateEventRequest 更新活动请求（字段均可选，nil 表示不修改）
type UpdateEventRequest struct {
	Title       *string `json:"title"       binding:"omitempty,max=200"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"  binding:"omitempty,datetime=2006-01-02"`
	EventTime   *string `json:"event_time"  binding:"omitempty,datetime=15:04"`
	Location    *string `json:"location"    binding:"omitempty,max=200"`
}

// EventResponse 活动响应
type EventResponse struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	EventTime   string `json:"event_time"`
	Location    string `json:"location"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
}

// CreateEventResponse 创建活动响应
type CreateEventResponse struct {
	EventID string `json:"event_id"`
}
