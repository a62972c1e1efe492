package model

// Event 活动表 — 对应 events
type Event struct {
	EventID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Title       string `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	EventDate   string `gorm:"type:varchar(10);not null"                      json:"event_date"` // YYYY-MM-DD
	EventTime   string `gorm:"type:varchar(5);not null"                       json:"event_time"` // HH:MM
	Location    string `gorm:"type:varchar(200);not null;default:''"          json:"location"`
	UserID      string `gorm:"type:uuid;not null"                             json:"user_id"`
	BaseModel
}

// TableName 指定表名
func (Event) TableName() string { return "events" }
