package model

// Note 笔记表 — 对应 notes
// 不变量：content 与 pdf_url 二选一（恰好一项非空），由 Service 层与 CHECK 约束共同保证
type Note struct {
	NoteID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"note_id"`
	UserID      string `gorm:"type:uuid;not null"                             json:"user_id"`
	Title       string `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string `gorm:"type:text;not null"                             json:"description"`
	Content     string `gorm:"type:text;not null;default:''"                  json:"content,omitempty"`
	PDFUrl      string `gorm:"column:pdf_url;type:text;not null;default:''"   json:"pdf_url,omitempty"`
	SchoolOf    string `gorm:"type:varchar(100);not null"                     json:"school_of"`
	Diploma     string `gorm:"type:varchar(100);not null"                     json:"diploma"`
	BaseModel
}

// TableName 指定表名
func (Note) TableName() string { return "notes" }
