package dto

// ── 笔记模块 DTO ──

// CreateNoteRequest 上传笔记请求
// Content 与 PDFUrl 二选一，由 Service 层校验
type CreateNoteRequest struct {
	Title       string `json:"title"       binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Content     string `json:"content"`
	PDFUrl      string `json:"pdf_url"     binding:"omitempty,url"`
	SchoolOf    string `json:"school_of"   binding:"required,max=100"`
	Diploma     string `json:"diploma"     binding:"required,max=100"`
}

// UpdateNoteRequest 更新笔记请求（字段均可选，nil 表示不修改）
type UpdateNoteRequest struct {
	Title       *string `json:"title"       binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	PDFUrl      *string `json:"pdf_url"`
	SchoolOf    *string `json:"school_of"   binding:"omitempty,max=100"`
	Diploma     *string `json:"diploma"     binding:"omitempty,max=100"`
}

// NoteListRequest 笔记列表可选过滤条件（查询参数）
// 缺省的条件不参与查询
type NoteListRequest struct {
	Diploma   string `form:"diploma"`
	SchoolOf  string `form:"school_of"`
	Search    string `form:"search"`     // 标题子串搜索
	CreatedAt string `form:"created_at"` // 创建时间下界 YYYY-MM-DD
	UpdatedAt string `form:"updated_at"` // 更新时间下界 YYYY-MM-DD
}

// NoteResponse 笔记响应
type NoteResponse struct {
	NoteID      string `json:"note_id"`
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	PDFUrl      string `json:"pdf_url,omitempty"`
	SchoolOf    string `json:"school_of"`
	Diploma     string `json:"diploma"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateNoteResponse 上传笔记响应
type CreateNoteResponse struct {
	NoteID string `json:"note_id"`
}
