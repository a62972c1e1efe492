package handler

import "github.com/Danieltun-ctrlc/rpcommunity-backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth   *AuthHandler
	Event  *EventHandler
	Post   *PostHandler
	Note   *NoteHandler
	Export *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth),
		Event:  NewEventHandler(svc.Event),
		Post:   NewPostHandler(svc.Post),
		Note:   NewNoteHandler(svc.Note),
		Export: NewExportHandler(svc.Export),
	}
}
