package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/service"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/pkg/response"
)

// EventHandler 活动模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// ListEvents 活动列表
// GET /api/v1/events
func (h *EventHandler) ListEvents(c *gin.Context) {
	result, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetEvent 活动详情
// GET /api/v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	result, err := h.eventSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 12001, "活动不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreateEvent 创建活动
// POST /api/v1/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// UpdateEvent 更新活动
// PUT /api/v1/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdateFields):
			response.BadRequest(c, 10001, "没有需要更新的字段")
		case errors.Is(err, service.ErrEventNotFound):
			response.NotFound(c, 12001, "活动不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"message": "活动已更新"})
}

// DeleteEvent 删除活动
// DELETE /api/v1/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 12001, "活动不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "活动已删除"})
}
