package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/service"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/pkg/response"
)

// PostHandler 帖子模块 HTTP 处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建 PostHandler
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// ListPosts 帖子列表（含作者展示字段）
// GET /api/v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	result, err := h.postSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// GetPost 帖子详情
// GET /api/v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	result, err := h.postSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, 13001, "帖子不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// CreatePost 发帖
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.postSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, result)
}

// UpdatePost 更新帖子
// PUT /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.postSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdateFields):
			response.BadRequest(c, 10001, "没有需要更新的字段")
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFound(c, 13001, "帖子不存在")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"message": "帖子已更新"})
}

// DeletePost 删除帖子
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, 13001, "帖子不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": "帖子已删除"})
}
