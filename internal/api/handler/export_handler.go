package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/service"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportEventsICS 导出活动日历
// GET /api/v1/export/events.ics
func (h *ExportHandler) ExportEventsICS(c *gin.Context) {
	content, err := h.exportSvc.ExportEventsICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

// ExportMyNotesXLSX 导出我的笔记 Excel
// GET /api/v1/export/mynotes.xlsx
func (h *ExportHandler) ExportMyNotesXLSX(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportMyNotesXLSX(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
