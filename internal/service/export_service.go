package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/repository"
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 活动列表导出为 iCalendar (.ics)，供日历客户端订阅
//   - 我的笔记导出为 Excel (.xlsx)，以 bytes.Buffer 返回，
//     由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportEventsICS 导出全部活动为 iCalendar 文本
	ExportEventsICS(ctx context.Context) (string, error)
	// ExportMyNotesXLSX 导出调用者的笔记为 Excel
	ExportMyNotesXLSX(ctx context.Context, callerID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportEventsICS(ctx context.Context) (string, error) {
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("查询活动列表失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//rpcommunity//events//EN")

	for i := range events {
		e := &events[i]
		ev := cal.AddEvent(e.EventID)
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Description)
		ev.SetLocation(e.Location)
		ev.SetDtStampTime(e.CreatedAt)

		// event_date + event_time 均为本地挂钟时间；解析失败时退化为全天事件
		start, err := time.Parse("2006-01-02 15:04", e.EventDate+" "+e.EventTime)
		if err != nil {
			if day, dayErr := time.Parse("2006-01-02", e.EventDate); dayErr == nil {
				ev.SetAllDayStartAt(day)
				ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
			}
			continue
		}
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
	}

	return cal.Serialize(), nil
}

func (s *exportService) ExportMyNotesXLSX(ctx context.Context, callerID string) (*bytes.Buffer, string, error) {
	notes, err := s.repo.Note.ListByOwner(ctx, callerID, nil)
	if err != nil {
		s.logger.Error("查询我的笔记失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"标题", "描述", "学院", "专业", "内容", "PDF 链接", "创建时间", "更新时间"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx := range notes {
		n := &notes[rowIdx]
		values := []interface{}{
			n.Title,
			n.Description,
			n.SchoolOf,
			n.Diploma,
			n.Content,
			n.PDFUrl,
			n.CreatedAt.Format("2006-01-02 15:04"),
			n.UpdatedAt.Format("2006-01-02 15:04"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("my-notes-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
