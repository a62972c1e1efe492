package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/repository"
)

// ── 活动模块业务错误 ──

var (
	ErrEventNotFound  = errors.New("活动不存在")
	ErrNoUpdateFields = errors.New("没有需要更新的字段")
)

// EventService 活动业务接口
// 变更操作以调用者身份做归属保护：非创建者的更新/删除与记录缺失同样报告为不存在
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.CreateEventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	List(ctx context.Context) ([]dto.EventResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) error
	Delete(ctx context.Context, id, callerID string) error
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest, callerID string) (*dto.CreateEventResponse, error) {
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Location:    req.Location,
		UserID:      callerID,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateEventResponse{EventID: event.EventID}, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}
	return toEventResponse(event), nil
}

func (s *eventService) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		s.logger.Error("查询活动列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, *toEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest, callerID string) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.EventDate != nil {
		fields["event_date"] = *req.EventDate
	}
	if req.EventTime != nil {
		fields["event_time"] = *req.EventTime
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	if err := s.repo.Event.Update(ctx, id, callerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("更新活动失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, id, callerID string) error {
	if err := s.repo.Event.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("删除活动失败", zap.Error(err))
		return err
	}
	return nil
}

func toEventResponse(e *model.Event) *dto.EventResponse {
	return &dto.EventResponse{
		EventID:     e.EventID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Location:    e.Location,
		UserID:      e.UserID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}
