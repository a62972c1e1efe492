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

// ── 笔记模块业务错误 ──

var (
	ErrNoteNotFound = errors.New("笔记不存在")
	// content 与 pdf_url 必须恰好填写一项
	ErrNoteContentRule = errors.New("content 与 pdf_url 必须二选一")
)

// NoteService 笔记业务接口
// 变更与删除严格按调用者身份做归属保护；归属不匹配与记录缺失统一报告为不存在
type NoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest, callerID string) (*dto.CreateNoteResponse, error)
	GetByID(ctx context.Context, id string) (*dto.NoteResponse, error)
	List(ctx context.Context, req *dto.NoteListRequest) ([]dto.NoteResponse, error)
	ListMine(ctx context.Context, callerID string, req *dto.NoteListRequest) ([]dto.NoteResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNoteRequest, callerID string) error
	Delete(ctx context.Context, id, callerID string) error
}

type noteService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(repo *repository.Repository, logger *zap.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest, callerID string) (*dto.CreateNoteResponse, error) {
	// 不变量校验：content 与 pdf_url 恰好一项非空，校验不通过时不触达存储
	if (req.Content == "") == (req.PDFUrl == "") {
		return nil, ErrNoteContentRule
	}

	note := &model.Note{
		UserID:      callerID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		PDFUrl:      req.PDFUrl,
		SchoolOf:    req.SchoolOf,
		Diploma:     req.Diploma,
	}

	if err := s.repo.Note.Create(ctx, note); err != nil {
		s.logger.Error("创建笔记失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateNoteResponse{NoteID: note.NoteID}, nil
}

func (s *noteService) GetByID(ctx context.Context, id string) (*dto.NoteResponse, error) {
	note, err := s.repo.Note.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		s.logger.Error("查询笔记失败", zap.Error(err))
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) List(ctx context.Context, req *dto.NoteListRequest) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note.List(ctx, toNoteFilter(req))
	if err != nil {
		s.logger.Error("查询笔记列表失败", zap.Error(err))
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) ListMine(ctx context.Context, callerID string, req *dto.NoteListRequest) ([]dto.NoteResponse, error) {
	notes, err := s.repo.Note.ListByOwner(ctx, callerID, toNoteFilter(req))
	if err != nil {
		s.logger.Error("查询我的笔记失败", zap.Error(err))
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) Update(ctx context.Context, id string, req *dto.UpdateNoteRequest, callerID string) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.SchoolOf != nil {
		fields["school_of"] = *req.SchoolOf
	}
	if req.Diploma != nil {
		fields["diploma"] = *req.Diploma
	}

	// content/pdf_url 的二选一不变量：改其中一项时自动清空另一项，
	// 两项同时给出非空值或给出空值视为矛盾
	switch {
	case req.Content != nil && req.PDFUrl != nil:
		if (*req.Content == "") == (*req.PDFUrl == "") {
			return ErrNoteContentRule
		}
		fields["content"] = *req.Content
		fields["pdf_url"] = *req.PDFUrl
	case req.Content != nil:
		if *req.Content == "" {
			return ErrNoteContentRule
		}
		fields["content"] = *req.Content
		fields["pdf_url"] = ""
	case req.PDFUrl != nil:
		if *req.PDFUrl == "" {
			return ErrNoteContentRule
		}
		fields["pdf_url"] = *req.PDFUrl
		fields["content"] = ""
	}

	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	if err := s.repo.Note.Update(ctx, id, callerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		s.logger.Error("更新笔记失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, id, callerID string) error {
	if err := s.repo.Note.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		s.logger.Error("删除笔记失败", zap.Error(err))
		return err
	}
	return nil
}

func toNoteFilter(req *dto.NoteListRequest) *repository.NoteFilter {
	if req == nil {
		return nil
	}
	return &repository.NoteFilter{
		Diploma:     req.Diploma,
		SchoolOf:    req.SchoolOf,
		Search:      req.Search,
		CreatedFrom: req.CreatedAt,
		UpdatedFrom: req.UpdatedAt,
	}
}

func toNoteResponse(n *model.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		NoteID:      n.NoteID,
		UserID:      n.UserID,
		Title:       n.Title,
		Description: n.Description,
		Content:     n.Content,
		PDFUrl:      n.PDFUrl,
		SchoolOf:    n.SchoolOf,
		Diploma:     n.Diploma,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

func toNoteResponses(notes []model.Note) []dto.NoteResponse {
	resp := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, *toNoteResponse(&notes[i]))
	}
	return resp
}
