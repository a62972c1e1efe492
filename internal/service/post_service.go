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

// ── 帖子模块业务错误 ──

var ErrPostNotFound = errors.New("帖子不存在")

// PostService 帖子业务接口
// 读取视图携带作者展示字段；变更操作做归属保护
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest, callerID string) (*dto.CreatePostResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PostResponse, error)
	List(ctx context.Context) ([]dto.PostResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePostRequest, callerID string) error
	Delete(ctx context.Context, id, callerID string) error
}

type postService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPostService 创建 PostService 实例
func NewPostService(repo *repository.Repository, logger *zap.Logger) PostService {
	return &postService{repo: repo, logger: logger}
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest, callerID string) (*dto.CreatePostResponse, error) {
	post := &model.Post{
		UserID:   callerID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}

	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("发帖失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreatePostResponse{PostID: post.PostID}, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*dto.PostResponse, error) {
	row, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("查询帖子失败", zap.Error(err))
		return nil, err
	}
	return toPostResponse(row), nil
}

func (s *postService) List(ctx context.Context) ([]dto.PostResponse, error) {
	rows, err := s.repo.Post.List(ctx)
	if err != nil {
		s.logger.Error("查询帖子列表失败", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.PostResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, *toPostResponse(&rows[i]))
	}
	return resp, nil
}

func (s *postService) Update(ctx context.Context, id string, req *dto.UpdatePostRequest, callerID string) error {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if len(fields) == 0 {
		return ErrNoUpdateFields
	}

	if err := s.repo.Post.Update(ctx, id, callerID, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("更新帖子失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id, callerID string) error {
	if err := s.repo.Post.Delete(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("删除帖子失败", zap.Error(err))
		return err
	}
	return nil
}

func toPostResponse(p *model.PostWithAuthor) *dto.PostResponse {
	return &dto.PostResponse{
		PostID:    p.PostID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Username:  p.Username,
		School:    p.School,
		Diploma:   p.Diploma,
	}
}
