package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

func newTestPostService() (PostService, *testRepos) {
	repo, mocks := newTestRepository()
	return NewPostService(repo, zap.NewNop()), mocks
}

func TestPostCreate_Success(t *testing.T) {
	svc, mocks := newTestPostService()

	resp, err := svc.Create(context.Background(), &dto.CreatePostRequest{
		Title:    "求二手教材",
		Content:  "线性代数第五版",
		Category: "market",
	}, "user-1")
	if err != nil {
		t.Fatalf("发帖失败: %v", err)
	}
	if resp.PostID == "" {
		t.Error("应返回生成的 post_id")
	}
	if p := mocks.post.posts[resp.PostID]; p == nil || p.UserID != "user-1" {
		t.Errorf("帖子应以调用者为作者存储: %+v", p)
	}
}

func TestPostGetByID_WithAuthorFields(t *testing.T) {
	svc, mocks := newTestPostService()
	mocks.post.authors["u1"] = &model.User{
		UserID: "u1", Username: "韩梅梅", School: "Engineering", Diploma: "CS",
	}
	mocks.post.posts["p1"] = &model.Post{
		PostID: "p1", UserID: "u1", Title: "标题", Content: "内容", Category: "chat",
	}

	resp, err := svc.GetByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if resp.Username != "韩梅梅" || resp.School != "Engineering" || resp.Diploma != "CS" {
		t.Errorf("作者展示字段不符: %+v", resp)
	}
}

func TestPostGetByID_NotFound(t *testing.T) {
	svc, _ := newTestPostService()

	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrPostNotFound {
		t.Errorf("期望 ErrPostNotFound，实际=%v", err)
	}
}

func TestPostUpdate_CreatorMatchEnforced(t *testing.T) {
	svc, mocks := newTestPostService()
	mocks.post.posts["p1"] = &model.Post{PostID: "p1", UserID: "author", Title: "原标题"}

	err := svc.Update(context.Background(), "p1",
		&dto.UpdatePostRequest{Title: strPtr("篡改")}, "intruder")
	if err != ErrPostNotFound {
		t.Errorf("非作者更新应报告不存在，实际=%v", err)
	}

	if err := svc.Update(context.Background(), "p1",
		&dto.UpdatePostRequest{Title: strPtr("新标题")}, "author"); err != nil {
		t.Fatalf("作者更新失败: %v", err)
	}
	if mocks.post.posts["p1"].Title != "新标题" {
		t.Error("作者的更新应生效")
	}
}

func TestPostDelete_CreatorMatchEnforced(t *testing.T) {
	svc, mocks := newTestPostService()
	mocks.post.posts["p1"] = &model.Post{PostID: "p1", UserID: "author"}

	if err := svc.Delete(context.Background(), "p1", "intruder"); err != ErrPostNotFound {
		t.Errorf("非作者删除应报告不存在，实际=%v", err)
	}
	if err := svc.Delete(context.Background(), "p1", "author"); err != nil {
		t.Fatalf("作者删除失败: %v", err)
	}
	if len(mocks.post.posts) != 0 {
		t.Error("删除后记录应消失")
	}
}
