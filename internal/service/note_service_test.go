package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/dto"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
)

func newTestNoteService() (NoteService, *testRepos) {
	repo, mocks := newTestRepository()
	return NewNoteService(repo, zap.NewNop()), mocks
}

func validNoteRequest() *dto.CreateNoteRequest {
	return &dto.CreateNoteRequest{
		Title:       "线性代数期末复习",
		Description: "矩阵与特征值要点",
		Content:     "第一章……",
		SchoolOf:    "Engineering",
		Diploma:     "CS",
	}
}

func strPtr(s string) *string { return &s }

func TestNoteCreate_Success(t *testing.T) {
	svc, mocks := newTestNoteService()

	resp, err := svc.Create(context.Background(), validNoteRequest(), "user-1")
	if err != nil {
		t.Fatalf("创建笔记失败: %v", err)
	}
	if resp.NoteID == "" {
		t.Error("应返回生成的 note_id")
	}
	if len(mocks.note.notes) != 1 {
		t.Errorf("期望存储 1 条笔记，实际=%d", len(mocks.note.notes))
	}
}

func TestNoteCreate_BothContentAndPDFMissing(t *testing.T) {
	svc, mocks := newTestNoteService()

	req := validNoteRequest()
	req.Content = ""
	req.PDFUrl = ""

	_, err := svc.Create(context.Background(), req, "user-1")
	if err != ErrNoteContentRule {
		t.Errorf("期望 ErrNoteContentRule，实际=%v", err)
	}
	// 校验失败时绝不触达存储
	if len(mocks.note.notes) != 0 {
		t.Errorf("校验失败不应写入存储，实际=%d 条", len(mocks.note.notes))
	}
}

func TestNoteCreate_BothContentAndPDFPresent(t *testing.T) {
	svc, _ := newTestNoteService()

	req := validNoteRequest()
	req.PDFUrl = "https://example.com/notes.pdf"

	_, err := svc.Create(context.Background(), req, "user-1")
	if err != ErrNoteContentRule {
		t.Errorf("期望 ErrNoteContentRule，实际=%v", err)
	}
}

func TestNoteUpdate_OwnerMismatch(t *testing.T) {
	svc, mocks := newTestNoteService()
	mocks.note.notes["note-1"] = &model.Note{
		NoteID: "note-1", UserID: "owner", Title: "原标题", Content: "正文",
	}

	err := svc.Update(context.Background(), "note-1",
		&dto.UpdateNoteRequest{Title: strPtr("篡改")}, "intruder")
	if err != ErrNoteNotFound {
		t.Errorf("归属不匹配应报告不存在，实际=%v", err)
	}
	// 行未被修改
	if mocks.note.notes["note-1"].Title != "原标题" {
		t.Error("归属不匹配时不应修改记录")
	}
}

func TestNoteUpdate_SwitchContentToPDF(t *testing.T) {
	svc, mocks := newTestNoteService()
	mocks.note.notes["note-1"] = &model.Note{
		NoteID: "note-1", UserID: "owner", Title: "标题", Content: "正文",
	}

	err := svc.Update(context.Background(), "note-1",
		&dto.UpdateNoteRequest{PDFUrl: strPtr("https://example.com/n.pdf")}, "owner")
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	n := mocks.note.notes["note-1"]
	if n.PDFUrl != "https://example.com/n.pdf" || n.Content != "" {
		t.Errorf("切换到 pdf_url 后应清空 content，实际 content=%q pdf_url=%q", n.Content, n.PDFUrl)
	}
}

func TestNoteUpdate_ClearingOnlyContent(t *testing.T) {
	svc, _ := newTestNoteService()

	err := svc.Update(context.Background(), "note-1",
		&dto.UpdateNoteRequest{Content: strPtr("")}, "owner")
	if err != ErrNoteContentRule {
		t.Errorf("清空唯一内容应报 ErrNoteContentRule，实际=%v", err)
	}
}

func TestNoteUpdate_NoFields(t *testing.T) {
	svc, _ := newTestNoteService()

	err := svc.Update(context.Background(), "note-1", &dto.UpdateNoteRequest{}, "owner")
	if err != ErrNoUpdateFields {
		t.Errorf("期望 ErrNoUpdateFields，实际=%v", err)
	}
}

func TestNoteDelete_OwnerMismatch(t *testing.T) {
	svc, mocks := newTestNoteService()
	mocks.note.notes["note-1"] = &model.Note{NoteID: "note-1", UserID: "owner", Content: "正文"}

	if err := svc.Delete(context.Background(), "note-1", "intruder"); err != ErrNoteNotFound {
		t.Errorf("归属不匹配应报告不存在，实际=%v", err)
	}
	if _, ok := mocks.note.notes["note-1"]; !ok {
		t.Error("归属不匹配时不应删除记录")
	}
}

func TestNoteGetByID_NotFound(t *testing.T) {
	svc, _ := newTestNoteService()

	if _, err := svc.GetByID(context.Background(), "missing"); err != ErrNoteNotFound {
		t.Errorf("期望 ErrNoteNotFound，实际=%v", err)
	}
}

func TestNoteList_ConjunctionOfFilters(t *testing.T) {
	svc, mocks := newTestNoteService()
	seed := []*model.Note{
		{NoteID: "n1", UserID: "u1", Title: "Algebra basics", Diploma: "CS", SchoolOf: "Eng", Content: "x"},
		{NoteID: "n2", UserID: "u1", Title: "Algebra advanced", Diploma: "Math", SchoolOf: "Sci", Content: "x"},
		{NoteID: "n3", UserID: "u2", Title: "Databases", Diploma: "CS", SchoolOf: "Eng", Content: "x"},
	}
	for _, n := range seed {
		mocks.note.notes[n.NoteID] = n
	}

	// search=algebra 且 diploma=CS，只应命中 n1
	resp, err := svc.List(context.Background(), &dto.NoteListRequest{
		Search:  "algebra",
		Diploma: "CS",
	})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(resp) != 1 || resp[0].NoteID != "n1" {
		t.Errorf("合取过滤结果不符: %+v", resp)
	}
}

func TestNoteListMine_ScopedToOwner(t *testing.T) {
	svc, mocks := newTestNoteService()
	mocks.note.notes["n1"] = &model.Note{NoteID: "n1", UserID: "u1", Title: "mine", Content: "x"}
	mocks.note.notes["n2"] = &model.Note{NoteID: "n2", UserID: "u2", Title: "other", Content: "x"}

	resp, err := svc.ListMine(context.Background(), "u1", &dto.NoteListRequest{})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(resp) != 1 || resp[0].NoteID != "n1" {
		t.Errorf("私有列表应只含调用者的笔记: %+v", resp)
	}
}
