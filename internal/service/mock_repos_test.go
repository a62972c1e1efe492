package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/model"
	"github.com/Danieltun-ctrlc/rpcommunity-backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Mock Repositories（内存实现，镜像仓储层的行为契约：
// 复合归属条件命中 0 行时返回 gorm.ErrRecordNotFound）
// ═══════════════════════════════════════════════════════════

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id 与 student_id 双索引
	err   error                  // 非 nil 时所有操作返回该错误
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) add(user *model.User) {
	m.users[user.UserID] = user
	m.users[user.StudentID] = user
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByStudentID(_ context.Context, studentID string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[studentID]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.Event
	seq    int
	err    error
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if m.err != nil {
		return m.err
	}
	m.seq++
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("event-%d", m.seq)
	}
	event.CreatedAt = time.Now()
	cp := *event
	m.events[event.EventID] = &cp
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context) ([]model.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventID < out[j].EventID })
	return out, nil
}

func (m *mockEventRepo) Update(_ context.Context, id, ownerID string, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.events[id]
	if !ok || e.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		e.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		e.Description = v.(string)
	}
	if v, ok := fields["event_date"]; ok {
		e.EventDate = v.(string)
	}
	if v, ok := fields["event_time"]; ok {
		e.EventTime = v.(string)
	}
	if v, ok := fields["location"]; ok {
		e.Location = v.(string)
	}
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id, ownerID string) error {
	if m.err != nil {
		return m.err
	}
	e, ok := m.events[id]
	if !ok || e.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(m.events, id)
	return nil
}

// ── Mock PostRepository ──

type mockPostRepo struct {
	posts   map[string]*model.Post
	authors map[string]*model.User // user_id → 作者展示字段
	seq     int
	err     error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:   make(map[string]*model.Post),
		authors: make(map[string]*model.User),
	}
}

func (m *mockPostRepo) withAuthor(p *model.Post) *model.PostWithAuthor {
	row := &model.PostWithAuthor{Post: *p}
	if u, ok := m.authors[p.UserID]; ok {
		row.Username = u.Username
		row.School = u.School
		row.Diploma = u.Diploma
	}
	return row
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	if m.err != nil {
		return m.err
	}
	m.seq++
	if post.PostID == "" {
		post.PostID = fmt.Sprintf("post-%d", m.seq)
	}
	post.CreatedAt = time.Now()
	cp := *post
	m.posts[post.PostID] = &cp
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*model.PostWithAuthor, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.posts[id]; ok {
		return m.withAuthor(p), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPostRepo) List(_ context.Context) ([]model.PostWithAuthor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.PostWithAuthor, 0, len(m.posts))
	for _, p := range m.posts {
		out = append(out, *m.withAuthor(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostID < out[j].PostID })
	return out, nil
}

func (m *mockPostRepo) Update(_ context.Context, id, ownerID string, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.posts[id]
	if !ok || p.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		p.Content = v.(string)
	}
	if v, ok := fields["category"]; ok {
		p.Category = v.(string)
	}
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id, ownerID string) error {
	if m.err != nil {
		return m.err
	}
	p, ok := m.posts[id]
	if !ok || p.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(m.posts, id)
	return nil
}

// ── Mock NoteRepository ──

type mockNoteRepo struct {
	notes map[string]*model.Note
	seq   int
	err   error
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[string]*model.Note)}
}

func (m *mockNoteRepo) Create(_ context.Context, note *model.Note) error {
	if m.err != nil {
		return m.err
	}
	m.seq++
	if note.NoteID == "" {
		note.NoteID = fmt.Sprintf("note-%d", m.seq)
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	cp := *note
	m.notes[note.NoteID] = &cp
	return nil
}

func (m *mockNoteRepo) GetByID(_ context.Context, id string) (*model.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	if n, ok := m.notes[id]; ok {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// matchFilter 镜像 SQL 谓词的合取语义
func matchFilter(n *model.Note, f *repository.NoteFilter) bool {
	if f == nil {
		return true
	}
	if f.Diploma != "" && n.Diploma != f.Diploma {
		return false
	}
	if f.SchoolOf != "" && n.SchoolOf != f.SchoolOf {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(n.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.CreatedFrom != "" {
		bound, err := time.Parse("2006-01-02", f.CreatedFrom)
		if err != nil || n.CreatedAt.Before(bound) {
			return false
		}
	}
	if f.UpdatedFrom != "" {
		bound, err := time.Parse("2006-01-02", f.UpdatedFrom)
		if err != nil || n.UpdatedAt.Before(bound) {
			return false
		}
	}
	return true
}

func (m *mockNoteRepo) List(_ context.Context, filter *repository.NoteFilter) ([]model.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Note, 0, len(m.notes))
	for _, n := range m.notes {
		if matchFilter(n, filter) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NoteID < out[j].NoteID })
	return out, nil
}

func (m *mockNoteRepo) ListByOwner(_ context.Context, ownerID string, filter *repository.NoteFilter) ([]model.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]model.Note, 0, len(m.notes))
	for _, n := range m.notes {
		if n.UserID == ownerID && matchFilter(n, filter) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NoteID < out[j].NoteID })
	return out, nil
}

func (m *mockNoteRepo) Update(_ context.Context, id, ownerID string, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	n, ok := m.notes[id]
	if !ok || n.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		n.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		n.Description = v.(string)
	}
	if v, ok := fields["content"]; ok {
		n.Content = v.(string)
	}
	if v, ok := fields["pdf_url"]; ok {
		n.PDFUrl = v.(string)
	}
	if v, ok := fields["school_of"]; ok {
		n.SchoolOf = v.(string)
	}
	if v, ok := fields["diploma"]; ok {
		n.Diploma = v.(string)
	}
	n.UpdatedAt = time.Now()
	return nil
}

func (m *mockNoteRepo) Delete(_ context.Context, id, ownerID string) error {
	if m.err != nil {
		return m.err
	}
	n, ok := m.notes[id]
	if !ok || n.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(m.notes, id)
	return nil
}

// ── 聚合 ──

type testRepos struct {
	user  *mockUserRepo
	event *mockEventRepo
	post  *mockPostRepo
	note  *mockNoteRepo
}

func newTestRepository() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		user:  newMockUserRepo(),
		event: newMockEventRepo(),
		post:  newMockPostRepo(),
		note:  newMockNoteRepo(),
	}
	repo := &repository.Repository{
		User:  mocks.user,
		Event: mocks.event,
		Post:  mocks.post,
		Note:  mocks.note,
	}
	return repo, mocks
}
