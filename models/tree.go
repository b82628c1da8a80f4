package models

// 回复树二级索引，一行对应一条 parent_key -> child 关系
// parent_key 为 (root_id, parent_id)，直接回复根帖时 parent_id == root_id
// 只追加，没有删除和重排：隐藏的回复仍然在索引中，过滤在查询侧做
type ReplyIndex struct {
	ID       int64 `gorm:"type:bigint;auto_increment" json:"id"`
	RootID   int64 `gorm:"type:bigint;not null;uniqueIndex:idx_parent_key_seq" json:"root_id"`
	ParentID int64 `gorm:"type:bigint;not null;uniqueIndex:idx_parent_key_seq" json:"parent_id"`
	PostID   int64 `gorm:"type:bigint;not null;unique" json:"post_id"`
	// 同一 parent_key 下的插入序号，从 1 开始
	// 唯一索引兜底：即使 seq 分配出现并发缺陷，也不会落下重复序号
	Seq int `gorm:"type:int;not null;uniqueIndex:idx_parent_key_seq" json:"seq"`
	CreatedAt Time `gorm:"type:timestamp default CURRENT_TIMESTAMP" json:"created_at"`
}

type ReplyListDTO struct {
	Total      int        `json:"total"`
	NextCursor string     `json:"next_cursor,omitempty"`
	Replies    []*PostDTO `json:"replies"`
}
