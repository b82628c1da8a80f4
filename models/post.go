package models

// extension 的封闭标签集，所有的变更逻辑都必须对 Kind 做穷尽 switch
const (
	KindRegular int8 = iota + 1 // 空间下的普通帖子
	KindComment                 // 回复（挂在某棵回复树上）
	KindShared                  // 转发（引用原帖）
)

type Post struct {
	ID     int64 `gorm:"type:bigint;auto_increment" json:"id"`
	PostID int64 `gorm:"type:bigint;not null;unique" json:"post_id"`

	// extension：Kind 决定哪些引用字段有效，创建后不可变
	// KindRegular: SpaceID
	// KindComment: RootID + ParentID（直接回复根帖时 ParentID == RootID）
	// KindShared:  OriginalID
	Kind       int8  `gorm:"type:tinyint;not null" json:"kind"`
	SpaceID    int64 `gorm:"type:bigint;not null;default:0" json:"space_id"`
	RootID     int64 `gorm:"type:bigint;not null;default:0;index" json:"root_id"`
	ParentID   int64 `gorm:"type:bigint;not null;default:0" json:"parent_id"`
	OriginalID int64 `gorm:"type:bigint;not null;default:0" json:"original_id"`

	AuthorID   int64  `gorm:"type:bigint;not null" json:"author_id"`
	ContentRef string `gorm:"type:varchar(128);not null" json:"content_ref"` // 站外内容引用（IPFS CID），本服务不解析
	Hidden     bool   `gorm:"not null;default:false" json:"hidden"`

	// 派生计数，只能通过计数维护逻辑修改，调用方不可直接设置
	RepliesCount       int   `gorm:"not null;default:0" json:"replies_count"`
	HiddenRepliesCount int   `gorm:"not null;default:0" json:"hidden_replies_count"`
	SharesCount        int   `gorm:"not null;default:0" json:"shares_count"`
	UpvotesCount       int   `gorm:"not null;default:0" json:"upvotes_count"`
	DownvotesCount     int   `gorm:"not null;default:0" json:"downvotes_count"`
	Score              int64 `gorm:"not null;default:0" json:"score"`

	CreatedAt Time `gorm:"type:timestamp default CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt Time `gorm:"type:timestamp default CURRENT_TIMESTAMP" json:"update_at"`
}

type PostDTO struct {
	PostID     int64  `json:"post_id,string"`
	Kind       int8   `json:"kind"`
	SpaceID    int64  `json:"space_id,omitempty"`
	RootID     int64  `json:"root_id,string,omitempty"`
	ParentID   int64  `json:"parent_id,string,omitempty"`
	OriginalID int64  `json:"original_id,string,omitempty"`
	AuthorID   int64  `json:"author_id,string"`
	ContentRef string `json:"content_ref"`
	Hidden     bool   `json:"hidden"`

	RepliesCount       int   `json:"replies_count"`
	HiddenRepliesCount int   `json:"hidden_replies_count"`
	SharesCount        int   `json:"shares_count"`
	UpvotesCount       int   `json:"upvotes_count"`
	DownvotesCount     int   `json:"downvotes_count"`
	Score              int64 `json:"score"`

	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"update_at"`
}

func NewPostDTO(p *Post) *PostDTO {
	return &PostDTO{
		PostID:             p.PostID,
		Kind:               p.Kind,
		SpaceID:            p.SpaceID,
		RootID:             p.RootID,
		ParentID:           p.ParentID,
		OriginalID:         p.OriginalID,
		AuthorID:           p.AuthorID,
		ContentRef:         p.ContentRef,
		Hidden:             p.Hidden,
		RepliesCount:       p.RepliesCount,
		HiddenRepliesCount: p.HiddenRepliesCount,
		SharesCount:        p.SharesCount,
		UpvotesCount:       p.UpvotesCount,
		DownvotesCount:     p.DownvotesCount,
		Score:              p.Score,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
