package models

type Space struct {
	ID      int64  `gorm:"type:bigint;auto_increment" json:"id"`
	SpaceID int64  `gorm:"type:bigint;not null;unique" json:"space_id"`
	OwnerID int64  `gorm:"type:bigint;not null" json:"owner_id"`
	Handle  string `gorm:"type:varchar(64);not null;unique" json:"handle"`

	ContentRef string `gorm:"type:varchar(128);not null" json:"content_ref"`
	Hidden     bool   `gorm:"not null;default:false" json:"hidden"`

	PostsCount       int   `gorm:"not null;default:0" json:"posts_count"`
	HiddenPostsCount int   `gorm:"not null;default:0" json:"hidden_posts_count"`
	Score            int64 `gorm:"not null;default:0" json:"score"`

	CreatedAt Time `gorm:"type:timestamp default CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt Time `gorm:"type:timestamp default CURRENT_TIMESTAMP" json:"update_at"`
}

type SpaceDTO struct {
	SpaceID          int64  `json:"space_id,string"`
	OwnerID          int64  `json:"owner_id,string"`
	Handle           string `json:"handle"`
	ContentRef       string `json:"content_ref"`
	Hidden           bool   `json:"hidden"`
	PostsCount       int    `json:"posts_count"`
	HiddenPostsCount int    `json:"hidden_posts_count"`
	Score            int64  `json:"score"`
	CreatedAt        Time   `json:"created_at"`
}

type SpaceListDTO struct {
	Total  int         `json:"total"`
	Spaces []*SpaceDTO `json:"spaces"`
}
