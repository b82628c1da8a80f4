package models

/*
	存放所有有关请求参数的结构体
*/

/* User */
type ParamUserRegist struct {
	Username   string `json:"username" binding:"required,min=3,max=64"`
	Password   string `json:"password" binding:"required,min=6,max=64"`
	RePassword string `json:"re_password" binding:"required,eqfield=Password"`
}

type ParamUserLogin struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

/* Space */
type ParamSpaceCreate struct {
	Handle     string `json:"handle" binding:"required"`
	ContentRef string `json:"content_ref" binding:"required,max=128"`
}

type ParamSpaceUpdate struct {
	SpaceID    int64  `json:"space_id,string" binding:"required"`
	Handle     string `json:"handle"`
	ContentRef string `json:"content_ref" binding:"max=128"`
	Hidden     *bool  `json:"hidden"`
}

type ParamSpaceList struct {
	PageNum  int64 `form:"page" binding:"gt=0" example:"1"`
	PageSize int64 `form:"size" binding:"gt=0" example:"10"`
}

/* Post */
type ParamPostCreate struct {
	SpaceID    int64  `json:"space_id,string" binding:"required"`
	ContentRef string `json:"content_ref" binding:"required,max=128"`
}

type ParamReplyCreate struct {
	RootID     int64  `json:"root_id,string" binding:"required"`
	ParentID   int64  `json:"parent_id,string"` // 0 表示直接回复根帖
	ContentRef string `json:"content_ref" binding:"required,max=128"`
}

type ParamPostShare struct {
	OriginalID int64  `json:"original_id,string" binding:"required"`
	ContentRef string `json:"content_ref" binding:"max=128"` // 转发语可以为空
}

type ParamPostEdit struct {
	PostID     int64  `json:"post_id,string" binding:"required"`
	ContentRef string `json:"content_ref" binding:"required,max=128"`
}

type ParamPostHidden struct {
	PostID int64 `json:"post_id,string" binding:"required"`
	Hidden *bool `json:"hidden" binding:"required"`
}

type ParamVote struct {
	PostID    int64 `json:"post_id,string" binding:"required"`
	Direction int8  `json:"direction" binding:"oneof=1 0 -1"`
}

/* Reply query（只读路径） */
type ParamReplyList struct {
	RootID   int64  `form:"root_id" binding:"required"`
	ParentID int64  `form:"parent_id"`                // 0 表示根帖的直接回复
	Cursor   string `form:"cursor"`                   // 不透明游标，空表示第一页
	PageSize int64  `form:"size" binding:"gt=0" example:"10"`
}
