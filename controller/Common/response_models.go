package controller

type ResponseTokens struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ResponseUserLogin struct {
	UserName     string `json:"user_name"`
	UserID       int64  `json:"user_id,string"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ResponsePostCreate struct {
	PostID int64 `json:"post_id,string"`
}

type ResponseSpaceCreate struct {
	SpaceID int64  `json:"space_id,string"`
	Handle  string `json:"handle"`
}
