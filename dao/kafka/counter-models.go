package kafka

type CounterIncr struct {
	Field  string `json:"field"`
	PostID int64  `json:"post_id,string"`
	Offset int    `json:"offset"`
}
