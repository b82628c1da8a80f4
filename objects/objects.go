package objects

// 热点统计等场景下区分对象类型的编号
const (
	ObjPost = iota + 1
	ObjSpace
)
