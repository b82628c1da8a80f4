package subpost

import "github.com/pkg/errors"

var (
	// user
	ErrUserExist     = errors.New("用户已经存在")
	ErrUserNotExist  = errors.New("用户不存在")
	ErrWrongPassword = errors.New("密码错误")

	// common
	ErrGenToken     = errors.New("生成 Token 失败")
	ErrInvalidToken = errors.New("无效的 Token")
	ErrExpiredToken = errors.New("过期的 Token")
	ErrInternal     = errors.New("服务器繁忙")
	ErrTimeout      = errors.New("请求超时")
	ErrInvalidParam = errors.New("无效的请求参数")
	ErrForbidden    = errors.New("没有操作权限")

	// space
	ErrNoSuchSpace      = errors.New("没有该空间")
	ErrSpaceHandleExist = errors.New("空间标识已被占用")
	ErrInvalidHandle    = errors.New("无效的空间标识")

	// post
	ErrNotFound       = errors.New("没有该帖子")
	ErrInvalidParent  = errors.New("父节点不存在或结构非法")
	ErrVoteTimeExpire = errors.New("超过投票时间")

	// reply
	ErrInvalidCursor    = errors.New("无效的分页游标")
	ErrPageSizeExceeded = errors.New("页大小超过上限")
)
