package controller

type Code uint

const (
	CodeSuccess Code = iota + 1000
	CodeInternalErr
	CodeServerBusy
	CodeInvalidParam
	CodeUnsupportedAuthProtocol
	CodeInvalidToken
	CodeExpiredToken

	CodeUserExist
	CodeUserNotExist
	CodeWrongPassword
	CodeNeedLogin
	CodeExpiredLogin
	CodeForbidden

	CodeNoSuchSpace
	CodeSpaceHandleExist
	CodeInvalidHandle

	CodeNoSuchPost
	CodeInvalidParent
	CodeVoteTimeExpire

	CodeInvalidCursor
	CodePageSizeExceeded

	CodeTimeOut
)

var codeMsgMap = map[Code]string{
	CodeSuccess:                 "成功",
	CodeInternalErr:             "服务繁忙",
	CodeServerBusy:              "触发限流",
	CodeInvalidParam:            "无效参数",
	CodeUnsupportedAuthProtocol: "不支持的认证协议",
	CodeInvalidToken:            "无效 Token",
	CodeExpiredToken:            "过期 Token",

	CodeUserExist:     "用户已存在",
	CodeUserNotExist:  "用户不存在",
	CodeWrongPassword: "密码错误",
	CodeNeedLogin:     "需要登录",
	CodeExpiredLogin:  "登录过期",
	CodeForbidden:     "没有操作权限",

	CodeNoSuchSpace:      "没有该空间",
	CodeSpaceHandleExist: "空间标识已被占用",
	CodeInvalidHandle:    "无效的空间标识",

	CodeNoSuchPost:     "没有该帖子",
	CodeInvalidParent:  "父节点不存在或结构非法",
	CodeVoteTimeExpire: "超过投票时间",

	CodeInvalidCursor:    "无效的分页游标",
	CodePageSizeExceeded: "页大小超过上限",

	CodeTimeOut: "请求超时",
}

func (c Code) getMsg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		return "无效错误码"
	}
	return msg
}
