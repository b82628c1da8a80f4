package middleware

import (
	common "subpost/controller/Common"
	"subpost/logger"
	"subpost/logic"

	"github.com/gin-gonic/gin"
)

// 校验上下文的 access_token 是否与 redis 中的一致，用于限制一个用户只在一处登录
//
// 如果一致放行，否则给客户端发送错误响应
func VerifyToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt64("user_id")
		access_token := ctx.GetString("access_token")

		r_access_token, err := logic.GetUserAccessToken(userID)
		if err != nil {
			logger.ErrorWithStack(err)
			common.ResponseError(ctx, common.CodeInternalErr)
			ctx.Abort()
		} else if access_token != r_access_token {
			common.ResponseError(ctx, common.CodeNeedLogin)
			ctx.Abort()
		}
		ctx.Next()
	}
}
