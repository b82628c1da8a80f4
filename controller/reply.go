package controller

import (
	common "subpost/controller/Common"
	subpost "subpost/errors"
	"subpost/internal/utils"
	"subpost/logger"
	"subpost/logic"
	"subpost/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// CreateReplyHandler 创建回复接口
//
//	@Summary		创建回复接口
//	@Description	在指定回复树的某个节点下创建回复
//	@Tags			回复相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string					false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamReplyCreate	false	"回复的详细信息"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response{data=common.ResponsePostCreate}
//	@Router			/reply/create [post]
func CreateReplyHandler(ctx *gin.Context) {
	param := new(models.ParamReplyCreate)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	post, err := logic.CreateReply(param, userID)
	if err != nil {
		if errors.Is(err, subpost.ErrInvalidParent) {
			common.ResponseError(ctx, common.CodeInvalidParent)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponsePostCreate{PostID: post.PostID})
}

// ReplyListHandler 回复列表接口
//
//	@Summary		回复列表接口
//	@Description	按插入顺序分页查询某个节点的直接回复
//	@Tags			回复相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			root_id	query	int		false	"根帖 id"
//	@Param			parent_id	query	int	false	"父节点 id，0 表示根帖的直接回复"
//	@Param			cursor	query	string	false	"上一页返回的游标，空表示第一页"
//	@Param			size	query	int		false	"页大小"
//	@Success		200	{object}	common.Response{data=models.ReplyListDTO}
//	@Router			/reply/list [get]
func ReplyListHandler(ctx *gin.Context) {
	param := new(models.ParamReplyList)
	if err := ctx.ShouldBindQuery(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	list, err := logic.GetReplies(param)
	if err != nil {
		if errors.Is(err, subpost.ErrInvalidCursor) {
			common.ResponseError(ctx, common.CodeInvalidCursor)
		} else if errors.Is(err, subpost.ErrPageSizeExceeded) {
			common.ResponseError(ctx, common.CodePageSizeExceeded)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, list)
}
