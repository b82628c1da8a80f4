package controller

import (
	"strconv"
	common "subpost/controller/Common"
	subpost "subpost/errors"
	"subpost/internal/utils"
	"subpost/logger"
	"subpost/logic"
	"subpost/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// 从 context 中取出中间件写入的 user_id
func getUserIDFromContext(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("user_id")
	if !exists {
		common.ResponseError(ctx, common.CodeInternalErr)
		// 打日志
		logger.Errorf("controller.getUserIDFromContext: get user_id from context failed")
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok {
		common.ResponseError(ctx, common.CodeInternalErr)
		// 打日志
		logger.Errorf("controller.getUserIDFromContext: convert user_id from context to int64 failed")
		return 0, false
	}
	return userID, true
}

// CreatePostHandler 创建帖子接口
//
//	@Summary		创建帖子接口
//	@Description	在指定空间下创建普通帖子
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string					false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamPostCreate	false	"帖子的详细信息"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response{data=common.ResponsePostCreate}
//	@Router			/post/create [post]
func CreatePostHandler(ctx *gin.Context) {
	// 使用 validator 在解析数据的同时做参数校验
	param := new(models.ParamPostCreate)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	post, err := logic.CreateRegularPost(param, userID)
	if err != nil {
		if errors.Is(err, subpost.ErrNoSuchSpace) {
			common.ResponseError(ctx, common.CodeNoSuchSpace)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponsePostCreate{PostID: post.PostID})
}

// SharePostHandler 转发帖子接口
//
//	@Summary		转发帖子接口
//	@Description	创建一个引用原帖的转发帖
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string				false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamPostShare	false	"转发信息"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response{data=common.ResponsePostCreate}
//	@Router			/post/share [post]
func SharePostHandler(ctx *gin.Context) {
	param := new(models.ParamPostShare)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	post, err := logic.CreateSharedPost(param, userID)
	if err != nil {
		if errors.Is(err, subpost.ErrInvalidParent) {
			common.ResponseError(ctx, common.CodeInvalidParent)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponsePostCreate{PostID: post.PostID})
}

// EditPostHandler 编辑帖子内容接口
//
//	@Summary		编辑帖子内容接口
//	@Description	更新帖子的内容引用，只有作者可以操作
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string				false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamPostEdit	false	"新的内容引用"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response
//	@Router			/post/edit [post]
func EditPostHandler(ctx *gin.Context) {
	param := new(models.ParamPostEdit)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	if err := logic.EditPostContent(param, userID); err != nil {
		if errors.Is(err, subpost.ErrNotFound) {
			common.ResponseError(ctx, common.CodeNoSuchPost)
		} else if errors.Is(err, subpost.ErrForbidden) {
			common.ResponseError(ctx, common.CodeForbidden)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, nil)
}

// SetPostHiddenHandler 设置帖子可见性接口
//
//	@Summary		设置帖子可见性接口
//	@Description	隐藏或恢复帖子，重复设置同一状态是幂等的
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string					false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamPostHidden	false	"目标状态"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response
//	@Router			/post/hidden [post]
func SetPostHiddenHandler(ctx *gin.Context) {
	param := new(models.ParamPostHidden)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	if err := logic.SetPostHidden(param, userID); err != nil {
		if errors.Is(err, subpost.ErrNotFound) {
			common.ResponseError(ctx, common.CodeNoSuchPost)
		} else if errors.Is(err, subpost.ErrForbidden) {
			common.ResponseError(ctx, common.CodeForbidden)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, nil)
}

// PostDetailHandler 获取帖子详情接口
//
//	@Summary		获取帖子详情接口
//	@Description	根据 post_id 查询帖子详情
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			post_id	path	int	false	"帖子 id"
//	@Success		200	{object}	common.Response{data=models.PostDTO}
//	@Router			/post/{post_id} [get]
func PostDetailHandler(ctx *gin.Context) {
	// 解析参数
	value, exists := ctx.Params.Get("post_id")
	if !exists {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}
	post_id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	post, err := logic.GetPostDetailByID(post_id, true)
	if err != nil {
		if errors.Is(err, subpost.ErrNotFound) {
			common.ResponseError(ctx, common.CodeNoSuchPost)
		} else if errors.Is(err, subpost.ErrTimeout) {
			common.ResponseError(ctx, common.CodeTimeOut)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, post)
}

// VoteHandler 帖子投票接口
//
//	@Summary		帖子投票接口
//	@Description	对活跃期内的帖子投赞成、反对或取消投票
//	@Tags			帖子相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string			false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamVote	false	"投票方向"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response
//	@Router			/post/vote [post]
func VoteHandler(ctx *gin.Context) {
	param := new(models.ParamVote)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	if err := logic.VoteForPost(userID, param.PostID, param.Direction); err != nil {
		if errors.Is(err, subpost.ErrNotFound) {
			common.ResponseError(ctx, common.CodeNoSuchPost)
		} else if errors.Is(err, subpost.ErrVoteTimeExpire) {
			common.ResponseError(ctx, common.CodeVoteTimeExpire)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, nil)
}
