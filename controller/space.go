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

// CreateSpaceHandler 创建空间接口
//
//	@Summary		创建空间接口
//	@Description	创建一个新的空间，handle 全局唯一
//	@Tags			空间相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string					false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamSpaceCreate	false	"空间信息"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response{data=common.ResponseSpaceCreate}
//	@Router			/space/create [post]
func CreateSpaceHandler(ctx *gin.Context) {
	param := new(models.ParamSpaceCreate)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	space, err := logic.CreateSpace(param, userID)
	if err != nil {
		if errors.Is(err, subpost.ErrSpaceHandleExist) {
			common.ResponseError(ctx, common.CodeSpaceHandleExist)
		} else if errors.Is(err, subpost.ErrInvalidHandle) {
			common.ResponseError(ctx, common.CodeInvalidHandle)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseSpaceCreate{
		SpaceID: space.SpaceID,
		Handle:  space.Handle,
	})
}

// UpdateSpaceHandler 更新空间接口
//
//	@Summary		更新空间接口
//	@Description	更新空间的 handle、内容引用或可见性，只有 owner 可以操作
//	@Tags			空间相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			Authorization	header	string					false	"Bearer 用户令牌"
//	@Param			object			body	models.ParamSpaceUpdate	false	"更新内容"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	common.Response
//	@Router			/space/update [post]
func UpdateSpaceHandler(ctx *gin.Context) {
	param := new(models.ParamSpaceUpdate)
	if err := ctx.ShouldBindJSON(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}

	if err := logic.UpdateSpace(param, userID); err != nil {
		if errors.Is(err, subpost.ErrNoSuchSpace) {
			common.ResponseError(ctx, common.CodeNoSuchSpace)
		} else if errors.Is(err, subpost.ErrForbidden) {
			common.ResponseError(ctx, common.CodeForbidden)
		} else if errors.Is(err, subpost.ErrSpaceHandleExist) {
			common.ResponseError(ctx, common.CodeSpaceHandleExist)
		} else if errors.Is(err, subpost.ErrInvalidHandle) {
			common.ResponseError(ctx, common.CodeInvalidHandle)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, nil)
}

// SpaceDetailHandler 获取空间详情接口
//
//	@Summary		获取空间详情接口
//	@Description	根据 space_id 查询空间详情
//	@Tags			空间相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			space_id	path	int	false	"空间 id"
//	@Success		200	{object}	common.Response{data=models.SpaceDTO}
//	@Router			/space/{space_id} [get]
func SpaceDetailHandler(ctx *gin.Context) {
	value, exists := ctx.Params.Get("space_id")
	if !exists {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}
	space_id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	space, err := logic.GetSpaceDetailByID(space_id)
	if err != nil {
		if errors.Is(err, subpost.ErrNoSuchSpace) {
			common.ResponseError(ctx, common.CodeNoSuchSpace)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, space)
}

// SpaceListHandler 空间列表接口
//
//	@Summary		空间列表接口
//	@Description	分页查询空间列表
//	@Tags			空间相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			page	query	int	false	"页码"
//	@Param			size	query	int	false	"页大小"
//	@Success		200	{object}	common.Response{data=models.SpaceListDTO}
//	@Router			/space/list [get]
func SpaceListHandler(ctx *gin.Context) {
	param := &models.ParamSpaceList{
		PageNum:  1,
		PageSize: 10,
	}
	if err := ctx.ShouldBindQuery(param); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	list, err := logic.GetSpaceList(param)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, list)
}
