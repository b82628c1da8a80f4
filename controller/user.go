package controller

import (
	common "subpost/controller/Common"
	"subpost/internal/utils"
	"subpost/logger"
	"subpost/logic"
	"subpost/models"

	subpost "subpost/errors"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// UserRegisterHandler 用户注册接口
//
//	@Summary		用户注册接口
//	@Description	用户注册接口
//	@Tags			用户相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			user_info	body		models.ParamUserRegist	false	"用户信息（包含用户名、密码、重复密码）"
//	@Success		200			{object}	common.Response{data=common.ResponseTokens}
//	@Router			/user/register [post]
func UserRegisterHandler(ctx *gin.Context) {
	// 数据解析
	var usr models.ParamUserRegist

	// 使用 validator 在解析数据的同时做参数校验
	if err := ctx.ShouldBindJSON(&usr); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	// 注册
	access_token, refresh_token, err := logic.UserRegist(&models.User{
		UserName: usr.Username,
		Password: usr.Password,
	})
	if err != nil {
		if errors.Is(err, subpost.ErrUserExist) {
			common.ResponseError(ctx, common.CodeUserExist)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseTokens{
		AccessToken:  access_token,
		RefreshToken: refresh_token,
	})
}

// UserLoginHandler 用户登录接口
//
//	@Summary		用户登录接口
//	@Description	用户登录接口
//	@Tags			用户相关接口
//	@Accept			application/json
//	@Produce		application/json
//	@Param			usernameANDpassword	body		models.ParamUserLogin	false	"用户信息（包含用户名、密码）"
//	@Success		200					{object}	common.Response{data=common.ResponseUserLogin}
//	@Router			/user/login [post]
func UserLoginHandler(ctx *gin.Context) {
	// 解析、校验数据
	var params models.ParamUserLogin
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	usr := &models.User{
		UserName: params.Username,
		Password: params.Password,
	}
	access_token, refresh_token, err := logic.UserLogin(usr)
	if err != nil {
		if errors.Is(err, subpost.ErrUserNotExist) {
			common.ResponseError(ctx, common.CodeUserNotExist)
		} else if errors.Is(err, subpost.ErrWrongPassword) {
			common.ResponseError(ctx, common.CodeWrongPassword)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			// 打日志
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserLogin{
		UserName:     usr.UserName,
		UserID:       usr.UserID,
		AccessToken:  access_token,
		RefreshToken: refresh_token,
	})
}
