package logic

import (
	"subpost/dao/redis"
	subpost "subpost/errors"
	"subpost/internal/utils"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// 使用 refreshToken 刷新（获取）accessToken
func RefreshToken(refresh_token, access_token string) (string, error) {
	jwtKey := utils.GetJwtKey()

	// 校验 refresh_token 是否有效（包括是否过期）
	_, err := jwt.ParseWithClaims(refresh_token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", subpost.ErrExpiredToken
		}
		return "", subpost.ErrInvalidToken
	}

	usrClaims := new(utils.UserClaims)
	_, err = jwt.ParseWithClaims(access_token, usrClaims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	// 检验 access token 是否过期
	if err != nil && errors.Is(err, jwt.ErrTokenExpired) {
		// 过期，生成新的 access token
		// 为了判断登录状态是否过期，检验 refresh token 是否与 redis 中的一致
		rdb_refresh_token, err := redis.GetUserRefreshToken(usrClaims.UserID)
		if err != nil || rdb_refresh_token != refresh_token {
			return "", subpost.ErrExpiredToken // refresh_token 不存在或者过期
		}

		return utils.GenToken(usrClaims.UserID, utils.AccessType)
	}

	return "", nil // 不需要更新
}

func SetUserAccessToken(userID int64, accessTokenStr string, expireDuration time.Duration) error {
	return redis.SetUserAccessToken(userID, accessTokenStr, expireDuration)
}

func GetUserAccessToken(userID int64) (string, error) {
	access_token, err := redis.GetUserAccessToken(userID)
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.Wrap(err, "logic:GetUserAccessToken: GetUserAccessToken")
	}
	return access_token, nil
}

// 刷新 access_token、refresh_token 并返回
func genTokenHelper(UserID int64) (string, string, error) {
	// 生成 access_token
	access_token, err0 := utils.GenToken(UserID, utils.AccessType)
	refresh_token, err1 := utils.GenToken(0, utils.RefreshType)
	if err0 != nil || err1 != nil {
		return "", "", subpost.ErrGenToken
	}

	// 刷新 redis 中的 access_token
	// 刷新 redis 中的 refresh_token
	if err := redis.SetUserAccessToken(UserID, access_token, utils.GetAccessTokenExpireDuration()); err != nil {
		return "", "", err
	}
	if err := redis.SetUserRefreshToken(UserID, refresh_token, utils.GetRefreshTokenExpireDuration()); err != nil {
		return "", "", err
	}

	return access_token, refresh_token, nil
}
