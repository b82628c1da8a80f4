package redis

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

/* subpost:token: */

func SetUserAccessToken(userID int64, token string, expire time.Duration) error {
	key := KeyAccessTokenStringPF + strconv.FormatInt(userID, 10)
	return errors.Wrap(set(key, token, expire), "redis:SetUserAccessToken")
}

func SetUserRefreshToken(userID int64, token string, expire time.Duration) error {
	key := KeyRefreshTokenStringPF + strconv.FormatInt(userID, 10)
	return errors.Wrap(set(key, token, expire), "redis:SetUserRefreshToken")
}

func GetUserAccessToken(userID int64) (string, error) {
	key := KeyAccessTokenStringPF + strconv.FormatInt(userID, 10)
	cmd := get(key)
	return cmd.Val(), errors.Wrap(cmd.Err(), "redis:GetUserAccessToken")
}

func GetUserRefreshToken(userID int64) (string, error) {
	key := KeyRefreshTokenStringPF + strconv.FormatInt(userID, 10)
	cmd := get(key)
	return cmd.Val(), errors.Wrap(cmd.Err(), "redis:GetUserRefreshToken")
}
