package logic

import (
	"testing"

	subpost "subpost/errors"
	"subpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegistAndLogin(t *testing.T) {
	setupTestEnv(t)

	access, refresh, err := UserRegist(&models.User{UserName: "skywalker", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	// 重复注册
	_, _, err = UserRegist(&models.User{UserName: "skywalker", Password: "secret123"})
	assert.ErrorIs(t, err, subpost.ErrUserExist)

	// 正常登录
	access, _, err = UserLogin(&models.User{UserName: "skywalker", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	// 密码错误
	_, _, err = UserLogin(&models.User{UserName: "skywalker", Password: "wrong_pass"})
	assert.ErrorIs(t, err, subpost.ErrWrongPassword)

	// 用户不存在
	_, _, err = UserLogin(&models.User{UserName: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, subpost.ErrUserNotExist)
}
