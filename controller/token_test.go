package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"subpost/dao/redis"
	"subpost/internal/utils"
	"subpost/settings"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// access_token 尚未过期时，刷新接口不应往 redis 写入空 token
func TestRefreshTokenHandlerAccessTokenStillValid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	settings.SetDefaults()
	utils.InitToken()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redis.InitWithAddr(mr.Addr())

	refreshToken, err := utils.GenToken(0, utils.RefreshType)
	require.NoError(t, err)
	accessToken, err := utils.GenToken(42, utils.AccessType)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/token/refresh?access_token="+accessToken, nil)
	ctx.Request.Header.Set("Authorization", "Bearer "+refreshToken)

	RefreshTokenHandler(ctx)

	assert.Equal(t, http.StatusOK, w.Code)
	// user_id 0 名下不能出现凭空写入的 token
	assert.False(t, mr.Exists(redis.KeyAccessTokenStringPF+"0"))
}
