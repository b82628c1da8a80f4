package logic

import (
	"testing"

	"subpost/dao/localcache"
	"subpost/dao/mysql"
	"subpost/dao/redis"
	"subpost/internal/utils"
	"subpost/models"
	"subpost/settings"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 初始化一套独立的测试环境：内存 sqlite + miniredis + localcache
func setupTestEnv(t *testing.T) {
	t.Helper()

	settings.SetDefaults()
	utils.InitSnowflake()
	utils.InitToken()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	mysql.InitWithDB(db)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redis.InitWithAddr(mr.Addr())

	localcache.InitLocalCache()
}

func mustCreateSpace(t *testing.T, ownerID int64) *models.SpaceDTO {
	t.Helper()
	space, err := CreateSpace(&models.ParamSpaceCreate{
		Handle:     "space_" + randHandleSuffix(),
		ContentRef: "QmSpaceContent",
	}, ownerID)
	require.NoError(t, err)
	return space
}

func mustCreatePost(t *testing.T, spaceID, authorID int64) *models.PostDTO {
	t.Helper()
	post, err := CreateRegularPost(&models.ParamPostCreate{
		SpaceID:    spaceID,
		ContentRef: "QmPostContent",
	}, authorID)
	require.NoError(t, err)
	return post
}

func mustCreateReply(t *testing.T, rootID, parentID, authorID int64) *models.PostDTO {
	t.Helper()
	post, err := CreateReply(&models.ParamReplyCreate{
		RootID:     rootID,
		ParentID:   parentID,
		ContentRef: "QmReplyContent",
	}, authorID)
	require.NoError(t, err)
	return post
}

// handle 全局唯一，用雪花 id 保证不冲突
func randHandleSuffix() string {
	id := utils.GenSnowflakeID()
	const digits = "0123456789"
	buf := make([]byte, 0, 20)
	for id > 0 {
		buf = append(buf, digits[id%10])
		id /= 10
	}
	return string(buf)
}
