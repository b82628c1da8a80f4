package logic

import (
	"testing"

	subpost "subpost/errors"
	"subpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpace(t *testing.T) {
	setupTestEnv(t)

	space, err := CreateSpace(&models.ParamSpaceCreate{Handle: "team_rocket", ContentRef: "QmSpace"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "team_rocket", space.Handle)
	assert.Equal(t, int64(1), space.OwnerID)
	assert.Equal(t, 0, space.PostsCount)

	// handle 全局唯一
	_, err = CreateSpace(&models.ParamSpaceCreate{Handle: "team_rocket", ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrSpaceHandleExist)

	// 大写、过短、非法字符都被拒绝
	for _, handle := range []string{"ABCDEF", "abc", "my-space", "空间名字"} {
		_, err = CreateSpace(&models.ParamSpaceCreate{Handle: handle, ContentRef: "Qm"}, 1)
		assert.ErrorIs(t, err, subpost.ErrInvalidHandle, "handle: %s", handle)
	}
}

func TestUpdateSpace(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)

	hidden := true
	require.NoError(t, UpdateSpace(&models.ParamSpaceUpdate{
		SpaceID:    space.SpaceID,
		ContentRef: "QmUpdated",
		Hidden:     &hidden,
	}, 1))

	detail, err := GetSpaceDetailByID(space.SpaceID)
	require.NoError(t, err)
	assert.Equal(t, "QmUpdated", detail.ContentRef)
	assert.True(t, detail.Hidden)

	// 只有 owner 可以修改
	err = UpdateSpace(&models.ParamSpaceUpdate{SpaceID: space.SpaceID, ContentRef: "Qm"}, 999)
	assert.ErrorIs(t, err, subpost.ErrForbidden)

	err = UpdateSpace(&models.ParamSpaceUpdate{SpaceID: 404, ContentRef: "Qm"}, 1)
	assert.ErrorIs(t, err, subpost.ErrNoSuchSpace)
}

func TestGetSpaceList(t *testing.T) {
	setupTestEnv(t)
	for i := 0; i < 3; i++ {
		mustCreateSpace(t, int64(i+1))
	}

	// Total 是全表数量，与当前页的条数无关
	list, err := GetSpaceList(&models.ParamSpaceList{PageNum: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Spaces, 2)

	list, err = GetSpaceList(&models.ParamSpaceList{PageNum: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Len(t, list.Spaces, 1)
}
