package logic

import (
	"testing"

	"subpost/dao/mysql"
	subpost "subpost/errors"
	"subpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRepliesPagination(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	root := mustCreatePost(t, space.SpaceID, 1)

	created := make([]int64, 0, 7)
	for i := 0; i < 7; i++ {
		c := mustCreateReply(t, root.PostID, 0, 2)
		created = append(created, c.PostID)
	}

	// 逐页遍历，页与页之间不重不漏，顺序与插入一致
	seen := make([]int64, 0, len(created))
	cursor := ""
	for {
		list, err := GetReplies(&models.ParamReplyList{
			RootID:   root.PostID,
			Cursor:   cursor,
			PageSize: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, len(created), list.Total)
		for _, dto := range list.Replies {
			seen = append(seen, dto.PostID)
		}
		if list.NextCursor == "" {
			break
		}
		cursor = list.NextCursor
	}
	assert.Equal(t, created, seen)
}

func TestGetRepliesNestedNode(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	root := mustCreatePost(t, space.SpaceID, 1)
	c1 := mustCreateReply(t, root.PostID, 0, 2)
	c2 := mustCreateReply(t, root.PostID, c1.PostID, 3)
	c3 := mustCreateReply(t, root.PostID, c1.PostID, 4)

	// 查询的是直接回复，不含更深的层级
	list, err := GetReplies(&models.ParamReplyList{
		RootID:   root.PostID,
		ParentID: c1.PostID,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, []int64{c2.PostID, c3.PostID}, []int64{list.Replies[0].PostID, list.Replies[1].PostID})

	// 根节点视角只有 c1
	list, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, c1.PostID, list.Replies[0].PostID)

	// 没有回复的节点返回空页
	list, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, ParentID: c2.PostID, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
	assert.Empty(t, list.Replies)
	assert.Empty(t, list.NextCursor)
}

func TestGetRepliesBadParams(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	root := mustCreatePost(t, space.SpaceID, 1)
	mustCreateReply(t, root.PostID, 0, 2)

	// 页大小超过配置上限
	_, err := GetReplies(&models.ParamReplyList{RootID: root.PostID, PageSize: 101})
	assert.ErrorIs(t, err, subpost.ErrPageSizeExceeded)

	// 页大小必须为正，0 会让翻页原地踏步
	_, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, PageSize: 0})
	assert.ErrorIs(t, err, subpost.ErrPageSizeExceeded)
	_, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, PageSize: -1})
	assert.ErrorIs(t, err, subpost.ErrPageSizeExceeded)

	// 不是 base64 的游标
	_, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, Cursor: "!!!", PageSize: 10})
	assert.ErrorIs(t, err, subpost.ErrInvalidCursor)

	// base64 但不是数字
	_, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, Cursor: "YWJj", PageSize: 10})
	assert.ErrorIs(t, err, subpost.ErrInvalidCursor)

	// 越过快照末尾
	_, err = GetReplies(&models.ParamReplyList{RootID: root.PostID, Cursor: encodeCursor(100), PageSize: 10})
	assert.ErrorIs(t, err, subpost.ErrInvalidCursor)

	// 恰好指向末尾是合法的空页
	list, err := GetReplies(&models.ParamReplyList{RootID: root.PostID, Cursor: encodeCursor(1), PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, list.Replies)
	assert.Empty(t, list.NextCursor)
}

func TestHydratePosts(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	a := mustCreatePost(t, space.SpaceID, 1)
	b := mustCreatePost(t, space.SpaceID, 1)
	c := mustCreatePost(t, space.SpaceID, 1)

	// 保持传入顺序
	dtos, err := HydratePosts([]int64{c.PostID, a.PostID, b.PostID})
	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, c.PostID, dtos[0].PostID)
	assert.Equal(t, a.PostID, dtos[1].PostID)
	assert.Equal(t, b.PostID, dtos[2].PostID)

	// 已删除的 id 跳过，不报错
	require.NoError(t, mysql.GetDB().Where("post_id = ?", a.PostID).Delete(&models.Post{}).Error)
	dtos, err = HydratePosts([]int64{c.PostID, a.PostID, b.PostID})
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, c.PostID, dtos[0].PostID)
	assert.Equal(t, b.PostID, dtos[1].PostID)
}
