package logic

import (
	"testing"

	"subpost/dao/mysql"
	subpost "subpost/errors"
	"subpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRegularPost(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)

	post := mustCreatePost(t, space.SpaceID, 1)
	assert.Equal(t, models.KindRegular, post.Kind)
	assert.Equal(t, 0, post.RepliesCount)
	assert.Equal(t, 0, post.HiddenRepliesCount)
	assert.Equal(t, 0, post.SharesCount)
	assert.False(t, post.Hidden)

	// 空间计数随发帖递增
	s, err := mysql.SelectSpaceBySpaceID(nil, space.SpaceID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.PostsCount)

	// 不存在的空间
	_, err = CreateRegularPost(&models.ParamPostCreate{SpaceID: 404, ContentRef: "Qm"}, 1)
	assert.ErrorIs(t, err, subpost.ErrNoSuchSpace)
}

func TestCreateReplyPropagatesCounters(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	root := mustCreatePost(t, space.SpaceID, 1)

	// 一级回复
	c1 := mustCreateReply(t, root.PostID, 0, 2)
	assert.Equal(t, models.KindComment, c1.Kind)
	assert.Equal(t, root.PostID, c1.RootID)
	assert.Equal(t, root.PostID, c1.ParentID) // 直接回复根帖时 parent 归一化为根帖

	// 二级回复，计数沿祖先链传播
	c2 := mustCreateReply(t, root.PostID, c1.PostID, 3)
	assert.Equal(t, c1.PostID, c2.ParentID)

	rootRow, err := mysql.SelectPostByPostID(nil, root.PostID)
	require.NoError(t, err)
	assert.Equal(t, 2, rootRow.RepliesCount) // 根帖统计整棵子树

	c1Row, err := mysql.SelectPostByPostID(nil, c1.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, c1Row.RepliesCount)

	c2Row, err := mysql.SelectPostByPostID(nil, c2.PostID)
	require.NoError(t, err)
	assert.Equal(t, 0, c2Row.RepliesCount)
}

func TestCreateReplyInvalidParent(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	rootA := mustCreatePost(t, space.SpaceID, 1)
	rootB := mustCreatePost(t, space.SpaceID, 1)
	c1 := mustCreateReply(t, rootA.PostID, 0, 2)

	// 根节点不存在
	_, err := CreateReply(&models.ParamReplyCreate{RootID: 404, ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)

	// 根节点不是普通帖子
	_, err = CreateReply(&models.ParamReplyCreate{RootID: c1.PostID, ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)

	// 父节点不存在
	_, err = CreateReply(&models.ParamReplyCreate{RootID: rootA.PostID, ParentID: 404, ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)

	// 父节点挂在另一棵树上
	cB := mustCreateReply(t, rootB.PostID, 0, 2)
	_, err = CreateReply(&models.ParamReplyCreate{RootID: rootA.PostID, ParentID: cB.PostID, ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)

	// 父节点是普通帖子，但不是本树的根
	_, err = CreateReply(&models.ParamReplyCreate{RootID: rootA.PostID, ParentID: rootB.PostID, ContentRef: "Qm"}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)
}

func TestCreateSharedPost(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	original := mustCreatePost(t, space.SpaceID, 1)

	shared, err := CreateSharedPost(&models.ParamPostShare{OriginalID: original.PostID, ContentRef: "Qm"}, 2)
	require.NoError(t, err)
	assert.Equal(t, models.KindShared, shared.Kind)
	assert.Equal(t, original.PostID, shared.OriginalID)

	// 只有原帖的 shares_count 递增
	row, err := mysql.SelectPostByPostID(nil, original.PostID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.SharesCount)
	assert.Equal(t, 0, row.RepliesCount)

	// 不允许转发一个转发
	_, err = CreateSharedPost(&models.ParamPostShare{OriginalID: shared.PostID}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)

	// 原帖不存在
	_, err = CreateSharedPost(&models.ParamPostShare{OriginalID: 404}, 2)
	assert.ErrorIs(t, err, subpost.ErrInvalidParent)
}

func TestSetPostHidden(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	root := mustCreatePost(t, space.SpaceID, 1)
	c1 := mustCreateReply(t, root.PostID, 0, 2)
	c2 := mustCreateReply(t, root.PostID, c1.PostID, 3)

	hidden := true
	visible := false

	// 隐藏深层回复，祖先的 hidden_replies_count 统计它
	require.NoError(t, SetPostHidden(&models.ParamPostHidden{PostID: c2.PostID, Hidden: &hidden}, 3))

	rootRow, _ := mysql.SelectPostByPostID(nil, root.PostID)
	c1Row, _ := mysql.SelectPostByPostID(nil, c1.PostID)
	assert.Equal(t, 1, rootRow.HiddenRepliesCount)
	assert.Equal(t, 1, c1Row.HiddenRepliesCount)
	assert.LessOrEqual(t, rootRow.HiddenRepliesCount, rootRow.RepliesCount)

	// 重复隐藏是幂等的，计数不能再变
	require.NoError(t, SetPostHidden(&models.ParamPostHidden{PostID: c2.PostID, Hidden: &hidden}, 3))
	rootRow, _ = mysql.SelectPostByPostID(nil, root.PostID)
	assert.Equal(t, 1, rootRow.HiddenRepliesCount)

	// 恢复可见，计数回退
	require.NoError(t, SetPostHidden(&models.ParamPostHidden{PostID: c2.PostID, Hidden: &visible}, 3))
	rootRow, _ = mysql.SelectPostByPostID(nil, root.PostID)
	c1Row, _ = mysql.SelectPostByPostID(nil, c1.PostID)
	assert.Equal(t, 0, rootRow.HiddenRepliesCount)
	assert.Equal(t, 0, c1Row.HiddenRepliesCount)

	// 隐藏普通帖子影响空间计数
	require.NoError(t, SetPostHidden(&models.ParamPostHidden{PostID: root.PostID, Hidden: &hidden}, 1))
	s, _ := mysql.SelectSpaceBySpaceID(nil, space.SpaceID)
	assert.Equal(t, 1, s.HiddenPostsCount)

	// 非作者不能操作
	err := SetPostHidden(&models.ParamPostHidden{PostID: c1.PostID, Hidden: &hidden}, 999)
	assert.ErrorIs(t, err, subpost.ErrForbidden)

	// 不存在的帖子
	err = SetPostHidden(&models.ParamPostHidden{PostID: 404, Hidden: &hidden}, 1)
	assert.ErrorIs(t, err, subpost.ErrNotFound)
}

func TestEditPostContent(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	post := mustCreatePost(t, space.SpaceID, 1)

	require.NoError(t, EditPostContent(&models.ParamPostEdit{PostID: post.PostID, ContentRef: "QmNew"}, 1))

	row, err := mysql.SelectPostByPostID(nil, post.PostID)
	require.NoError(t, err)
	assert.Equal(t, "QmNew", row.ContentRef)
	// extension 字段不可变
	assert.Equal(t, models.KindRegular, row.Kind)
	assert.Equal(t, space.SpaceID, row.SpaceID)

	assert.ErrorIs(t, EditPostContent(&models.ParamPostEdit{PostID: post.PostID, ContentRef: "Qm"}, 999), subpost.ErrForbidden)
	assert.ErrorIs(t, EditPostContent(&models.ParamPostEdit{PostID: 404, ContentRef: "Qm"}, 1), subpost.ErrNotFound)
}

func TestGetPostDetailByID(t *testing.T) {
	setupTestEnv(t)
	space := mustCreateSpace(t, 1)
	post := mustCreatePost(t, space.SpaceID, 1)

	detail, err := GetPostDetailByID(post.PostID, false)
	require.NoError(t, err)
	assert.Equal(t, post.PostID, detail.PostID)
	assert.Equal(t, "QmPostContent", detail.ContentRef)

	_, err = GetPostDetailByID(404, false)
	assert.ErrorIs(t, err, subpost.ErrNotFound)
}
