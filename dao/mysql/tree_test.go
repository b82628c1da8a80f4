package mysql

import (
	"testing"

	"subpost/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 同一 parent_key 下 seq 有唯一索引兜底，重复序号必须被拒绝
func TestCreateReplyIndexSeqUnique(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreateReplyIndex(nil, &models.ReplyIndex{
		RootID: 1, ParentID: 1, PostID: 10, Seq: 1,
	}))
	err := CreateReplyIndex(nil, &models.ReplyIndex{
		RootID: 1, ParentID: 1, PostID: 11, Seq: 1,
	})
	assert.Error(t, err)

	// 不同 parent_key 下的相同 seq 互不影响
	assert.NoError(t, CreateReplyIndex(nil, &models.ReplyIndex{
		RootID: 1, ParentID: 2, PostID: 12, Seq: 1,
	}))
}

func TestSelectChildPostIDsOrderedBySeq(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, CreateReplyIndex(nil, &models.ReplyIndex{RootID: 1, ParentID: 1, PostID: 30, Seq: 3}))
	require.NoError(t, CreateReplyIndex(nil, &models.ReplyIndex{RootID: 1, ParentID: 1, PostID: 10, Seq: 1}))
	require.NoError(t, CreateReplyIndex(nil, &models.ReplyIndex{RootID: 1, ParentID: 1, PostID: 20, Seq: 2}))

	ids, err := SelectChildPostIDs(nil, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, ids)

	// 未知 parent_key 返回空序列，不是错误
	ids, err = SelectChildPostIDs(nil, 1, 404)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
