package mysql

import (
	"testing"

	subpost "subpost/errors"
	"subpost/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	InitWithDB(d)
}

func TestIncrPostCounterField(t *testing.T) {
	setupTestDB(t)

	post := &models.Post{PostID: 1, Kind: models.KindRegular, AuthorID: 1, ContentRef: "Qm"}
	require.NoError(t, CreatePost(nil, post))

	require.NoError(t, IncrPostCounterField(nil, "replies_count", 1, 2))
	row, err := SelectPostByPostID(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, row.RepliesCount)

	require.NoError(t, IncrPostCounterField(nil, "replies_count", 1, -2))
	row, _ = SelectPostByPostID(nil, 1)
	assert.Equal(t, 0, row.RepliesCount)

	// 计数不允许为负，下溢按内部错误处理，不做截断
	err = IncrPostCounterField(nil, "replies_count", 1, -1)
	assert.ErrorIs(t, err, subpost.ErrInternal)
	row, _ = SelectPostByPostID(nil, 1)
	assert.Equal(t, 0, row.RepliesCount)

	// 目标行不存在同样是内部错误（悬空的索引项）
	err = IncrPostCounterField(nil, "replies_count", 404, 1)
	assert.ErrorIs(t, err, subpost.ErrInternal)

	// offset 为 0 是 no-op
	assert.NoError(t, IncrPostCounterField(nil, "replies_count", 404, 0))
}

// 隐藏状态的翻转判定必须落在条件更新里，重复请求不得再次生效
func TestUpdatePostHiddenConditional(t *testing.T) {
	setupTestDB(t)

	post := &models.Post{PostID: 1, Kind: models.KindRegular, AuthorID: 1, ContentRef: "Qm"}
	require.NoError(t, CreatePost(nil, post))

	changed, err := UpdatePostHidden(nil, 1, true)
	require.NoError(t, err)
	assert.True(t, changed)

	// 目标状态已经生效，再设置一次不算翻转
	changed, err = UpdatePostHidden(nil, 1, true)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = UpdatePostHidden(nil, 1, false)
	require.NoError(t, err)
	assert.True(t, changed)

	// 不存在的帖子也没有翻转
	changed, err = UpdatePostHidden(nil, 404, true)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSelectPostByPostIDNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := SelectPostByPostID(nil, 404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
