package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyCreatedDeltas(t *testing.T) {
	deltas := ReplyCreatedDeltas([]int64{100, 200, 300})
	assert.Len(t, deltas, 3)
	for i, id := range []int64{100, 200, 300} {
		assert.Equal(t, id, deltas[i].PostID)
		assert.Equal(t, "replies_count", deltas[i].Field)
		assert.Equal(t, 1, deltas[i].Offset)
	}

	assert.Empty(t, ReplyCreatedDeltas(nil))
}

func TestHiddenChangedDeltas(t *testing.T) {
	hide := HiddenChangedDeltas([]int64{100, 200}, true)
	assert.Len(t, hide, 2)
	for _, d := range hide {
		assert.Equal(t, "hidden_replies_count", d.Field)
		assert.Equal(t, 1, d.Offset)
	}

	// 撤销隐藏是严格的逆操作
	unhide := HiddenChangedDeltas([]int64{100, 200}, false)
	for i, d := range unhide {
		assert.Equal(t, hide[i].PostID, d.PostID)
		assert.Equal(t, -d.Offset, hide[i].Offset)
	}
}

func TestPostSharedDeltas(t *testing.T) {
	deltas := PostSharedDeltas(42)
	assert.Len(t, deltas, 1)
	assert.Equal(t, int64(42), deltas[0].PostID)
	assert.Equal(t, "shares_count", deltas[0].Field)
	assert.Equal(t, 1, deltas[0].Offset)
}
