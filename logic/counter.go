package logic

import (
	"subpost/dao/mysql"
	subpost "subpost/errors"
	"subpost/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 一次业务事件对计数字段的全部影响，统一生成后在同一个事务中应用
type CounterDelta struct {
	PostID int64
	Field  string
	Offset int
}

// 新回复创建后，从父节点到根节点的每个祖先的 replies_count 都加一
func ReplyCreatedDeltas(ancestorIDs []int64) []CounterDelta {
	deltas := make([]CounterDelta, 0, len(ancestorIDs))
	for _, id := range ancestorIDs {
		deltas = append(deltas, CounterDelta{PostID: id, Field: "replies_count", Offset: 1})
	}
	return deltas
}

// 回复的可见性变化后，每个祖先的 hidden_replies_count 相应加减一
// 只统计该节点本身，不统计其子树
func HiddenChangedDeltas(ancestorIDs []int64, hidden bool) []CounterDelta {
	offset := 1
	if !hidden {
		offset = -1
	}
	deltas := make([]CounterDelta, 0, len(ancestorIDs))
	for _, id := range ancestorIDs {
		deltas = append(deltas, CounterDelta{PostID: id, Field: "hidden_replies_count", Offset: offset})
	}
	return deltas
}

// 转发只影响被转发的原帖
func PostSharedDeltas(originalID int64) []CounterDelta {
	return []CounterDelta{{PostID: originalID, Field: "shares_count", Offset: 1}}
}

// 从 post 的父节点开始，沿 parent 链一直走到根节点
// 返回的顺序是从近到远，根节点在最后
func collectAncestorIDs(tx *gorm.DB, post *models.Post) ([]int64, error) {
	if post.Kind != models.KindComment {
		return nil, nil
	}

	ancestorIDs := make([]int64, 0, 4)
	currID := post.ParentID
	for {
		ancestorIDs = append(ancestorIDs, currID)
		if currID == post.RootID { // 到达根节点
			break
		}
		curr, err := mysql.SelectPostByPostID(tx, currID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.Wrap(subpost.ErrInternal, "logic:collectAncestorIDs: broken parent chain")
			}
			return nil, errors.Wrap(err, "logic:collectAncestorIDs: SelectPostByPostID")
		}
		if curr.RootID != post.RootID { // 父链越界，说明树结构被破坏
			return nil, errors.Wrap(subpost.ErrInternal, "logic:collectAncestorIDs: parent chain crosses root")
		}
		currID = curr.ParentID
	}

	return ancestorIDs, nil
}

func applyCounterDeltas(tx *gorm.DB, deltas []CounterDelta) error {
	for _, delta := range deltas {
		if err := mysql.IncrPostCounterField(tx, delta.Field, delta.PostID, delta.Offset); err != nil {
			return errors.Wrap(err, "logic:applyCounterDeltas: IncrPostCounterField")
		}
	}
	return nil
}
