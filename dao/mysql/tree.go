package mysql

import (
	"subpost/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateReplyIndex(tx *gorm.DB, index *models.ReplyIndex) error {
	useDB := getUseDB(tx)

	res := useDB.Create(index)
	return errors.Wrap(res.Error, "mysql: CreateReplyIndex failed")
}

// 同一 parent_key 下已有的子节点数，用于分配下一个 seq
// 调用方必须先在同一事务内更新父节点计数，持有其行锁后再计数
func CountReplyIndex(tx *gorm.DB, rootID, parentID int64) (int, error) {
	useDB := getUseDB(tx)

	var count int64
	res := useDB.Model(&models.ReplyIndex{}).Where("root_id = ? AND parent_id = ?", rootID, parentID).Count(&count)
	return int(count), errors.Wrap(res.Error, "mysql: CountReplyIndex failed")
}

// 获取 parent_key 下的所有子节点 ID，seq 升序（即插入序）
// 未知的 parent_key 返回空序列，不是错误
func SelectChildPostIDs(tx *gorm.DB, rootID, parentID int64) ([]int64, error) {
	useDB := getUseDB(tx)

	postIDs := make([]int64, 0)
	res := useDB.Model(&models.ReplyIndex{}).Select("post_id").
		Where("root_id = ? AND parent_id = ?", rootID, parentID).
		Order("seq").Scan(&postIDs)
	return postIDs, errors.Wrap(res.Error, "mysql: SelectChildPostIDs failed")
}

// 获取 parent_key 下的完整索引行（含 seq），缓存重建用
func SelectReplyIndexes(tx *gorm.DB, rootID, parentID int64) ([]models.ReplyIndex, error) {
	useDB := getUseDB(tx)

	indexes := make([]models.ReplyIndex, 0)
	res := useDB.Model(&models.ReplyIndex{}).
		Where("root_id = ? AND parent_id = ?", rootID, parentID).
		Order("seq").Find(&indexes)
	return indexes, errors.Wrap(res.Error, "mysql: SelectReplyIndexes failed")
}
