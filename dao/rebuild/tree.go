package rebuild

import (
	"subpost/dao/mysql"
	"subpost/dao/redis"
	"subpost/logger"

	"github.com/pkg/errors"
)

// 返回参数：child post_id 列表、是否重建、错误
// 如果成功重建，直接返回从 db 读到的 post_id，避免调用方再读一次缓存
func RebuildTreeIndex(rootID, parentID int64) ([]int64, bool, error) {
	exist, err := redis.TreeIndexExists(rootID, parentID)
	if err != nil {
		return nil, false, errors.Wrap(err, "rebuild:RebuildTreeIndex: TreeIndexExists")
	}
	if exist { // 不需要重建
		return nil, false, nil
	}

	indexes, err := mysql.SelectReplyIndexes(nil, rootID, parentID)
	if err != nil {
		return nil, false, errors.Wrap(err, "rebuild:RebuildTreeIndex: SelectReplyIndexes")
	}
	if len(indexes) == 0 { // 该节点下没有回复
		return nil, true, nil
	}

	postIDs := make([]int64, 0, len(indexes))
	seqs := make([]int, 0, len(indexes))
	for _, index := range indexes {
		postIDs = append(postIDs, index.PostID)
		seqs = append(seqs, index.Seq)
	}

	if err := redis.AddTreeIndexMembers(rootID, parentID, postIDs, seqs); err != nil {
		return nil, false, errors.Wrap(err, "rebuild:RebuildTreeIndex: AddTreeIndexMembers")
	}

	logger.Infof("rebuild:RebuildTreeIndex: Rebuild 1 data from mysql to redis")
	return postIDs, true, nil
}
