package redis

import (
	"context"
	"fmt"
	subpost "subpost/errors"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

/* subpost:tree: */

func treeIndexKey(rootID, parentID int64) string {
	return fmt.Sprintf("%v%v_%v", KeyTreeIndexZSetPF, rootID, parentID)
}

func AddTreeIndexMembers(rootID, parentID int64, postIDs []int64, seqs []int) error {
	if len(postIDs) != len(seqs) {
		return errors.Wrap(subpost.ErrInternal, "redis:AddTreeIndexMembers: postIDs and seqs length not equal")
	}
	key := treeIndexKey(rootID, parentID)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	pipe := rdb.Pipeline()
	for i := 0; i < len(postIDs); i++ {
		pipe.ZAdd(ctx, key, redis.Z{
			Member: postIDs[i],
			Score:  float64(seqs[i]),
		})
	}
	_, err := pipe.Exec(ctx)

	return errors.Wrap(err, "redis:AddTreeIndexMembers: ZAdd")
}

// 按 seq 升序返回 parent_key 下的全部子节点，整页列表一次读出，
// 同一次查询内不会看到并发写入的中间状态
func GetTreeIndexMembers(rootID, parentID int64) ([]int64, error) {
	key := treeIndexKey(rootID, parentID)

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZRange(ctx, key, 0, -1)
	if cmd.Err() != nil {
		return nil, errors.Wrap(cmd.Err(), "redis:GetTreeIndexMembers: ZRange")
	}

	members := cmd.Val()
	postIDs := make([]int64, 0, len(members))
	for _, member := range members {
		postID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "redis:GetTreeIndexMembers: ParseInt")
		}
		postIDs = append(postIDs, postID)
	}
	return postIDs, nil
}

func TreeIndexExists(rootID, parentID int64) (bool, error) {
	return Exists(treeIndexKey(rootID, parentID))
}
