package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

/* subpost:post: 投票与分数 */

func SetPostTime(postID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZAdd(ctx, KeyPostTimeZset, redis.Z{
		Member: postID,
		Score:  float64(time.Now().Unix()),
	})
	return errors.Wrap(cmd.Err(), "redis:SetPostTime: ZAdd")
}

func GetPostPublishTime(postID int64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZScore(ctx, KeyPostTimeZset, strconv.FormatInt(postID, 10))
	if cmd.Err() != nil {
		return 0, errors.Wrap(cmd.Err(), "redis:GetPostPublishTime: ZScore")
	}
	return cmd.Val(), nil
}

func GetUserPostDirection(postID, userID int64) (int8, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZScore(ctx, KeyPostVotedZsetPF+strconv.FormatInt(postID, 10), strconv.FormatInt(userID, 10))
	if cmd.Err() != nil {
		// 默认返回 0 值(包含 redis.Nil)
		return 0, errors.Wrap(cmd.Err(), "redis:GetUserPostDirection: ZScore")
	}
	return int8(cmd.Val()), nil
}

func SetUserPostDirection(postID, userID int64, direction int8) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	key := KeyPostVotedZsetPF + strconv.FormatInt(postID, 10)
	var cmd redis.Cmder
	if direction == 0 { // 撤销投票
		cmd = rdb.ZRem(ctx, key, strconv.FormatInt(userID, 10))
	} else {
		cmd = rdb.ZAdd(ctx, key, redis.Z{
			Member: userID,
			Score:  float64(direction),
		})
	}
	return errors.Wrap(cmd.Err(), "redis:SetUserPostDirection")
}

// 赞成（反对）票数 = voted zset 中 score 为 1（-1）的成员数
func GetPostVoteNums(postID int64) (up int64, down int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	key := KeyPostVotedZsetPF + strconv.FormatInt(postID, 10)
	pipe := rdb.Pipeline()
	upCmd := pipe.ZCount(ctx, key, "1", "1")
	downCmd := pipe.ZCount(ctx, key, "-1", "-1")
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, errors.Wrap(err, "redis:GetPostVoteNums: Exec")
	}
	return upCmd.Val(), downCmd.Val(), nil
}

func SetPostScore(postID int64, score float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZAdd(ctx, KeyPostScoreZset, redis.Z{
		Member: postID,
		Score:  score,
	})
	return errors.Wrap(cmd.Err(), "redis:SetPostScore: ZAdd")
}

func GetPostScore(postID int64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZScore(ctx, KeyPostScoreZset, strconv.FormatInt(postID, 10))
	return cmd.Val(), errors.Wrap(cmd.Err(), "redis:GetPostScore: ZScore")
}

// 获取发布时间早于 targetTimeStamp 的帖子 ID（投票已冻结，计数待持久化）
func GetExpiredVotePostIDs(targetTimeStamp int64) ([]string, error) {
	return GetZSetMembersRangeByScore(KeyPostTimeZset, "0", strconv.FormatInt(targetTimeStamp, 10))
}

// 记录 otype_oid 第一次被访问的时间，供热点过期清理使用
func SetObjectViewTime(member string, timeStamp int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZAdd(ctx, KeyViewCreatedTimeZSet, redis.Z{
		Member: member,
		Score:  float64(timeStamp),
	})
	return errors.Wrap(cmd.Err(), "redis:SetObjectViewTime: ZAdd")
}

// 活跃期结束后，帖子的投票数据整体从 redis 移除
func DeletePostVoteData(postIDStrs []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	pipe := rdb.Pipeline()
	for _, idStr := range postIDStrs {
		pipe.ZRem(ctx, KeyPostTimeZset, idStr)
		pipe.ZRem(ctx, KeyPostScoreZset, idStr)
		pipe.ZRem(ctx, KeyPostViewsZset, idStr)
		pipe.Del(ctx, KeyPostVotedZsetPF+idStr)
	}
	_, err := pipe.Exec(ctx)
	return errors.Wrap(err, "redis:DeletePostVoteData: Exec")
}

func IncrPostViews(postID int64, offset int) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	cmd := rdb.ZIncrBy(ctx, KeyPostViewsZset, float64(offset), strconv.FormatInt(postID, 10))
	return errors.Wrap(cmd.Err(), "redis:IncrPostViews: ZIncrBy")
}
