package logic

import (
	"subpost/algorithm"
	"subpost/dao/kafka"
	"subpost/dao/localcache"
	"subpost/dao/redis"
	subpost "subpost/errors"
	"subpost/logger"
	"subpost/models"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

/* 投票的几种情况：
direction=1 时，有两种情况：
	1. 之前没有投过票，现在投赞成票    --> 更新分数和投票记录
	2. 之前投反对票，现在改投赞成票    --> 更新分数和投票记录
direction=0 时，有两种情况：
	1. 之前投过赞成票，现在要取消投票  --> 更新分数和投票记录
	2. 之前投过反对票，现在要取消投票  --> 更新分数和投票记录
direction=-1 时，有两种情况：
	1. 之前没有投过票，现在投反对票    --> 更新分数和投票记录
	2. 之前投赞成票，现在改投反对票    --> 更新分数和投票记录

投票的限制：
每个贴子自发表之日起一个星期之内允许用户投票，超过一个星期就不允许再投票了。
	1. 到期之后将 redis 中保存的赞成票数及反对票数存储到 mysql 表中
	2. 到期之后删除投票记录 zset
*/

func VoteForPost(userID, postID int64, direction int8) error {
	// 获取发布时间
	publishTime, err := redis.GetPostPublishTime(postID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return subpost.ErrNotFound
		}
		return errors.Wrap(err, "logic:VoteForPost: GetPostPublishTime")
	}
	timeDiff := float64(time.Now().Unix()) - publishTime
	activeTime := viper.GetInt64("service.post.active_time") // 读取配置，这里是一周
	if timeDiff > float64(activeTime) {
		return subpost.ErrVoteTimeExpire
	}

	oldDirection, err := redis.GetUserPostDirection(postID, userID)
	if err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "logic:VoteForPost: GetUserPostDirection")
	}
	if oldDirection == direction { // 重复投票，没有任何变化
		return nil
	}

	// 保存用户操作
	if err := redis.SetUserPostDirection(postID, userID, direction); err != nil {
		return errors.Wrap(err, "logic:VoteForPost: SetUserPostDirection")
	}

	// 票数计数异步落库，先行结算新旧方向的差值
	upOffset := voteContribution(direction, 1) - voteContribution(oldDirection, 1)
	downOffset := voteContribution(direction, -1) - voteContribution(oldDirection, -1)
	if upOffset != 0 {
		sendCounterDelta("upvotes_count", postID, upOffset)
	}
	if downOffset != 0 {
		sendCounterDelta("downvotes_count", postID, downOffset)
	}

	up, down, err := redis.GetPostVoteNums(postID)
	if err != nil {
		return errors.Wrap(err, "logic:VoteForPost: GetPostVoteNums")
	}

	// 更新帖子的分数
	newScore := algorithm.PostScore(int64(publishTime), up-down)

	// 判断是否需要更新 local cache
	cacheKey := getPostCacheKey(postID)
	postInCache, err := localcache.Get(cacheKey)
	if err == nil { // cache hit，更新 local cache
		post := postInCache.(*models.PostDTO)
		post.UpvotesCount = int(up)
		post.DownvotesCount = int(down)
		localcache.Set(cacheKey, post)
	}
	return errors.Wrap(redis.SetPostScore(postID, newScore), "logic:VoteForPost: SetPostScore")
}

// 投递计数消息，并异步确认消费结果，确认失败只打日志
func sendCounterDelta(field string, postID int64, offset int) {
	if err := kafka.IncrPostCounterField(field, postID, offset); err != nil {
		logger.Warnf("logic:sendCounterDelta: IncrPostCounterField(%v) failed, reason: %v", field, err.Error())
		return
	}
	go func() {
		uniqueKey := kafka.GetIncrPostCounterFieldUniqueKey(field, postID)
		consumed, err := kafka.CheckIfConsumed(uniqueKey, 10, 200)
		if err != nil {
			logger.Warnf("logic:sendCounterDelta: consume %v failed, reason: %v", uniqueKey, err.Error())
		} else if !consumed {
			logger.Warnf("logic:sendCounterDelta: consume %v not confirmed", uniqueKey)
		}
	}()
}

func voteContribution(direction, want int8) int {
	if direction == want {
		return 1
	}
	return 0
}
