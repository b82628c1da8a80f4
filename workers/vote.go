package workers

import (
	"strconv"
	"subpost/dao/mysql"
	"subpost/dao/redis"
	"subpost/logger"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/viper"
)

// 帖子的业务逻辑：
// 在活跃期内，可以正常投票，票数与分数以 redis 为准
// 活跃期结束后，不允许投票，最终分数落库，redis 中的投票数据清理掉

// 持久化活跃期结束帖子的分数
func PersistencePostVotes() {
	persistenceInterval := time.Second * time.Duration(viper.GetInt64("service.vote.persistence_interval"))
	waitTime := 0 * time.Second

	pool, _ := ants.NewPoolWithFunc(4096, func(i interface{}) {
		postID, ok := i.(int64)
		if !ok {
			return
		}
		score, err := redis.GetPostScore(postID)
		if err != nil {
			logger.Errorf("workers:PersistencePostVotes: GetPostScore failed, reason: %v", err.Error())
			return
		}
		if err := mysql.UpdatePostScore(nil, postID, int64(score)); err != nil {
			logger.Errorf("workers:PersistencePostVotes: UpdatePostScore failed, reason: %v", err.Error())
		}
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-quit:
				return
			case <-time.After(waitTime):
			}

			targetTimeStamp := time.Now().Unix() - viper.GetInt64("service.post.active_time") // Unix 返回的已经是 second
			// 从 redis 中获取活跃期结束帖子的 ID
			postIDStrs, err := redis.GetExpiredVotePostIDs(targetTimeStamp)
			if !checkError(err, &waitTime) {
				continue
			}
			if len(postIDStrs) == 0 { // 避免后续操作
				waitTime = persistenceInterval
				continue
			}

			for _, idStr := range postIDStrs {
				postID, _ := strconv.ParseInt(idStr, 10, 64)
				pool.Invoke(postID) // 添加到 go routine 池
			}

			logger.Infof("Persisted %d pieces of expired score data from Redis to MySQL", len(postIDStrs))

			// 删除 redis 中的投票数据（失败也不用马上重试，开销大）
			if err := redis.DeletePostVoteData(postIDStrs); err != nil {
				logger.Warnf("workers:PersistencePostVotes: DeletePostVoteData failed, reason: %v", err.Error())
			} else {
				logger.Infof("Removed %d pieces of expired vote data from Redis", len(postIDStrs))
			}

			waitTime = persistenceInterval
		}
	}()
}
