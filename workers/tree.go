package workers

import (
	"subpost/dao/redis"
	"subpost/logger"
	"time"

	"github.com/spf13/viper"
)

// 清理长期没有访问的回复树索引缓存，下次访问时会从 db 重建
func RemoveTreeIndexFromRedis() {
	removeInterval := time.Second * time.Duration(viper.GetInt64("service.reply.index_remove_interval"))
	expireTime := time.Second * time.Duration(viper.GetInt64("service.reply.index_expire_time"))
	pattern := redis.KeyTreeIndexZSetPF + "*"
	waitTime := 0 * time.Second

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-quit:
				return
			case <-time.After(waitTime):
			}

			keys, err := redis.GetKeys(pattern)
			if !checkError(err, &waitTime) {
				continue
			}

			// 筛选逻辑过期的 key
			expiredKeys, err := getExpiredKeys(keys, expireTime)
			if !checkError(err, &waitTime) {
				continue
			}
			if len(expiredKeys) == 0 { // 不需要删除
				waitTime = removeInterval
				continue
			}

			err = redis.DelKeys(expiredKeys)
			if !checkError(err, &waitTime) {
				continue
			}

			logger.Infof("workers:RemoveTreeIndexFromRedis: Removed %d expired keys(%v) from redis", len(expiredKeys), pattern)
			waitTime = removeInterval
		}
	}()
}
