package workers

import (
	"fmt"
	"strconv"
	"strings"
	"subpost/dao/localcache"
	"subpost/dao/redis"
	"subpost/logger"
	"subpost/logic"
	"subpost/objects"
	"time"

	"github.com/spf13/viper"
)

// 刷新热点帖子
func RefreshPostHotSpot() {
	refreshTime := time.Second * time.Duration(viper.GetInt64("service.hot_spot.refresh_time"))
	size := viper.GetInt("service.hot_spot.size_for_post")
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

			// 取访问量前 size 的帖子 id
			postIDs, err := localcache.GetTopKObjectIDByViews(objects.ObjPost, size)
			if !checkError(err, &waitTime) {
				continue
			}

			// 获取帖子元数据，添加到 local cache
			for _, postID := range postIDs {
				post, err := logic.GetPostDetailByID(postID, false)
				if err != nil {
					logger.Warnf("workers:RefreshPostHotSpot: GetPostDetailByID failed")
					continue
				}

				cacheKey := fmt.Sprintf("%v_%v", objects.ObjPost, postID)
				localcache.GetLocalCache().Set(cacheKey, post)
			}

			waitTime = refreshTime
		}
	}()
}

func RemoveExpiredObjectView() {
	waitTime := 0 * time.Second
	refreshTime := time.Second * time.Duration(viper.GetInt64("service.hot_spot.refresh_time"))
	timeInterval := viper.GetInt64("service.hot_spot.time_interval")

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-quit:
				return
			case <-time.After(waitTime):
			}

			// 获取过期的 view 的 otype_oid
			targetTimeStamp := time.Now().Unix() - timeInterval
			expiredMembers, err := redis.GetZSetMembersRangeByScore(redis.KeyViewCreatedTimeZSet, "0", fmt.Sprintf("%v", targetTimeStamp))
			if !checkError(err, &waitTime) {
				continue
			}

			for _, expiredMember := range expiredMembers {
				tmp := strings.Split(expiredMember, "_")
				objType, err := strconv.ParseInt(tmp[0], 10, 64)
				if !checkError(err, &waitTime) {
					continue
				}
				objID, err := strconv.ParseInt(tmp[1], 10, 64)
				if !checkError(err, &waitTime) {
					continue
				}
				if objType == objects.ObjPost {
					redis.ZSetRem(redis.KeyPostViewsZset, objID)
				}
				redis.ZSetRem(redis.KeyViewCreatedTimeZSet, expiredMember)
			}

			// 本地的 view 计数同步过期
			localcache.RemoveExpiredObjectView(targetTimeStamp)

			waitTime = refreshTime
		}
	}()
}
