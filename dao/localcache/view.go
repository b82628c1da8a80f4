package localcache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bluele/gcache"
	priorityqueue "github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
)

var (
	viewCache       gcache.Cache
	createTimeCache gcache.Cache
)

// IncrView 累加对象在本进程内的访问量，返回值表示该对象是否首次出现
//
// 计数归零时直接删除 key，避免冷门对象一直占着缓存
func IncrView(objType int, objID int64, offset int) (bool, error) {
	cacheKey := getCacheKey(objType, objID)

	view, err := viewCache.Get(cacheKey)
	switch {
	case err == nil:
		next := view.(int) + offset
		if next == 0 {
			viewCache.Remove(cacheKey)
			return false, nil
		}
		return false, errors.Wrap(viewCache.Set(cacheKey, next), "localcache:IncrView: Set")
	case errors.Is(err, gcache.KeyNotFoundError):
		return true, errors.Wrap(viewCache.Set(cacheKey, offset), "localcache:IncrView: Set")
	default:
		return false, errors.Wrap(err, "localcache:IncrView: Get")
	}
}

func SetViewCreateTime(objType int, objID, timeStamp int64) error {
	return createTimeCache.Set(getCacheKey(objType, objID), timeStamp)
}

// GetTopKObjectIDByViews 取出本进程内访问量最高的 k 个对象 id
// 小根堆维护候选集，堆顶是候选中的最低访问量
func GetTopKObjectIDByViews(objType int, k int) ([]int64, error) {
	heap := priorityqueue.NewWith(byViews)

	for key, value := range viewCache.GetALL(false) {
		id, ok := parseCacheKey(key.(string), objType)
		if !ok {
			continue
		}
		entry := hotEntry{objID: id, views: value.(int)}

		if heap.Size() < k {
			heap.Enqueue(entry)
			continue
		}
		top, _ := heap.Peek()
		if entry.views > top.(hotEntry).views {
			heap.Dequeue()
			heap.Enqueue(entry)
		}
	}

	res := make([]int64, 0, k)
	for {
		entry, ok := heap.Dequeue()
		if !ok {
			break
		}
		res = append(res, entry.(hotEntry).objID)
	}
	return res, nil
}

// RemoveExpiredObjectView 清掉首次访问时间早于 targetTimeStamp 的记录
func RemoveExpiredObjectView(targetTimeStamp int64) {
	for k, v := range createTimeCache.GetALL(false) {
		if v.(int64) < targetTimeStamp {
			createTimeCache.Remove(k.(string))
		}
	}
}

func getCacheKey(objType int, objID int64) string {
	return fmt.Sprintf("%v_%v", objType, objID)
}

// 解析缓存 key，对象类型不匹配时返回 false
func parseCacheKey(cacheKey string, wantObjType int) (int64, bool) {
	typePart, idPart, found := strings.Cut(cacheKey, "_")
	if !found {
		return 0, false
	}
	objType, err := strconv.Atoi(typePart)
	if err != nil || objType != wantObjType {
		return 0, false
	}
	objID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, false
	}
	return objID, true
}

type hotEntry struct {
	objID int64
	views int
}

func byViews(a, b interface{}) int {
	return a.(hotEntry).views - b.(hotEntry).views
}
