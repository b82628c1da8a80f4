package localcache

import (
	"github.com/bluele/gcache"
	"github.com/spf13/viper"
)

var localcache gcache.Cache

func InitLocalCache() {
	size := viper.GetInt("localcache.size")
	localcache = gcache.New(size).LRU().Build()
	viewCache = gcache.New(size).LRU().Build()
	createTimeCache = gcache.New(size).LRU().Build()
	statusCache = gcache.New(size).LRU().Build()
}

func GetLocalCache() gcache.Cache {
	return localcache
}

func Get(key string) (any, error) {
	return localcache.Get(key)
}

func Set(key string, value any) error {
	return localcache.Set(key, value)
}

func Remove(key string) bool {
	return localcache.Remove(key)
}
