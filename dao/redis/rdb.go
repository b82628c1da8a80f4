package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

var rdb *redis.Client

var redisTimeout time.Duration

func InitRedis() {
	// 读取配置
	rdb = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", viper.GetString("redis.host"), viper.GetInt("redis.port")),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
		PoolSize: viper.GetInt("redis.poolsize"), // 连接池大小
	})

	redisTimeout = time.Duration(viper.GetInt64("redis.max_oper_time")) * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	cmd := rdb.Ping(ctx)
	if cmd.Err() != nil {
		panic(fmt.Sprintf("redis: %s", cmd.Err()))
	}
}

// 测试环境注入（miniredis 等）
func InitWithAddr(addr string) {
	rdb = redis.NewClient(&redis.Options{Addr: addr})
	redisTimeout = time.Second * 3
}

func GetRDB() *redis.Client {
	return rdb
}
