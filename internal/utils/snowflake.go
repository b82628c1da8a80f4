package utils

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/viper"
)

var idNode *snowflake.Node

// 雪花 id 单调递增且永不复用，帖子、空间、用户共用同一个发号器
func InitSnowflake() {
	epoch, err := time.Parse("2006-01-02", viper.GetString("server.start_time"))
	if err != nil {
		panic(fmt.Sprintf("utils: parse server.start_time failed: %v", err))
	}
	snowflake.Epoch = epoch.UnixMilli()

	idNode, err = snowflake.NewNode(viper.GetInt64("server.machine_id"))
	if err != nil {
		panic(fmt.Sprintf("utils: create snowflake node failed: %v", err))
	}
}

func GenSnowflakeID() int64 {
	return idNode.Generate().Int64()
}
