package settings

import "github.com/spf13/viper"

func SetDefaults() {
	viper.SetDefault("server.ip", "")
	viper.SetDefault("server.port", 1919)
	viper.SetDefault("server.lang", "zh")
	viper.SetDefault("server.start_time", "2024-03-01")   // 项目开始时间
	viper.SetDefault("server.machine_id", 1)              // 节点默认编号
	viper.SetDefault("server.develop_mode", false)
	viper.SetDefault("server.shutdown_waitting_time", 30) // 收到 SIGINT 信号后，超过 30s，服务器将强制退出

	viper.SetDefault("CORF.frontend_path", "http://localhost:5173")

	viper.SetDefault("mysql.host", "127.0.0.1")
	viper.SetDefault("mysql.port", 3306)
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.password", "123456")
	viper.SetDefault("mysql.database", "subpost")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("mysql.debug", false)

	viper.SetDefault("redis.host", "127.0.0.1")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.poolsize", 10)
	viper.SetDefault("redis.max_oper_time", 3)

	viper.SetDefault("kafka.addr", []string{"127.0.0.1:9092"})
	viper.SetDefault("kafka.partition.counter", 6)
	viper.SetDefault("kafka.replication_factor.counter", 1)
	viper.SetDefault("kafka.retry.producer", 5)
	viper.SetDefault("kafka.retry.consumer", 5)

	viper.SetDefault("logger.level", 0)
	viper.SetDefault("logger.path", "./logs/subpost.log")
	viper.SetDefault("logger.max_size", 16)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.compress", false)
	viper.SetDefault("logger.console", true)

	viper.SetDefault("localcache.size", 1024)

	viper.SetDefault("service.timeout", 3)
	viper.SetDefault("service.rps", 100)

	viper.SetDefault("service.token.access_token_expire_duration", 86400)
	viper.SetDefault("service.token.refresh_token_expire_duration", 864000)
	viper.SetDefault("service.token.jwt_key", "subpost_dev_key")
	viper.SetDefault("service.token.issuer", "subpost")

	viper.SetDefault("service.space.min_handle_len", 5)
	viper.SetDefault("service.space.max_handle_len", 50)

	viper.SetDefault("service.post.active_time", 604800)

	viper.SetDefault("service.reply.max_page_size", 100)
	viper.SetDefault("service.reply.index_expire_time", 86400)
	viper.SetDefault("service.reply.index_remove_interval", 3600)

	viper.SetDefault("service.vote.persistence_interval", 600)

	viper.SetDefault("service.hot_spot.refresh_time", 60)
	viper.SetDefault("service.hot_spot.size_for_post", 64)
	viper.SetDefault("service.hot_spot.time_interval", 86400)
}

func InitSettings(confPath string) {
	SetDefaults()

	viper.SetConfigFile(confPath)

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
}
