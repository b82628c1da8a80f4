package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"subpost/dao/kafka"
	"subpost/dao/localcache"
	"subpost/dao/mysql"
	"subpost/dao/redis"
	"subpost/internal/utils"
	"subpost/logger"
	"subpost/router"
	"subpost/settings"
	"subpost/workers"
	"time"

	"github.com/spf13/viper"
)

func init() {
	path := flag.String("c", "./config/config.json", "config path(file must be named 'config.json')")
	flag.Parse()

	settings.InitSettings(*path)

	logger.InitLogger()

	utils.InitSnowflake()
	utils.InitTrans()
	utils.InitToken()

	mysql.InitMySQL()
	logger.Infof("Initializing MySQL successfully")

	redis.InitRedis()
	logger.Infof("Initializing Redis successfully")

	localcache.InitLocalCache()
	logger.Infof("Initializing Localcache successfully")

	kafka.InitKafka()
	logger.Infof("Initializing Kafka successfully")

	router.Init()
	logger.Infof("Initializing router successfully")

	workers.InitWorkers() // 后台任务
}

func main() {
	srv := router.GetServer()

	idleConnsClosed := make(chan interface{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint // 阻塞，直到 SIGINT 信号产生

		// We received an interrupt signal, shut down.
		// Waits for clients that are still requesting, but will force exit after the specified time has elapsed.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*time.Duration(viper.GetInt64("server.shutdown_waitting_time")))
		defer cancel()
		logger.Infof("Shutting down HTTP Server(wait for all connections to be closed)...")

		// Shutdown gracefully shuts down the server without interrupting any active connections.
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			logger.Errorf("subpost server shutdown: %v", err)
		}
		logger.Infof("Http server closed successfully")
		close(idleConnsClosed)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		// Error starting or closing listener:
		logger.Errorf("HTTP server ListenAndServe: %v", err)
	}

	<-idleConnsClosed // 直到 close 后，主线程才会退出
	logger.Infof("Waitting for all background tasks to complete...")
	workers.Wait() // 等待所有后台任务结束才退出
	kafka.Wait()   // 等待消费者退出
	logger.Infof("Done.\n\nsubpost server closed successfully")
}
