package router

import (
	"fmt"
	"net/http"
	"subpost/controller"
	"subpost/logger"
	"subpost/middleware"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var router *gin.Engine

func Init() {
	if !viper.GetBool("server.develop_mode") {
		gin.SetMode(gin.ReleaseMode)
	}

	router = gin.New()
	frontendPath := viper.GetString("CORF.frontend_path")
	router.Use(logger.GinLogger(), logger.GinRecovery(true), middleware.RateLimit(0.6, 5000), middleware.CORF(frontendPath)) // 全局限流

	v1 := router.Group("/api/v1")

	/* RefreshToken */
	v1.GET("/token/refresh/", controller.RefreshTokenHandler)

	/* User */
	usrGrp := v1.Group("/user")
	usrGrp.POST("/register", controller.UserRegisterHandler)
	usrGrp.POST("/login", controller.UserLoginHandler)

	/* Space */
	spaceGrp := v1.Group("/space")
	spaceGrp.Use(middleware.Auth(), middleware.VerifyToken())
	spaceGrp.POST("/create", controller.CreateSpaceHandler)
	spaceGrp.POST("/update", controller.UpdateSpaceHandler)

	v1.GET("/space/list", controller.SpaceListHandler)
	v1.GET("/space/:space_id", controller.SpaceDetailHandler)

	/* Post */
	postGrp := v1.Group("/post")
	postGrp.Use(middleware.Auth(), middleware.VerifyToken())
	postGrp.POST("/create", controller.CreatePostHandler)
	postGrp.POST("/share", controller.SharePostHandler)
	postGrp.POST("/edit", controller.EditPostHandler)
	postGrp.POST("/hidden", controller.SetPostHiddenHandler)
	postGrp.POST("/vote", controller.VoteHandler)

	v1.GET("/post/:post_id", controller.PostDetailHandler) // 查看详情

	/* Reply */
	replyGrp := v1.Group("/reply")
	replyGrp.Use(middleware.Auth(), middleware.VerifyToken())
	replyGrp.POST("/create", controller.CreateReplyHandler)

	v1.GET("/reply/list", controller.ReplyListHandler) // 只读分页查询
}

func GetServer() *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", viper.GetString("server.ip"), viper.GetInt("server.port")),
		Handler: router,
	}
}
