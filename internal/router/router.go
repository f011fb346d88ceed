package router

import (
	"Hive_Community/internal/config"
	"Hive_Community/internal/handler"
	"Hive_Community/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler()
	community := handler.NewCommunityHandler(cfg)

	// 用户相关接口
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/user/logout", user.Logout)

		// 社区相关接口
		authGroup.PUT("/communities", community.Create)
		authGroup.POST("/community-name-check", community.NameCheck)
		authGroup.GET("/joined-communities", community.Joined)
		authGroup.GET("/favorite-communities", community.Favorites)

		authGroup.GET("/communities/:name", community.Show)
		authGroup.POST("/communities/:name/members", community.Join)
		authGroup.DELETE("/communities/:name/members", community.Leave)
		authGroup.POST("/communities/:name/favorite", community.Favorite)
		authGroup.DELETE("/communities/:name/favorite", community.Unfavorite)
		authGroup.POST("/communities/:name/invites", community.Invite)
	}

	return r
}
