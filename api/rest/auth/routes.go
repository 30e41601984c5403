package auth

import (
	"codeberg.org/examdesk/server/examdesk/users"
	"codeberg.org/examdesk/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes
func RegisterRoutes(router *gin.RouterGroup, userRepo users.Repository, codec *auth.TokenCodec) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", RegisterHandler(userRepo))
		authGroup.POST("/login", LoginHandler(userRepo, codec))
		authGroup.GET("/profile", auth.RequireAuth(codec), ProfileHandler())
		authGroup.GET("/admin-only", auth.RequireAuth(codec), auth.RequireAdmin(), AdminOnlyHandler())
	}
}
