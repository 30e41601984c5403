package admin

import (
	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers admin-only routes
func RegisterRoutes(router *gin.RouterGroup, attemptRepo attempts.Repository, codec *auth.TokenCodec) {
	adminGroup := router.Group("/admin")
	adminGroup.Use(auth.RequireAuth(codec), auth.RequireAdmin())

	adminGroup.GET("/enrollments", GetEnrollments(attemptRepo))
}
