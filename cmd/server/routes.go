package main

import (
	"codeberg.org/examdesk/server/api/rest/admin"
	"codeberg.org/examdesk/server/api/rest/auth"
	"codeberg.org/examdesk/server/api/rest/exams"
	"codeberg.org/examdesk/server/api/rest/health"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	if len(server.config.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = server.config.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo, server.tokenCodec)
		exams.RegisterRoutes(v1, server.examRepo, server.attemptRepo, server.tokenCodec)
		admin.RegisterRoutes(v1, server.attemptRepo, server.tokenCodec)
	}
}
