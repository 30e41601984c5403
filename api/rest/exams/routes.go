package exams

import (
	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
	"codeberg.org/examdesk/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// registers all exam routes; reads require authentication, writes and results
// additionally require the admin role
func RegisterRoutes(
	router *gin.RouterGroup,
	examRepo exams.Repository,
	attemptRepo attempts.Repository,
	codec *auth.TokenCodec,
) {
	examsGroup := router.Group("/exams")
	examsGroup.Use(auth.RequireAuth(codec))

	examsGroup.GET("", ListExams(examRepo))
	examsGroup.GET("/:id", GetExam(examRepo))
	examsGroup.POST("/:id/attempts", SubmitAttempt(examRepo, attemptRepo))

	adminOnly := examsGroup.Group("")
	adminOnly.Use(auth.RequireAdmin())

	adminOnly.POST("", CreateExam(examRepo))
	adminOnly.PUT("/:id", UpdateExam(examRepo))
	adminOnly.DELETE("/:id", DeleteExam(examRepo))
	adminOnly.GET("/:id/results", GetExamResults(examRepo, attemptRepo))
}
