package admin

import (
	"net/http"

	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// GetEnrollments godoc
// @Summary List all student exam attempts
// @Description Admin-only report of every student attempt across all exams
// @Tags admin
// @Produce json
// @Success 200 {object} EnrollmentsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/admin/enrollments [get]
// @Security BearerAuth
func GetEnrollments(attemptRepo attempts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		enrollments, err := attemptRepo.ListStudentEnrollments(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch student enrollments", err)
			return
		}

		c.JSON(http.StatusOK, EnrollmentsResponse{Enrollments: enrollments})
	}
}
