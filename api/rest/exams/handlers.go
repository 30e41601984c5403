package exams

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
	"codeberg.org/examdesk/server/internal/auth"
	"codeberg.org/examdesk/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// parses the numeric :id path parameter, responding 404 on garbage
func examIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errors.NotFound(c, "exam")
		return 0, false
	}

	return id, true
}

// CreateExam godoc
// @Summary Create a new exam
// @Description Admin-only. Creates an exam owned by the calling identity
// @Tags exams
// @Accept json
// @Produce json
// @Param request body CreateExamRequest true "Exam definition"
// @Success 201 {object} CreateExamResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams [post]
// @Security BearerAuth
func CreateExam(examRepo exams.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req CreateExamRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if *req.DurationMinutes <= 0 {
			errors.BadRequest(c, "duration must be a positive number", nil)
			return
		}

		if *req.PassingScore < 0 || *req.PassingScore > 100 {
			errors.BadRequest(c, "passing score must be a number between 0 and 100", nil)
			return
		}

		exam, err := examRepo.Create(
			c.Request.Context(),
			req.Title,
			req.Description,
			*req.DurationMinutes,
			*req.PassingScore,
			claims.UserID,
		)
		if err != nil {
			errors.InternalError(c, "failed to create exam", err)
			return
		}

		c.JSON(http.StatusCreated, CreateExamResponse{
			Message: "exam created successfully",
			Exam:    exam,
		})
	}
}

// ListExams godoc
// @Summary List all exams
// @Description Returns all exams, newest first. Any authenticated user
// @Tags exams
// @Produce json
// @Success 200 {array} exams.Exam
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams [get]
// @Security BearerAuth
func ListExams(examRepo exams.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := examRepo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to fetch exams", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetExam godoc
// @Summary Get a single exam
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} exams.Exam
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams/{id} [get]
// @Security BearerAuth
func GetExam(examRepo exams.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := examIDParam(c)
		if !ok {
			return
		}

		exam, err := examRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, exams.ErrNotFound) {
				errors.NotFound(c, "exam")
				return
			}

			errors.InternalError(c, "failed to fetch exam", err)
			return
		}

		c.JSON(http.StatusOK, exam)
	}
}

// UpdateExam godoc
// @Summary Update an exam
// @Description Admin-only. Applies a partial update; at least one field required
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body UpdateExamRequest true "Fields to update"
// @Success 200 {object} UpdateExamResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams/{id} [put]
// @Security BearerAuth
func UpdateExam(examRepo exams.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := examIDParam(c)
		if !ok {
			return
		}

		var req UpdateExamRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Title == nil && req.Description == nil &&
			req.DurationMinutes == nil && req.PassingScore == nil {
			errors.BadRequest(c, "no update fields provided", nil)
			return
		}

		if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
			errors.BadRequest(c, "duration must be a positive number", nil)
			return
		}

		if req.PassingScore != nil && (*req.PassingScore < 0 || *req.PassingScore > 100) {
			errors.BadRequest(c, "passing score must be a number between 0 and 100", nil)
			return
		}

		exam, err := examRepo.Update(c.Request.Context(), id, exams.UpdateFields{
			Title:           req.Title,
			Description:     req.Description,
			DurationMinutes: req.DurationMinutes,
			PassingScore:    req.PassingScore,
		})
		if err != nil {
			if stderrors.Is(err, exams.ErrNotFound) {
				errors.NotFound(c, "exam")
				return
			}

			errors.InternalError(c, "failed to update exam", err)
			return
		}

		c.JSON(http.StatusOK, UpdateExamResponse{
			Message: "exam updated successfully",
			Exam:    exam,
		})
	}
}

// DeleteExam godoc
// @Summary Delete an exam
// @Description Admin-only
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams/{id} [delete]
// @Security BearerAuth
func DeleteExam(examRepo exams.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := examIDParam(c)
		if !ok {
			return
		}

		err := examRepo.Delete(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, exams.ErrNotFound) {
				errors.NotFound(c, "exam")
				return
			}

			errors.InternalError(c, "failed to delete exam", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "exam deleted successfully"})
	}
}

// SubmitAttempt godoc
// @Summary Record an exam attempt
// @Description Records the calling identity's attempt on an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body SubmitAttemptRequest true "Attempt scores"
// @Success 201 {object} SubmitAttemptResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams/{id}/attempts [post]
// @Security BearerAuth
func SubmitAttempt(examRepo exams.Repository, attemptRepo attempts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := auth.CurrentUser(c)
		if !ok {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		id, ok := examIDParam(c)
		if !ok {
			return
		}

		var req SubmitAttemptRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if *req.TotalPossibleScore <= 0 {
			errors.BadRequest(c, "total possible score must be a positive number", nil)
			return
		}

		if *req.ScoreAchieved < 0 || *req.ScoreAchieved > *req.TotalPossibleScore {
			errors.BadRequest(c, "score achieved must be between 0 and the total possible score", nil)
			return
		}

		if _, err := examRepo.GetByID(c.Request.Context(), id); err != nil {
			if stderrors.Is(err, exams.ErrNotFound) {
				errors.NotFound(c, "exam")
				return
			}

			errors.InternalError(c, "failed to fetch exam", err)
			return
		}

		attempt, err := attemptRepo.Create(
			c.Request.Context(),
			claims.UserID,
			id,
			*req.ScoreAchieved,
			*req.TotalPossibleScore,
		)
		if err != nil {
			errors.InternalError(c, "failed to record attempt", err)
			return
		}

		c.JSON(http.StatusCreated, SubmitAttemptResponse{
			Message: "attempt recorded successfully",
			Attempt: attempt,
		})
	}
}

// GetExamResults godoc
// @Summary Get all results for an exam
// @Description Admin-only. Lists every attempt on the exam with student details
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} ExamResultsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/exams/{id}/results [get]
// @Security BearerAuth
func GetExamResults(examRepo exams.Repository, attemptRepo attempts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := examIDParam(c)
		if !ok {
			return
		}

		// check existence first so a missing exam is a specific 404
		exam, err := examRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			if stderrors.Is(err, exams.ErrNotFound) {
				errors.NotFound(c, "exam")
				return
			}

			errors.InternalError(c, "failed to fetch exam", err)
			return
		}

		results, err := attemptRepo.ListByExam(c.Request.Context(), id)
		if err != nil {
			errors.InternalError(c, "failed to fetch exam results", err)
			return
		}

		c.JSON(http.StatusOK, ExamResultsResponse{
			ExamID:    exam.ID,
			ExamTitle: exam.Title,
			Results:   results,
		})
	}
}
