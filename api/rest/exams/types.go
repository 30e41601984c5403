package exams

import (
	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
)

// CreateExamRequest carries a new exam definition
type CreateExamRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes" binding:"required"`
	PassingScore    *float64 `json:"passing_score" binding:"required"`
}

// UpdateExamRequest carries a partial exam update; absent fields are untouched
type UpdateExamRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	DurationMinutes *int     `json:"duration_minutes"`
	PassingScore    *float64 `json:"passing_score"`
}

// SubmitAttemptRequest records a completed exam attempt
type SubmitAttemptRequest struct {
	ScoreAchieved      *float64 `json:"score_achieved" binding:"required"`
	TotalPossibleScore *float64 `json:"total_possible_score" binding:"required"`
}

// CreateExamResponse returned after exam creation
type CreateExamResponse struct {
	Message string      `json:"message"`
	Exam    *exams.Exam `json:"exam"`
}

// UpdateExamResponse returned after exam update
type UpdateExamResponse struct {
	Message string      `json:"message"`
	Exam    *exams.Exam `json:"exam"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}

// ExamResultsResponse lists all attempts recorded for one exam
type ExamResultsResponse struct {
	ExamID    int64                 `json:"exam_id"`
	ExamTitle string                `json:"exam_title"`
	Results   []attempts.ExamResult `json:"results"`
}

// SubmitAttemptResponse returned after recording an attempt
type SubmitAttemptResponse struct {
	Message string            `json:"message"`
	Attempt *attempts.Attempt `json:"attempt"`
}
