package attempts

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles exam attempt database operations
type PgxRepository struct {
	db *pgxpool.Pool
}

// represents a recorded exam attempt
type Attempt struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	ExamID             int64     `json:"exam_id"`
	ScoreAchieved      float64   `json:"score_achieved"`
	TotalPossibleScore float64   `json:"total_possible_score"`
	PercentageScore    float64   `json:"percentage_score"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// ExamResult is one student's attempt on a specific exam, joined with the
// student's identity fields.
type ExamResult struct {
	AttemptID          int64     `json:"attempt_id"`
	UserID             int64     `json:"user_id"`
	StudentName        string    `json:"student_name"`
	StudentEmail       string    `json:"student_email"`
	ExamID             int64     `json:"exam_id"`
	ScoreAchieved      float64   `json:"score_achieved"`
	TotalPossibleScore float64   `json:"total_possible_score"`
	PercentageScore    float64   `json:"percentage_score"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// Enrollment is one row of the admin enrollments report, covering every
// student attempt across all exams.
type Enrollment struct {
	EnrollmentID       int64     `json:"enrollment_id"`
	StudentID          int64     `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentEmail       string    `json:"student_email"`
	ExamID             int64     `json:"exam_id"`
	ExamTitle          string    `json:"exam_title"`
	EnrollmentDate     time.Time `json:"enrollment_date"`
	ScoreAchieved      float64   `json:"score_achieved"`
	TotalPossibleScore float64   `json:"total_possible_score"`
}
