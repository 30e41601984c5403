package attempts

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the attempt store contract consumed by the REST handlers.
type Repository interface {
	Create(ctx context.Context, userID, examID int64, scoreAchieved, totalPossibleScore float64) (*Attempt, error)
	ListByExam(ctx context.Context, examID int64) ([]ExamResult, error)
	ListStudentEnrollments(ctx context.Context) ([]Enrollment, error)
}

// creates a new attempt repository
func NewRepository(db *pgxpool.Pool) *PgxRepository {
	return &PgxRepository{db: db}
}

// records an exam attempt, computing the percentage score
func (r *PgxRepository) Create(
	ctx context.Context,
	userID, examID int64,
	scoreAchieved, totalPossibleScore float64,
) (*Attempt, error) {
	percentage := 0.0
	if totalPossibleScore > 0 {
		percentage = scoreAchieved / totalPossibleScore * 100
	}

	var attempt Attempt

	err := r.db.QueryRow(
		ctx,
		queryInsertAttempt,
		userID,
		examID,
		scoreAchieved,
		totalPossibleScore,
		percentage,
	).Scan(
		&attempt.ID,
		&attempt.UserID,
		&attempt.ExamID,
		&attempt.ScoreAchieved,
		&attempt.TotalPossibleScore,
		&attempt.PercentageScore,
		&attempt.SubmittedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("recording attempt: %w", err)
	}

	return &attempt, nil
}

// lists all attempts for one exam, newest first
func (r *PgxRepository) ListByExam(ctx context.Context, examID int64) ([]ExamResult, error) {
	rows, err := r.db.Query(ctx, queryListByExam, examID)
	if err != nil {
		return nil, fmt.Errorf("listing exam results: %w", err)
	}

	defer rows.Close()

	results := []ExamResult{}

	for rows.Next() {
		var result ExamResult

		err := rows.Scan(
			&result.AttemptID,
			&result.UserID,
			&result.StudentName,
			&result.StudentEmail,
			&result.ExamID,
			&result.ScoreAchieved,
			&result.TotalPossibleScore,
			&result.PercentageScore,
			&result.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading result rows: %w", err)
	}

	return results, nil
}

// lists every student attempt across all exams, newest first
func (r *PgxRepository) ListStudentEnrollments(ctx context.Context) ([]Enrollment, error) {
	rows, err := r.db.Query(ctx, queryListStudentEnrollments)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments: %w", err)
	}

	defer rows.Close()

	enrollments := []Enrollment{}

	for rows.Next() {
		var enrollment Enrollment

		err := rows.Scan(
			&enrollment.EnrollmentID,
			&enrollment.StudentID,
			&enrollment.StudentName,
			&enrollment.StudentEmail,
			&enrollment.ExamID,
			&enrollment.ExamTitle,
			&enrollment.EnrollmentDate,
			&enrollment.ScoreAchieved,
			&enrollment.TotalPossibleScore,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning enrollment row: %w", err)
		}

		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading enrollment rows: %w", err)
	}

	return enrollments, nil
}
