package exams

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("exam not found")
	ErrNoFields = errors.New("no update fields provided")
)

// Repository is the exam store contract consumed by the REST handlers.
type Repository interface {
	Create(ctx context.Context, title string, description *string, durationMinutes int, passingScore float64, createdBy int64) (*Exam, error)
	List(ctx context.Context) ([]Exam, error)
	GetByID(ctx context.Context, id int64) (*Exam, error)
	Update(ctx context.Context, id int64, fields UpdateFields) (*Exam, error)
	Delete(ctx context.Context, id int64) error
}

// creates a new exam repository
func NewRepository(db *pgxpool.Pool) *PgxRepository {
	return &PgxRepository{db: db}
}

// inserts a new exam
func (r *PgxRepository) Create(
	ctx context.Context,
	title string,
	description *string,
	durationMinutes int,
	passingScore float64,
	createdBy int64,
) (*Exam, error) {
	var exam Exam

	err := r.db.QueryRow(
		ctx,
		queryInsertExam,
		title,
		description,
		durationMinutes,
		passingScore,
		createdBy,
	).Scan(
		&exam.ID,
		&exam.Title,
		&exam.Description,
		&exam.DurationMinutes,
		&exam.PassingScore,
		&exam.CreatedBy,
		&exam.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("creating exam: %w", err)
	}

	return &exam, nil
}

// lists all exams, newest first
func (r *PgxRepository) List(ctx context.Context) ([]Exam, error) {
	rows, err := r.db.Query(ctx, queryListExams)
	if err != nil {
		return nil, fmt.Errorf("listing exams: %w", err)
	}

	defer rows.Close()

	exams := []Exam{}

	for rows.Next() {
		var exam Exam

		err := rows.Scan(
			&exam.ID,
			&exam.Title,
			&exam.Description,
			&exam.DurationMinutes,
			&exam.PassingScore,
			&exam.CreatedBy,
			&exam.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning exam row: %w", err)
		}

		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading exam rows: %w", err)
	}

	return exams, nil
}

// fetches a single exam by id
func (r *PgxRepository) GetByID(ctx context.Context, id int64) (*Exam, error) {
	var exam Exam

	err := r.db.QueryRow(ctx, queryGetExamByID, id).Scan(
		&exam.ID,
		&exam.Title,
		&exam.Description,
		&exam.DurationMinutes,
		&exam.PassingScore,
		&exam.CreatedBy,
		&exam.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("fetching exam: %w", err)
	}

	return &exam, nil
}

// applies a partial update, building the SET list from the provided fields
func (r *PgxRepository) Update(ctx context.Context, id int64, fields UpdateFields) (*Exam, error) {
	set := []string{}
	args := []any{}
	idx := 1

	if fields.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", idx))
		args = append(args, *fields.Title)
		idx++
	}

	if fields.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", idx))
		args = append(args, *fields.Description)
		idx++
	}

	if fields.DurationMinutes != nil {
		set = append(set, fmt.Sprintf("duration_minutes = $%d", idx))
		args = append(args, *fields.DurationMinutes)
		idx++
	}

	if fields.PassingScore != nil {
		set = append(set, fmt.Sprintf("passing_score = $%d", idx))
		args = append(args, *fields.PassingScore)
		idx++
	}

	if len(set) == 0 {
		return nil, ErrNoFields
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE exams
		SET %s
		WHERE id = $%d
		RETURNING id, title, description, duration_minutes, passing_score, created_by_user_id, created_at
	`, strings.Join(set, ", "), idx)

	var exam Exam

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&exam.ID,
		&exam.Title,
		&exam.Description,
		&exam.DurationMinutes,
		&exam.PassingScore,
		&exam.CreatedBy,
		&exam.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("updating exam: %w", err)
	}

	return &exam, nil
}

// deletes an exam by id
func (r *PgxRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, queryDeleteExam, id)
	if err != nil {
		return fmt.Errorf("deleting exam: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
