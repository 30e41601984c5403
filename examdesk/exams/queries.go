package exams

const (
	queryInsertExam = `
		INSERT INTO exams (title, description, duration_minutes, passing_score, created_by_user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, duration_minutes, passing_score, created_by_user_id, created_at
	`

	queryListExams = `
		SELECT id, title, description, duration_minutes, passing_score, created_by_user_id, created_at
		FROM exams
		ORDER BY created_at DESC
	`

	queryGetExamByID = `
		SELECT id, title, description, duration_minutes, passing_score, created_by_user_id, created_at
		FROM exams
		WHERE id = $1
	`

	queryDeleteExam = `
		DELETE FROM exams
		WHERE id = $1
	`
)
