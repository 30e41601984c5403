package attempts

const (
	queryInsertAttempt = `
		INSERT INTO exam_attempts (user_id, exam_id, score_achieved, total_possible_score, percentage_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, exam_id, score_achieved, total_possible_score, percentage_score, submitted_at
	`

	queryListByExam = `
		SELECT
			ea.id AS attempt_id,
			ea.user_id,
			u.name AS student_name,
			u.email AS student_email,
			ea.exam_id,
			ea.score_achieved,
			ea.total_possible_score,
			ea.percentage_score,
			ea.submitted_at
		FROM exam_attempts ea
		JOIN users u ON ea.user_id = u.id
		WHERE ea.exam_id = $1
		ORDER BY ea.submitted_at DESC
	`

	queryListStudentEnrollments = `
		SELECT
			ea.id AS enrollment_id,
			u.id AS student_id,
			u.name AS student_name,
			u.email AS student_email,
			e.id AS exam_id,
			e.title AS exam_title,
			ea.submitted_at AS enrollment_date,
			ea.score_achieved,
			ea.total_possible_score
		FROM exam_attempts ea
		JOIN users u ON ea.user_id = u.id
		JOIN exams e ON ea.exam_id = e.id
		WHERE u.role = 'student'
		ORDER BY ea.submitted_at DESC
	`
)
