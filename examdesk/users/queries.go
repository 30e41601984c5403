package users

const (
	queryFindByEmail = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	queryInsertUser = `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, role, created_at
	`
)
