package admin

import "codeberg.org/examdesk/server/examdesk/attempts"

// EnrollmentsResponse lists every student exam attempt
type EnrollmentsResponse struct {
	Enrollments []attempts.Enrollment `json:"enrollments"`
}
