package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// canned enrollments in place of the postgres join
type fakeAttemptRepo struct {
	enrollments []attempts.Enrollment
}

func (f *fakeAttemptRepo) Create(
	_ context.Context,
	userID, examID int64,
	scoreAchieved, totalPossibleScore float64,
) (*attempts.Attempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) ListByExam(_ context.Context, _ int64) ([]attempts.ExamResult, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) ListStudentEnrollments(_ context.Context) ([]attempts.Enrollment, error) {
	return f.enrollments, nil
}

func newAdminRouter(t *testing.T, repo attempts.Repository) (*gin.Engine, *auth.TokenCodec) {
	t.Helper()

	codec, err := auth.NewTokenCodec("test-secret-key-for-testing", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	v1 := router.Group("/api/v1")
	RegisterRoutes(v1, repo, codec)

	return router, codec
}

func getEnrollments(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/enrollments", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGetEnrollments_AdminOnly(t *testing.T) {
	router, codec := newAdminRouter(t, &fakeAttemptRepo{})

	w := getEnrollments(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	student, err := codec.Issue(1, "student@example.com", "Student", auth.RoleStudent)
	require.NoError(t, err)

	w = getEnrollments(router, student)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetEnrollments_ReturnsReport(t *testing.T) {
	repo := &fakeAttemptRepo{
		enrollments: []attempts.Enrollment{
			{
				EnrollmentID:       1,
				StudentID:          3,
				StudentName:        "Student",
				StudentEmail:       "student@example.com",
				ExamID:             7,
				ExamTitle:          "Algebra Final",
				EnrollmentDate:     time.Now().UTC(),
				ScoreAchieved:      45,
				TotalPossibleScore: 50,
			},
		},
	}

	router, codec := newAdminRouter(t, repo)

	admin, err := codec.Issue(2, "admin@example.com", "Admin", auth.RoleAdmin)
	require.NoError(t, err)

	w := getEnrollments(router, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var resp EnrollmentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Enrollments, 1)
	assert.Equal(t, "Algebra Final", resp.Enrollments[0].ExamTitle)
	assert.Equal(t, int64(3), resp.Enrollments[0].StudentID)
}
