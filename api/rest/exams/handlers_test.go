package exams

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codeberg.org/examdesk/server/examdesk/attempts"
	"codeberg.org/examdesk/server/examdesk/exams"
	"codeberg.org/examdesk/server/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// in-memory exam store used in place of postgres
type fakeExamRepo struct {
	nextID int64
	byID   map[int64]*exams.Exam
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{nextID: 1, byID: map[int64]*exams.Exam{}}
}

func (f *fakeExamRepo) Create(
	_ context.Context,
	title string,
	description *string,
	durationMinutes int,
	passingScore float64,
	createdBy int64,
) (*exams.Exam, error) {
	exam := &exams.Exam{
		ID:              f.nextID,
		Title:           title,
		Description:     description,
		DurationMinutes: durationMinutes,
		PassingScore:    passingScore,
		CreatedBy:       createdBy,
		CreatedAt:       time.Now(),
	}
	f.nextID++
	f.byID[exam.ID] = exam

	clone := *exam

	return &clone, nil
}

func (f *fakeExamRepo) List(_ context.Context) ([]exams.Exam, error) {
	list := []exams.Exam{}
	for _, exam := range f.byID {
		list = append(list, *exam)
	}

	return list, nil
}

func (f *fakeExamRepo) GetByID(_ context.Context, id int64) (*exams.Exam, error) {
	exam, ok := f.byID[id]
	if !ok {
		return nil, exams.ErrNotFound
	}

	clone := *exam

	return &clone, nil
}

func (f *fakeExamRepo) Update(_ context.Context, id int64, fields exams.UpdateFields) (*exams.Exam, error) {
	exam, ok := f.byID[id]
	if !ok {
		return nil, exams.ErrNotFound
	}

	if fields.Title != nil {
		exam.Title = *fields.Title
	}

	if fields.Description != nil {
		exam.Description = fields.Description
	}

	if fields.DurationMinutes != nil {
		exam.DurationMinutes = *fields.DurationMinutes
	}

	if fields.PassingScore != nil {
		exam.PassingScore = *fields.PassingScore
	}

	clone := *exam

	return &clone, nil
}

func (f *fakeExamRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return exams.ErrNotFound
	}

	delete(f.byID, id)

	return nil
}

// in-memory attempt store used in place of postgres
type fakeAttemptRepo struct {
	nextID  int64
	records []attempts.Attempt
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{nextID: 1}
}

func (f *fakeAttemptRepo) Create(
	_ context.Context,
	userID, examID int64,
	scoreAchieved, totalPossibleScore float64,
) (*attempts.Attempt, error) {
	attempt := attempts.Attempt{
		ID:                 f.nextID,
		UserID:             userID,
		ExamID:             examID,
		ScoreAchieved:      scoreAchieved,
		TotalPossibleScore: totalPossibleScore,
		PercentageScore:    scoreAchieved / totalPossibleScore * 100,
		SubmittedAt:        time.Now(),
	}
	f.nextID++
	f.records = append(f.records, attempt)

	return &attempt, nil
}

func (f *fakeAttemptRepo) ListByExam(_ context.Context, examID int64) ([]attempts.ExamResult, error) {
	results := []attempts.ExamResult{}

	for _, attempt := range f.records {
		if attempt.ExamID != examID {
			continue
		}

		results = append(results, attempts.ExamResult{
			AttemptID:          attempt.ID,
			UserID:             attempt.UserID,
			StudentName:        "Student",
			StudentEmail:       "student@example.com",
			ExamID:             attempt.ExamID,
			ScoreAchieved:      attempt.ScoreAchieved,
			TotalPossibleScore: attempt.TotalPossibleScore,
			PercentageScore:    attempt.PercentageScore,
			SubmittedAt:        attempt.SubmittedAt,
		})
	}

	return results, nil
}

func (f *fakeAttemptRepo) ListStudentEnrollments(_ context.Context) ([]attempts.Enrollment, error) {
	return []attempts.Enrollment{}, nil
}

type examFixture struct {
	router      *gin.Engine
	examRepo    *fakeExamRepo
	attemptRepo *fakeAttemptRepo
	student     string
	admin       string
}

func newExamFixture(t *testing.T) *examFixture {
	t.Helper()

	codec, err := auth.NewTokenCodec("test-secret-key-for-testing", time.Hour)
	require.NoError(t, err)

	examRepo := newFakeExamRepo()
	attemptRepo := newFakeAttemptRepo()

	router := gin.New()
	v1 := router.Group("/api/v1")
	RegisterRoutes(v1, examRepo, attemptRepo, codec)

	student, err := codec.Issue(1, "student@example.com", "Student", auth.RoleStudent)
	require.NoError(t, err)

	admin, err := codec.Issue(2, "admin@example.com", "Admin", auth.RoleAdmin)
	require.NoError(t, err)

	return &examFixture{
		router:      router,
		examRepo:    examRepo,
		attemptRepo: attemptRepo,
		student:     student,
		admin:       admin,
	}
}

func (f *examFixture) do(method, path string, payload any, token string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func validExamBody() gin.H {
	return gin.H{
		"title":            "Algebra Final",
		"description":      "Covers the full term",
		"duration_minutes": 90,
		"passing_score":    60.0,
	}
}

func TestCreateExam_AdminOnly(t *testing.T) {
	f := newExamFixture(t)

	w := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp CreateExamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Algebra Final", resp.Exam.Title)
	assert.Equal(t, int64(2), resp.Exam.CreatedBy)
}

func TestCreateExam_Validation(t *testing.T) {
	f := newExamFixture(t)

	cases := []gin.H{
		{"duration_minutes": 90, "passing_score": 60.0},              // missing title
		{"title": "X", "passing_score": 60.0},                       // missing duration
		{"title": "X", "duration_minutes": 90},                      // missing passing score
		{"title": "X", "duration_minutes": 0, "passing_score": 60},  // non-positive duration
		{"title": "X", "duration_minutes": 90, "passing_score": -1}, // score below range
		{"title": "X", "duration_minutes": 90, "passing_score": 101},
	}

	for _, body := range cases {
		w := f.do(http.MethodPost, "/api/v1/exams", body, f.admin)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v must be rejected", body)
	}

	assert.Empty(t, f.examRepo.byID)
}

func TestListExams_RequiresAuth(t *testing.T) {
	f := newExamFixture(t)

	w := f.do(http.MethodGet, "/api/v1/exams", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodGet, "/api/v1/exams", nil, f.student)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetExam(t *testing.T) {
	f := newExamFixture(t)

	created := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, created.Code)

	w := f.do(http.MethodGet, "/api/v1/exams/1", nil, f.student)
	require.Equal(t, http.StatusOK, w.Code)

	var exam exams.Exam
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exam))
	assert.Equal(t, "Algebra Final", exam.Title)

	w = f.do(http.MethodGet, "/api/v1/exams/999", nil, f.student)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodGet, "/api/v1/exams/abc", nil, f.student)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateExam(t *testing.T) {
	f := newExamFixture(t)

	created := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, created.Code)

	// no fields provided
	w := f.do(http.MethodPut, "/api/v1/exams/1", gin.H{}, f.admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// students cannot update
	w = f.do(http.MethodPut, "/api/v1/exams/1", gin.H{"title": "New"}, f.student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// partial update leaves other fields untouched
	w = f.do(http.MethodPut, "/api/v1/exams/1", gin.H{"title": "Algebra Retake"}, f.admin)
	require.Equal(t, http.StatusOK, w.Code)

	var resp UpdateExamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Algebra Retake", resp.Exam.Title)
	assert.Equal(t, 90, resp.Exam.DurationMinutes)

	// unknown exam
	w = f.do(http.MethodPut, "/api/v1/exams/999", gin.H{"title": "X"}, f.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteExam(t *testing.T) {
	f := newExamFixture(t)

	created := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, created.Code)

	w := f.do(http.MethodDelete, "/api/v1/exams/1", nil, f.student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodDelete, "/api/v1/exams/1", nil, f.admin)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodDelete, "/api/v1/exams/1", nil, f.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAttempt(t *testing.T) {
	f := newExamFixture(t)

	created := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, created.Code)

	w := f.do(http.MethodPost, "/api/v1/exams/1/attempts",
		gin.H{"score_achieved": 45.0, "total_possible_score": 50.0}, f.student)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitAttemptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Attempt.UserID)
	assert.InDelta(t, 90.0, resp.Attempt.PercentageScore, 0.001)

	// score outside the possible range
	w = f.do(http.MethodPost, "/api/v1/exams/1/attempts",
		gin.H{"score_achieved": 60.0, "total_possible_score": 50.0}, f.student)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown exam
	w = f.do(http.MethodPost, "/api/v1/exams/999/attempts",
		gin.H{"score_achieved": 45.0, "total_possible_score": 50.0}, f.student)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetExamResults(t *testing.T) {
	f := newExamFixture(t)

	created := f.do(http.MethodPost, "/api/v1/exams", validExamBody(), f.admin)
	require.Equal(t, http.StatusCreated, created.Code)

	submitted := f.do(http.MethodPost, "/api/v1/exams/1/attempts",
		gin.H{"score_achieved": 45.0, "total_possible_score": 50.0}, f.student)
	require.Equal(t, http.StatusCreated, submitted.Code)

	// results are admin-gated
	w := f.do(http.MethodGet, "/api/v1/exams/1/results", nil, f.student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodGet, "/api/v1/exams/1/results", nil, f.admin)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExamResultsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ExamID)
	assert.Equal(t, "Algebra Final", resp.ExamTitle)
	require.Len(t, resp.Results, 1)
	assert.InDelta(t, 45.0, resp.Results[0].ScoreAchieved, 0.001)

	// missing exam gets its own 404 before any results lookup
	w = f.do(http.MethodGet, "/api/v1/exams/999/results", nil, f.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
