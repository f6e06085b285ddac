package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusdesk/complaint-api/internal/models"
	"github.com/campusdesk/complaint-api/internal/service"
	"github.com/campusdesk/complaint-api/pkg/config"
)

type studentRepoStub struct {
	students map[string]models.Student
}

func (s *studentRepoStub) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if stu, ok := s.students[studentID]; ok {
		return &stu, nil
	}
	return nil, sql.ErrNoRows
}

type complaintRepoStub struct {
	complaints map[int64]models.Complaint
	nextID     int64
}

func (s *complaintRepoStub) Create(ctx context.Context, c *models.Complaint) error {
	if s.complaints == nil {
		s.complaints = map[int64]models.Complaint{}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	c.ID = s.nextID
	s.nextID++
	s.complaints[c.ID] = *c
	return nil
}

func (s *complaintRepoStub) ListAll(ctx context.Context) ([]models.Complaint, error) {
	out := make([]models.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		out = append(out, c)
	}
	return out, nil
}

func (s *complaintRepoStub) ListByStudent(ctx context.Context, studentID string) ([]models.Complaint, error) {
	out := make([]models.Complaint, 0)
	for _, c := range s.complaints {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *complaintRepoStub) FindByID(ctx context.Context, id int64) (*models.Complaint, error) {
	if c, ok := s.complaints[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (s *complaintRepoStub) MarkResolved(ctx context.Context, id int64) (bool, error) {
	c, ok := s.complaints[id]
	if !ok || c.Status != models.StatusPending {
		return false, nil
	}
	c.Status = models.StatusResolved
	s.complaints[id] = c
	return true, nil
}

type generatorStub struct {
	replies []string
}

func (g *generatorStub) Generate(ctx context.Context, prompt string) (string, error) {
	if len(g.replies) == 0 {
		return "normal", nil
	}
	reply := g.replies[0]
	g.replies = g.replies[1:]
	return reply, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *complaintRepoStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validate := validator.New()
	studentRepo := &studentRepoStub{students: map[string]models.Student{
		"STU001": {ID: 1, StudentID: "STU001", Name: "John Doe", Email: "john@college.edu", Password: "student123"},
	}}
	complaintRepo := &complaintRepoStub{}
	admin := config.AdminConfig{Username: "admin", Password: "admin123"}

	authHandler := NewAuthHandler(service.NewAuthService(studentRepo, admin, validate, zap.NewNop()))
	complaintHandler := NewComplaintHandler(service.NewComplaintService(complaintRepo, &generatorStub{}, validate, zap.NewNop()))
	chatHandler := NewChatHandler(service.NewChatService(&generatorStub{replies: []string{"Try rebooting."}}, validate, zap.NewNop()))

	r := gin.New()
	r.POST("/student/login", authHandler.StudentLogin)
	r.POST("/admin/login", authHandler.AdminLogin)
	r.POST("/classify-complaint", complaintHandler.Submit)
	r.GET("/student/complaints/:student_id", complaintHandler.ListForStudent)
	r.GET("/admin/complaints", complaintHandler.ListAll)
	r.PUT("/admin/complaints/:id/resolve", complaintHandler.Resolve)
	r.POST("/chatbot", chatHandler.Respond)
	return r, complaintRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStudentLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/student/login", gin.H{"student_id": "STU001", "password": "student123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Student models.StudentInfo `json:"student"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "STU001", resp.Student.ID)
	assert.Equal(t, "john@college.edu", resp.Student.Email)
}

func TestStudentLoginEndpointRejectsBadPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/student/login", gin.H{"student_id": "STU001", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

func TestAdminLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/admin/login", gin.H{"username": "admin", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitComplaintEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/classify-complaint", gin.H{
		"complaint_text": "WiFi is down in block B",
		"student_id":     "STU001",
		"student_name":   "John Doe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID        int64  `json:"id"`
		Category  string `json:"category"`
		Sentiment string `json:"sentiment"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.ID, int64(1))
	assert.Contains(t, []string{"Mess", "WiFi/Network", "Technical Issue", "Academic/Teacher", "Safety/Security"}, resp.Category)
	assert.Contains(t, []string{"urgent", "angry", "normal"}, resp.Sentiment)
	assert.Equal(t, "Complaint Submitted Successfully", resp.Status)
	assert.Len(t, repo.complaints, 1)
}

func TestSubmitComplaintEndpointMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/classify-complaint", gin.H{"complaint_text": "no id"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestListStudentComplaintsEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.complaints = map[int64]models.Complaint{
		1: {ID: 1, StudentID: "STU001", Status: models.StatusPending},
		2: {ID: 2, StudentID: "STU002", Status: models.StatusPending},
	}
	repo.nextID = 3

	w := doJSON(t, r, http.MethodGet, "/student/complaints/STU001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Complaints []models.StudentComplaintView `json:"complaints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Complaints, 1)
	assert.Equal(t, int64(1), resp.Complaints[0].ID)
}

func TestResolveComplaintEndpoint(t *testing.T) {
	r, repo := newTestRouter(t)
	repo.complaints = map[int64]models.Complaint{1: {ID: 1, Status: models.StatusPending}}
	repo.nextID = 2

	w := doJSON(t, r, http.MethodPut, "/admin/complaints/1/resolve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Complaint resolved successfully")

	w = doJSON(t, r, http.MethodPut, "/admin/complaints/1/resolve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Complaint already resolved")

	w = doJSON(t, r, http.MethodPut, "/admin/complaints/99/resolve", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/admin/complaints/abc/resolve", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatbotEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/chatbot", gin.H{"message": "WiFi will not connect"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Try rebooting.", resp["reply"])
	assert.Equal(t, "success", resp["status"])

	w = doJSON(t, r, http.MethodPost, "/chatbot", gin.H{"message": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
