package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview-eval-be/internal/apperror"
	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/entity"
	"interview-eval-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProcessingService struct {
	ack *dto.ProcessingAck
	err error
	job *entity.Job
}

func (s *stubProcessingService) Submit(ctx context.Context, req *dto.ProcessingRequest) (*dto.ProcessingAck, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ack, nil
}

func (s *stubProcessingService) Process(ctx context.Context, jobId string, req *dto.ProcessingRequest) {}

func (s *stubProcessingService) GetJob(jobId string) (*entity.Job, bool) {
	if s.job != nil && s.job.Id == jobId {
		return s.job, true
	}
	return nil, false
}

func (s *stubProcessingService) EvaluatorHealthy(ctx context.Context) bool { return true }

type stubSessionService struct {
	started    bool
	err        error
	lastRoomId string
	lastUserId string
}

func (s *stubSessionService) EnterRoom(ctx context.Context, roomId, userId string) error {
	s.lastRoomId, s.lastUserId = roomId, userId
	return s.err
}

func (s *stubSessionService) LeaveRoom(ctx context.Context, roomId, userId string) error {
	return s.err
}

func (s *stubSessionService) StartInterview(ctx context.Context, roomId string, sessionId int, leaderUserId string) (bool, error) {
	return s.started, s.err
}

func (s *stubSessionService) EndInterview(ctx context.Context, roomId string, sessionId int) error {
	return s.err
}

func (s *stubSessionService) GetParticipantStatus(ctx context.Context, roomId, userId string) (*dto.ParticipantStatusResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ParticipantStatusResponse{UserId: userId, RoomId: roomId, Status: "WAITING"}, nil
}

func (s *stubSessionService) GetSessionStatus(ctx context.Context, sessionId int) (*dto.SessionStatusResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SessionStatusResponse{SessionId: sessionId, SessionStatus: "WAITING"}, nil
}

func newTestApp(proc *stubProcessingService, sess *stubSessionService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	if proc != nil {
		NewInterviewProcessingController(proc).RegisterRoutes(api)
	}
	if sess != nil {
		NewInterviewSessionController(sess).RegisterRoutes(api)
	}
	return app
}

func signedToken(t *testing.T, userId string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestProcessFullPipelineAck(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	proc := &stubProcessingService{ack: &dto.ProcessingAck{
		Success:         true,
		JobId:           "job-1",
		SessionId:       7,
		Status:          "PROCESSING_STARTED",
		TotalApplicants: 2,
	}}
	app := newTestApp(proc, nil)

	body, _ := json.Marshal(map[string]any{
		"session_id":      7,
		"job_role_name":   "Backend Engineer",
		"applicant_ids":   []string{"A1", "A2"},
		"applicant_names": []string{"Kim", "Lee"},
		"raw_stt":         map[string]any{"utterances": []string{}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/interviewers/process-full-pipeline", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var ack dto.ProcessingAck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.True(t, ack.Success)
	assert.Equal(t, "job-1", ack.JobId)
	assert.Equal(t, "PROCESSING_STARTED", ack.Status)
}

func TestProcessFullPipelineValidationFailure(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	proc := &stubProcessingService{err: apperror.Validationf("applicant id and name lists differ in length (2 vs 1)")}
	app := newTestApp(proc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/interviewers/process-full-pipeline",
		bytes.NewReader([]byte(`{"session_id":7}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INVALID_REQUEST", body["error"])
}

func TestProcessFullPipelineSchedulingFailureIsServerError(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	proc := &stubProcessingService{err: errors.New("publish pipeline job: channel closed")}
	app := newTestApp(proc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/interviewers/process-full-pipeline",
		bytes.NewReader([]byte(`{"session_id":7}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body["error"])
}

func TestProcessFullPipelineRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(&stubProcessingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/interviewers/process-full-pipeline",
		bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEvaluatorHealthIsOpen(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(&stubProcessingService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/interviewers/evaluator/health", nil)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetJobStatus(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	now := time.Now()
	proc := &stubProcessingService{job: &entity.Job{
		Id:              "job-9",
		SessionId:       7,
		Status:          entity.JobCompleted,
		TotalApplicants: 2,
		SubmittedAt:     now,
		FinishedAt:      &now,
		SuccessfulCount: 2,
	}}
	app := newTestApp(proc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/interviewers/jobs/job-9", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Unknown or expired job answers 404.
	req = httptest.NewRequest(http.MethodGet, "/api/interviewers/jobs/gone", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStartInterviewEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sess := &stubSessionService{started: true}
	app := newTestApp(nil, sess)

	body := []byte(`{"session_id":1,"user_id":"INT_A001"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/interview-sessions/rooms/room-1/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Status  int                        `json:"status"`
		Message string                     `json:"message"`
		Data    dto.StartInterviewResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Data.Started)
}

func TestStartInterviewNonLeaderMapsToForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sess := &stubSessionService{err: apperror.Unauthorizedf("user INT_A002 is not the leader of room room-1")}
	app := newTestApp(nil, sess)

	body := []byte(`{"session_id":1,"user_id":"INT_A002"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/interview-sessions/rooms/room-1/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A002"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEnterRoomUsesTokenIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	sess := &stubSessionService{}
	app := newTestApp(nil, sess)

	req := httptest.NewRequest(http.MethodPost, "/api/interview-sessions/rooms/room-1/enter", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A007"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "room-1", sess.lastRoomId)
	assert.Equal(t, "INT_A007", sess.lastUserId)
}

func TestGetSessionStatusRejectsNonNumericId(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(nil, &stubSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/interview-sessions/sessions/abc/status", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "INT_A001"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
