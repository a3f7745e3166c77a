package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crossbox/gym-api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Service fakes
// ==========================

type fakeAuth struct {
	register func(name, email, password string, role domain.Role) (*domain.User, error)
	login    func(email, password string) (string, *domain.User, error)
}

func (f *fakeAuth) Register(_ context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	return f.register(name, email, password, role)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	return f.login(email, password)
}

func (f *fakeAuth) GetJWTSecret() string { return testSecret }

type fakeChat struct {
	reply domain.ChatResponse
	got   string
}

func (f *fakeChat) Classify(string) domain.Intent { return f.reply.Type }

func (f *fakeChat) Respond(context.Context, domain.Intent, string) domain.ChatResponse { return f.reply }

func (f *fakeChat) HandleChatMessage(_ context.Context, message string) domain.ChatResponse {
	f.got = message
	return f.reply
}

type fakeFit struct {
	result *domain.FitResult
	err    error
	got    domain.FitQuizAnswer
}

func (f *fakeFit) HandleFitQuiz(_ context.Context, answer domain.FitQuizAnswer) (*domain.FitResult, error) {
	f.got = answer
	return f.result, f.err
}

type fakeBooking struct {
	status domain.BookingStatus
	err    error
}

func (f *fakeBooking) QuickBook(_ context.Context, req domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	req.ID = "b-1"
	req.Status = f.status
	return &req, nil
}

type fakeAdmin struct {
	stats      *domain.DashboardStats
	members    []domain.User
	toggleErr  error
	photo      *domain.PhotoUpload
	photoErr   error
	toggledIDs []string
}

func (f *fakeAdmin) DashboardStats(context.Context) (*domain.DashboardStats, error) {
	return f.stats, nil
}

func (f *fakeAdmin) ListMembers(context.Context) ([]domain.User, error) { return f.members, nil }

func (f *fakeAdmin) ListTrainers(context.Context) ([]domain.TrainerProfile, error) { return nil, nil }

func (f *fakeAdmin) ListClasses(context.Context) ([]domain.ClassSummary, error) { return nil, nil }

func (f *fakeAdmin) RecentActivity(context.Context) ([]domain.ActivityItem, error) { return nil, nil }

func (f *fakeAdmin) ToggleUser(_ context.Context, id string) (bool, error) {
	f.toggledIDs = append(f.toggledIDs, id)
	return true, f.toggleErr
}

func (f *fakeAdmin) ToggleTrainer(_ context.Context, id string) (bool, error) {
	f.toggledIDs = append(f.toggledIDs, id)
	return false, f.toggleErr
}

func (f *fakeAdmin) TrainerPhotoUploadURL(context.Context, string, string) (*domain.PhotoUpload, error) {
	return f.photo, f.photoErr
}

// ==========================
// Helpers
// ==========================

func newTestRouter(services Services) *gin.Engine {
	return NewRouter(zap.NewNop(), testSecret, services)
}

func signToken(t *testing.T, uid string, role domain.Role, ttl time.Duration) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: uid,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
