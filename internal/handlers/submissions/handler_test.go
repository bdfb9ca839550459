package submissions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/handlers"
	"gitlab.com/codearena.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// fakeJWTService accepts any bearer token and returns a fixed identity
type fakeJWTService struct{}

func (fakeJWTService) GenerateTokenHMAC(ctx context.Context, method string, claims map[string]interface{}) (string, error) {
	return "token", nil
}
func (fakeJWTService) VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error) {
	return true, nil
}
func (fakeJWTService) DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error) {
	return domain.AuthPayload{UserID: "user-1", Name: "Alice", Role: domain.RoleUser}, nil
}
func (fakeJWTService) EncryptPassword(ctx context.Context, password string) (string, error) {
	return password, nil
}
func (fakeJWTService) VerifyPassword(ctx context.Context, passwordHash string, pwd string) (bool, error) {
	return true, nil
}

type fakeJudgeService struct {
	submission *domain.Submission
	err        error
	gotUserID  string
	history    []*domain.Submission
}

func (f *fakeJudgeService) Submit(ctx context.Context, req *domain.SubmissionRequest, userID string) (*domain.Submission, error) {
	f.gotUserID = userID
	return f.submission, f.err
}

func (f *fakeJudgeService) ListSubmissions(ctx context.Context, userID string) ([]*domain.Submission, error) {
	return f.history, f.err
}

func newTestRouter(svc *fakeJudgeService) *mux.Router {
	r := mux.NewRouter()
	middleware := handlers.NewMiddlewareProvider(fakeJWTService{})
	NewSubmissionHandler(svc, middleware, nopLogger{}).RegisterRoutes(r)
	return r
}

func submitRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func validBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(domain.SubmissionRequest{
		Code:      "print(1)",
		Language:  "python",
		ProblemID: uuid.New(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func TestSubmitCode_Success(t *testing.T) {
	svc := &fakeJudgeService{submission: &domain.Submission{
		ID:      uuid.New(),
		Verdict: domain.VerdictPassed,
	}}
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, submitRequest(t, validBody(t)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != "user-1" {
		t.Fatalf("expected the token's user id, got %q", svc.gotUserID)
	}

	var resp struct {
		Message    string             `json:"message"`
		Submission *domain.Submission `json:"submission"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Submission == nil || resp.Submission.Verdict != domain.VerdictPassed {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestSubmitCode_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"problem not found", errs.ProblemNotFound, http.StatusNotFound},
		{"no test cases", errs.NoTestCases, http.StatusUnprocessableEntity},
		{"language not supported", errs.LanguageNotSupported, http.StatusBadRequest},
		{"internal failure", errs.InternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeJudgeService{err: tt.err}
			rec := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rec, submitRequest(t, validBody(t)))

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSubmitCode_BadRequestBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&fakeJudgeService{}).ServeHTTP(rec, submitRequest(t, "{not json"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitCode_MissingFields(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&fakeJudgeService{}).ServeHTTP(rec, submitRequest(t, `{"language":"python"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitCode_Unauthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(validBody(t)))

	newTestRouter(&fakeJudgeService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetUserSubmissions_EmptyHistoryIsAnEmptyList(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/submit/user", nil)
	req.Header.Set("Authorization", "Bearer token")

	newTestRouter(&fakeJudgeService{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected an empty JSON array, got %q", body)
	}
}
