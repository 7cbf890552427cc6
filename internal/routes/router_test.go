package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"helping-hands/volunteerhub/internal/api"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/config"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/notifications"
)

type testServer struct {
	deps    *api.Dependencies
	handler http.Handler
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	database, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	cfg := &config.Config{
		AppEnv:      "test",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		CacheTTL:    time.Minute,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	deps, err := api.InitDependencies(context.Background(), cfg, database, metrics.NewMetricsRegistry())
	if err != nil {
		t.Fatalf("InitDependencies: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })

	return &testServer{deps: deps, handler: NewRouter(deps)}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) expect(t *testing.T, rec *httptest.ResponseRecorder, code int, out any) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func (s *testServer) login(t *testing.T, path, email, password string) string {
	t.Helper()
	var tok struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	s.expect(t, s.do(t, http.MethodPost, path, "", map[string]string{"email": email, "password": password}), http.StatusOK, &tok)
	if tok.Token == "" {
		t.Fatal("login returned empty token")
	}
	return tok.Token
}

var tempPassword = regexp.MustCompile(`temporary password <b>([^<]+)</b>`)

func (s *testServer) approvedOrganization(t *testing.T, adminToken, email string) string {
	t.Helper()
	var created struct {
		ID uint `json:"id"`
	}
	s.expect(t, s.do(t, http.MethodPost, "/organization/request", "", map[string]any{
		"email":         email,
		"name":          "Shore Trust",
		"contact":       "+1 555 0100",
		"description":   "Keeps the bay clean",
		"latitude":      36.6,
		"longitude":     -121.9,
		"location_name": "Monterey Bay",
	}), http.StatusCreated, &created)

	s.expect(t, s.do(t, http.MethodPost, "/admin/reviewOrganizationRequest", adminToken, map[string]any{
		"request_id": created.ID,
		"approve":    true,
	}), http.StatusOK, nil)

	outbox := s.deps.Services.Outbox.(*notifications.SyncOutbox)
	var password string
	for _, d := range outbox.Deliveries() {
		if d.Message.To == email && d.Message.Kind == constants.MailOrganizationAccepted {
			if m := tempPassword.FindStringSubmatch(d.Message.Body); m != nil {
				password = m[1]
			}
		}
	}
	if password == "" {
		t.Fatal("no acceptance mail with a temporary password")
	}
	return s.login(t, "/user/login", email, password)
}

func TestBeachCleanupFlow(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	if _, err := s.deps.Services.Accounts.CreateAdmin(ctx, "root@example.com", "Root", "admin-pass-1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	adminToken := s.login(t, "/admin/login", "root@example.com", "admin-pass-1")
	orgToken := s.approvedOrganization(t, adminToken, "shore@example.com")

	// The request is gone once reviewed.
	var pending []map[string]any
	s.expect(t, s.do(t, http.MethodGet, "/admin/organizationRequests", adminToken, nil), http.StatusOK, &pending)
	if len(pending) != 0 {
		t.Errorf("expected no pending requests, got %d", len(pending))
	}

	var posting struct {
		ID     uint     `json:"id"`
		Skills []string `json:"skills"`
	}
	s.expect(t, s.do(t, http.MethodPost, "/organization/posting", orgToken, map[string]any{
		"title":          "Beach Cleanup",
		"description":    "Litter pick on the north shore",
		"latitude":       36.6,
		"longitude":      -121.9,
		"location_name":  "Monterey Bay",
		"start_time":     time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		"is_open":        false,
		"max_volunteers": 5,
		"skills":         []string{"Lifting", "first aid"},
	}), http.StatusCreated, &posting)

	s.expect(t, s.do(t, http.MethodPost, "/volunteer/create", "", map[string]any{
		"email":    "vee@example.com",
		"password": "volunteer-1",
		"name":     "Vee",
		"privacy":  "private",
		"skills":   []string{"first aid"},
	}), http.StatusCreated, nil)
	volToken := s.login(t, "/user/login", "vee@example.com", "volunteer-1")

	var browse []map[string]any
	s.expect(t, s.do(t, http.MethodGet, "/volunteer/posting", volToken, nil), http.StatusOK, &browse)
	if len(browse) != 0 {
		t.Errorf("review-based posting should not be browsable, got %d", len(browse))
	}

	postingPath := fmt.Sprintf("/volunteer/posting/%d", posting.ID)
	var enrollment struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	s.expect(t, s.do(t, http.MethodPost, postingPath+"/enroll", volToken, map[string]string{"message": "Happy to help"}), http.StatusCreated, &enrollment)
	if enrollment.Status != string(constants.EnrollmentPending) {
		t.Fatalf("expected pending enrollment, got %q", enrollment.Status)
	}

	var conflict common.ErrorBody
	s.expect(t, s.do(t, http.MethodPost, postingPath+"/enroll", volToken, nil), http.StatusConflict, &conflict)
	if conflict.Message != constants.MsgAlreadyEnrolled {
		t.Errorf("unexpected conflict message %q", conflict.Message)
	}

	orgPostingPath := fmt.Sprintf("/organization/posting/%d", posting.ID)
	var applicants []struct {
		EnrollmentID uint    `json:"enrollment_id"`
		Message      *string `json:"message"`
		Volunteer    struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"volunteer"`
	}
	s.expect(t, s.do(t, http.MethodGet, orgPostingPath+"/applications", orgToken, nil), http.StatusOK, &applicants)
	if len(applicants) != 1 || applicants[0].EnrollmentID != enrollment.ID {
		t.Fatalf("unexpected applications: %+v", applicants)
	}
	if applicants[0].Message == nil || *applicants[0].Message != "Happy to help" {
		t.Errorf("unexpected application message %v", applicants[0].Message)
	}
	if applicants[0].Volunteer.Email != "" {
		t.Error("private volunteer email leaked")
	}

	s.expect(t, s.do(t, http.MethodPost, fmt.Sprintf("%s/applications/%d/accept", orgPostingPath, enrollment.ID), orgToken, nil), http.StatusOK, nil)
	s.expect(t, s.do(t, http.MethodPost, fmt.Sprintf("%s/applications/%d/accept", orgPostingPath, enrollment.ID), orgToken, nil), http.StatusConflict, nil)

	var accepted []map[string]any
	s.expect(t, s.do(t, http.MethodGet, orgPostingPath+"/enrollments", orgToken, nil), http.StatusOK, &accepted)
	if len(accepted) != 1 {
		t.Errorf("expected one accepted enrollment, got %d", len(accepted))
	}
	var stillPending []map[string]any
	s.expect(t, s.do(t, http.MethodGet, orgPostingPath+"/applications", orgToken, nil), http.StatusOK, &stillPending)
	if len(stillPending) != 0 {
		t.Errorf("accepted volunteer still listed as applicant")
	}

	var view struct {
		Title            string  `json:"title"`
		EnrollmentStatus *string `json:"enrollment_status"`
	}
	s.expect(t, s.do(t, http.MethodGet, postingPath, volToken, nil), http.StatusOK, &view)
	if view.EnrollmentStatus == nil || *view.EnrollmentStatus != string(constants.EnrollmentAccepted) {
		t.Errorf("expected accepted status on the posting view, got %v", view.EnrollmentStatus)
	}

	var mine []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	s.expect(t, s.do(t, http.MethodGet, "/volunteer/enrollments", volToken, nil), http.StatusOK, &mine)
	if len(mine) != 1 || mine[0].Title != "Beach Cleanup" {
		t.Errorf("unexpected volunteer enrollments: %+v", mine)
	}

	s.expect(t, s.do(t, http.MethodDelete, postingPath+"/enroll", volToken, nil), http.StatusNoContent, nil)
	s.expect(t, s.do(t, http.MethodDelete, postingPath+"/enroll", volToken, nil), http.StatusNotFound, nil)

	s.expect(t, s.do(t, http.MethodDelete, orgPostingPath, orgToken, nil), http.StatusNoContent, nil)
	s.expect(t, s.do(t, http.MethodGet, postingPath, volToken, nil), http.StatusNotFound, nil)
}

func TestRoleGates(t *testing.T) {
	s := setupTestServer(t)

	s.expect(t, s.do(t, http.MethodPost, "/volunteer/create", "", map[string]any{
		"email":    "vee@example.com",
		"password": "volunteer-1",
		"name":     "Vee",
	}), http.StatusCreated, nil)
	volToken := s.login(t, "/user/login", "vee@example.com", "volunteer-1")

	tests := []struct {
		method string
		path   string
		token  string
		want   int
	}{
		{http.MethodGet, "/volunteer/me", volToken, http.StatusOK},
		{http.MethodGet, "/volunteer/me", "", http.StatusForbidden},
		{http.MethodGet, "/volunteer/me", "not-a-token", http.StatusForbidden},
		{http.MethodGet, "/organization/me", volToken, http.StatusForbidden},
		{http.MethodGet, "/organization/posting", volToken, http.StatusForbidden},
		{http.MethodGet, "/admin/organizationRequests", volToken, http.StatusForbidden},
		{http.MethodPost, "/admin/reviewOrganizationRequest", volToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := s.do(t, tt.method, tt.path, tt.token, nil)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLoginDoesNotCrossAccountKinds(t *testing.T) {
	s := setupTestServer(t)
	if _, err := s.deps.Services.Accounts.CreateAdmin(context.Background(), "root@example.com", "Root", "admin-pass-1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	rec := s.do(t, http.MethodPost, "/user/login", "", map[string]string{"email": "root@example.com", "password": "admin-pass-1"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("admin credentials must not log in through /user/login, got %d", rec.Code)
	}
}

func TestErrorBodyShape(t *testing.T) {
	s := setupTestServer(t)

	rec := s.do(t, http.MethodPost, "/volunteer/create", "", map[string]any{"email": "not-an-email"})
	var body common.ErrorBody
	s.expect(t, rec, http.StatusBadRequest, &body)

	if !strings.Contains(body.Message, "email must be a valid email address") {
		t.Errorf("unexpected message %q", body.Message)
	}
	if !strings.Contains(body.Message, "password is required") {
		t.Errorf("message should list every failing field, got %q", body.Message)
	}
	if body.Stack == "" {
		t.Error("expected a stack outside production")
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type %q", got)
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := setupTestServer(t)

	s.expect(t, s.do(t, http.MethodGet, "/healthCheck", "", nil), http.StatusOK, nil)

	rec := s.do(t, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("expected request counter in exposition")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}
