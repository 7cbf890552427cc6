package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/config"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
	"helping-hands/volunteerhub/internal/models/entities"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
	"helping-hands/volunteerhub/internal/notifications"
)

func setupTestDeps(t *testing.T) *Dependencies {
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
		AppEnv:    "test",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		CacheTTL:  time.Minute,
	}
	deps, err := InitDependencies(context.Background(), cfg, database, metrics.NewMetricsRegistry())
	if err != nil {
		t.Fatalf("InitDependencies: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })
	return deps
}

func TestInitDependenciesWithoutRedis(t *testing.T) {
	deps := setupTestDeps(t)

	if deps.Redis != nil || deps.Services.RedisQueue != nil {
		t.Fatal("expected no Redis wiring when disabled")
	}
	if _, ok := deps.Services.Outbox.(*notifications.SyncOutbox); !ok {
		t.Errorf("expected synchronous outbox, got %T", deps.Services.Outbox)
	}
	if _, ok := deps.Services.Mailer.(notifications.LogMailer); !ok {
		t.Errorf("expected log mailer without SMTP host, got %T", deps.Services.Mailer)
	}
}

func TestInitDependenciesRequiresSecret(t *testing.T) {
	database, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer database.Close()

	if _, err := InitDependencies(context.Background(), &config.Config{}, database, metrics.NewMetricsRegistry()); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestDecodeAndValidateMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "empty body",
			body: "",
			want: []string{constants.MsgInvalidBody},
		},
		{
			name: "malformed json",
			body: "{",
			want: []string{constants.MsgInvalidBody},
		},
		{
			name: "missing fields",
			body: `{"description":"x"}`,
			want: []string{"title is required", "latitude is required", "start_time is required", "is_open is required"},
		},
		{
			name: "range checks",
			body: `{"title":"t","description":"d","latitude":91,"longitude":0,"location_name":"l","start_time":"2030-01-01T10:00:00Z","is_open":true,"max_volunteers":0}`,
			want: []string{"latitude must be a valid latitude", "max_volunteers must be at least 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst requests.PostingRequest
			err := decodeAndValidate(httptest.NewRecorder(), req, &dst)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err.Error(), w)
				}
			}
		})
	}
}

func TestDecodeAndValidateStringLength(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","password":"short","name":"A"}`))
	var dst requests.RegisterVolunteerRequest
	err := decodeAndValidate(httptest.NewRecorder(), req, &dst)
	if err == nil || !strings.Contains(err.Error(), "password must be at least 8 characters") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tt.raw)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		got, err := pathID(r, "id")
		if (err != nil) != tt.wantErr {
			t.Errorf("pathID(%q) err = %v, wantErr %v", tt.raw, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("pathID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestHandlerWithoutIdentity(t *testing.T) {
	h := NewHandlers(setupTestDeps(t))

	rec := httptest.NewRecorder()
	h.Me().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/volunteer/me", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestEnrollAcceptsEmptyBody(t *testing.T) {
	deps := setupTestDeps(t)
	h := NewHandlers(deps)

	org := gormModels.Organization{Email: "org@example.com", Name: "Shore Trust", PasswordHash: "x", LocationName: "Bay"}
	if err := deps.DB.ORM.Create(&org).Error; err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	posting := gormModels.Posting{OrganizationID: org.ID, Title: "Beach Cleanup", Description: "d", LocationName: "Bay", StartTime: time.Now().Add(24 * time.Hour), IsOpen: true}
	if err := deps.DB.ORM.Omit("Skills", "Enrollments").Create(&posting).Error; err != nil {
		t.Fatalf("seed posting: %v", err)
	}
	vol := gormModels.Volunteer{Email: "vol@example.com", Name: "Vee", PasswordHash: "x", Privacy: constants.PrivacyPublic}
	if err := deps.DB.ORM.Omit("Skills", "Enrollments").Create(&vol).Error; err != nil {
		t.Fatalf("seed volunteer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/volunteer/posting/1/enroll", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", strconv.FormatUint(uint64(posting.ID), 10))
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	r = withIdentity(r, auth.Identity{ID: vol.ID, Role: constants.RoleVolunteer})

	rec := httptest.NewRecorder()
	h.Enroll().ServeHTTP(rec, r)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != string(constants.EnrollmentAccepted) {
		t.Errorf("expected accepted enrollment on an open posting, got %v", resp["status"])
	}
}

func TestHealthCheckHandler(t *testing.T) {
	deps := setupTestDeps(t)
	h := NewHandlers(deps)

	rec := httptest.NewRecorder()
	h.HealthCheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp entities.HealthCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" || resp.Services["database"].Status != "ok" {
		t.Errorf("unexpected health: %+v", resp)
	}
	if _, ok := resp.Services["redis"]; ok {
		t.Error("redis should not be probed when disabled")
	}
}

func TestHealthCheckHandlerDatabaseDown(t *testing.T) {
	deps := setupTestDeps(t)
	_ = deps.DB.Close()
	h := NewHandlers(deps)

	rec := httptest.NewRecorder()
	h.HealthCheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func withIdentity(r *http.Request, id auth.Identity) *http.Request {
	return r.WithContext(auth.SetIdentity(r.Context(), id))
}
