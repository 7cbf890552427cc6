package repositories

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

// Setup test database
func setupTestDB(t *testing.T) *db.Database {
	t.Helper()
	database, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func seedOrganization(t *testing.T, database *db.Database, email string) *gormModels.Organization {
	t.Helper()
	org := &gormModels.Organization{Email: email, Name: "Org " + email, PasswordHash: "x"}
	if err := database.ORM.Create(org).Error; err != nil {
		t.Fatalf("seed organization: %v", err)
	}
	return org
}

func seedVolunteer(t *testing.T, database *db.Database, email string) *gormModels.Volunteer {
	t.Helper()
	v := &gormModels.Volunteer{Email: email, Name: "Vol " + email, PasswordHash: "x", Privacy: constants.PrivacyPublic}
	if err := NewVolunteerRepository(database.ORM).Create(context.Background(), v, []string{"first aid"}); err != nil {
		t.Fatalf("seed volunteer: %v", err)
	}
	return v
}

func newPosting(orgID uint, title string, open bool, start time.Time) *gormModels.Posting {
	return &gormModels.Posting{
		OrganizationID: orgID,
		Title:          title,
		Description:    "desc",
		LocationName:   "Santa Monica Beach",
		StartTime:      start,
		IsOpen:         open,
	}
}

func sortedSkills(p *gormModels.Posting) []string {
	names := p.SkillNames()
	sort.Strings(names)
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPostingSkillsAreReplacedAsSet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPostingRepository(database.ORM)
	ctx := context.Background()
	org := seedOrganization(t, database, "org@example.org")

	p := newPosting(org.ID, "Beach Cleanup", true, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	if err := repo.Create(ctx, p, []string{"lifting", "driving"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := []string{"driving", "lifting"}; !equalStrings(sortedSkills(got), want) {
		t.Fatalf("expected skills %v, got %v", want, sortedSkills(got))
	}

	got.Title = "Beach Cleanup II"
	if err := repo.Update(ctx, org.ID, got, []string{"swimming"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if want := []string{"swimming"}; !equalStrings(sortedSkills(got), want) {
		t.Errorf("expected skills %v after update, got %v", want, sortedSkills(got))
	}
	if got.Title != "Beach Cleanup II" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
}

func TestPostingMutationsRequireOwner(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPostingRepository(database.ORM)
	ctx := context.Background()
	owner := seedOrganization(t, database, "owner@example.org")
	other := seedOrganization(t, database, "other@example.org")

	p := newPosting(owner.ID, "Food Bank", true, time.Now().UTC())
	if err := repo.Create(ctx, p, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetOwned(ctx, other.ID, p.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetOwned by other: expected not found, got %v", err)
	}
	p.Title = "hijacked"
	if err := repo.Update(ctx, other.ID, p, nil); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Update by other: expected not found, got %v", err)
	}
	if err := repo.Delete(ctx, other.ID, p.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Delete by other: expected not found, got %v", err)
	}
	if _, err := repo.GetOwned(ctx, owner.ID, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("missing posting: expected not found, got %v", err)
	}
}

func TestPostingDeleteLeavesNoOrphans(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPostingRepository(database.ORM)
	enrollments := NewEnrollmentRepository(database.ORM)
	ctx := context.Background()
	org := seedOrganization(t, database, "org@example.org")
	vol := seedVolunteer(t, database, "vol@example.org")

	p := newPosting(org.ID, "Tree Planting", true, time.Now().UTC())
	if err := repo.Create(ctx, p, []string{"digging", "watering"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := enrollments.Apply(ctx, vol.ID, p.ID, nil, constants.EnrollmentAccepted); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := repo.Delete(ctx, org.ID, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var n int64
	database.ORM.Model(&gormModels.PostingSkill{}).Where("posting_id = ?", p.ID).Count(&n)
	if n != 0 {
		t.Errorf("expected no posting skills, got %d", n)
	}
	database.ORM.Model(&gormModels.Enrollment{}).Where("posting_id = ?", p.ID).Count(&n)
	if n != 0 {
		t.Errorf("expected no enrollments, got %d", n)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected posting gone, got %v", err)
	}
}

func TestPostingListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPostingRepository(database.ORM)
	ctx := context.Background()
	org := seedOrganization(t, database, "org@example.org")
	other := seedOrganization(t, database, "other@example.org")

	beach := newPosting(org.ID, "Beach Cleanup", true, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	closed := newPosting(org.ID, "Mentoring", false, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	closed.LocationName = "Downtown Library"
	foreign := newPosting(other.ID, "Soup Kitchen", true, time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC))
	foreign.LocationName = "Downtown 50% Hall"

	for p, skills := range map[*gormModels.Posting][]string{
		beach:   {"Lifting"},
		closed:  {"Teaching"},
		foreign: {"Cooking"},
	} {
		if err := repo.Create(ctx, p, skills); err != nil {
			t.Fatalf("create %s: %v", p.Title, err)
		}
	}

	titles := func(ps []gormModels.Posting) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Title)
		}
		return out
	}

	tests := []struct {
		name  string
		query PostingQuery
		want  []string
	}{
		{"open only", PostingQuery{OnlyOpen: true}, []string{"Beach Cleanup", "Soup Kitchen"}},
		{"owner sees all modes", PostingQuery{OrganizationID: &org.ID}, []string{"Beach Cleanup", "Mentoring"}},
		{"location substring", PostingQuery{Filter: requests.PostingFilter{Location: "downtown"}}, []string{"Mentoring", "Soup Kitchen"}},
		{"location wildcard escaped", PostingQuery{Filter: requests.PostingFilter{Location: "50%"}}, []string{"Soup Kitchen"}},
		{"skill substring", PostingQuery{Filter: requests.PostingFilter{Skill: "teach"}}, []string{"Mentoring"}},
		{"start text", PostingQuery{Filter: requests.PostingFilter{Start: "2025-06-01"}}, []string{"Beach Cleanup"}},
		{"combined", PostingQuery{OnlyOpen: true, Filter: requests.PostingFilter{Location: "downtown"}}, []string{"Soup Kitchen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.query)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if !equalStrings(titles(got), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, titles(got))
			}
		})
	}
}

func TestEnrollmentApplyIsUniquePerPair(t *testing.T) {
	database := setupTestDB(t)
	repo := NewEnrollmentRepository(database.ORM)
	ctx := context.Background()
	vol := seedVolunteer(t, database, "vol@example.org")

	msg := "Happy to help"
	e, err := repo.Apply(ctx, vol.ID, 1, &msg, constants.EnrollmentPending)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if e.Status != constants.EnrollmentPending || e.Message == nil || *e.Message != msg {
		t.Fatalf("unexpected enrollment %+v", e)
	}

	if _, err := repo.Apply(ctx, vol.ID, 1, nil, constants.EnrollmentPending); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("second apply: expected conflict, got %v", err)
	}

	if _, err := repo.Decide(ctx, 1, e.ID, constants.EnrollmentRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	reopened, err := repo.Apply(ctx, vol.ID, 1, nil, constants.EnrollmentPending)
	if err != nil {
		t.Fatalf("apply after reject: %v", err)
	}
	if reopened.ID != e.ID || reopened.Status != constants.EnrollmentPending || reopened.Message != nil {
		t.Errorf("expected same row reopened, got %+v", reopened)
	}

	var n int64
	database.ORM.Model(&gormModels.Enrollment{}).Where("volunteer_id = ? AND posting_id = ?", vol.ID, 1).Count(&n)
	if n != 1 {
		t.Errorf("expected one row for the pair, got %d", n)
	}
}

func TestEnrollmentDecide(t *testing.T) {
	database := setupTestDB(t)
	repo := NewEnrollmentRepository(database.ORM)
	ctx := context.Background()
	vol := seedVolunteer(t, database, "vol@example.org")

	e, err := repo.Apply(ctx, vol.ID, 7, nil, constants.EnrollmentPending)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := repo.Decide(ctx, 8, e.ID, constants.EnrollmentAccepted); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("wrong posting: expected not found, got %v", err)
	}

	accepted, err := repo.Decide(ctx, 7, e.ID, constants.EnrollmentAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != constants.EnrollmentAccepted || accepted.DecidedAt == nil {
		t.Errorf("unexpected accepted row %+v", accepted)
	}
	if _, err := repo.Decide(ctx, 7, e.ID, constants.EnrollmentRejected); !errors.Is(err, common.ErrConflict) {
		t.Errorf("deciding twice: expected conflict, got %v", err)
	}

	statuses, err := repo.StatusesFor(ctx, vol.ID, []uint{7, 8})
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if statuses[7] != constants.EnrollmentAccepted {
		t.Errorf("expected accepted status, got %q", statuses[7])
	}
	if _, ok := statuses[8]; ok {
		t.Error("expected no status for posting 8")
	}

	if err := repo.Withdraw(ctx, vol.ID, 7); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if err := repo.Withdraw(ctx, vol.ID, 7); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second withdraw: expected not found, got %v", err)
	}
}

func TestOrganizationRequestApproveAndReject(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOrganizationRequestRepository(database.ORM)
	ctx := context.Background()

	req := &gormModels.OrganizationRequest{Email: " Helpers@Example.org ", Name: "Helpers", LocationName: "LA"}
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &gormModels.OrganizationRequest{Email: "helpers@example.org", Name: "Dup"}); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("duplicate pending request: expected conflict, got %v", err)
	}

	org, resolved, err := repo.Approve(ctx, req.ID, "hash")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if org.Email != "helpers@example.org" || resolved.ID != req.ID {
		t.Errorf("unexpected approval result %+v %+v", org, resolved)
	}

	var n int64
	database.ORM.Model(&gormModels.OrganizationRequest{}).Where("email = ?", "helpers@example.org").Count(&n)
	if n != 0 {
		t.Errorf("expected request removed, got %d", n)
	}
	database.ORM.Model(&gormModels.Organization{}).Where("email = ?", "helpers@example.org").Count(&n)
	if n != 1 {
		t.Errorf("expected exactly one organization, got %d", n)
	}

	if _, _, err := repo.Approve(ctx, req.ID, "hash"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("approving twice: expected not found, got %v", err)
	}
	if err := repo.Create(ctx, &gormModels.OrganizationRequest{Email: "helpers@example.org", Name: "Again"}); !errors.Is(err, common.ErrConflict) {
		t.Errorf("request for existing organization: expected conflict, got %v", err)
	}

	other := &gormModels.OrganizationRequest{Email: "nope@example.org", Name: "Nope"}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}
	pending, err := repo.List(ctx)
	if err != nil || len(pending) != 1 {
		t.Fatalf("expected one pending request, got %d (%v)", len(pending), err)
	}
	if _, err := repo.Reject(ctx, other.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := repo.GetByID(ctx, other.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected rejected request gone, got %v", err)
	}
}

func TestAccountRepositoryAcrossRoles(t *testing.T) {
	database := setupTestDB(t)
	repo := NewAccountRepository(database.ORM)
	ctx := context.Background()

	admin := &gormModels.Admin{Email: "Root@Example.org", Name: "Root", PasswordHash: "a"}
	if err := repo.CreateAdmin(ctx, admin); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := repo.CreateAdmin(ctx, &gormModels.Admin{Email: "root@example.org", Name: "Dup", PasswordHash: "b"}); !errors.Is(err, common.ErrConflict) {
		t.Errorf("duplicate admin: expected conflict, got %v", err)
	}
	org := seedOrganization(t, database, "shared@example.org")
	vol := seedVolunteer(t, database, "shared@example.org")

	tests := []struct {
		role constants.Role
		id   uint
	}{
		{constants.RoleAdmin, admin.ID},
		{constants.RoleOrganization, org.ID},
		{constants.RoleVolunteer, vol.ID},
	}
	for _, tt := range tests {
		email := "shared@example.org"
		if tt.role == constants.RoleAdmin {
			email = "root@example.org"
		}
		acc, err := repo.FindCredentialByEmail(ctx, tt.role, "  "+email)
		if err != nil {
			t.Fatalf("%s: find: %v", tt.role, err)
		}
		if acc.AccountID() != tt.id || acc.AccountRole() != tt.role {
			t.Errorf("%s: unexpected account %d/%s", tt.role, acc.AccountID(), acc.AccountRole())
		}
		if err := repo.UpdatePassword(ctx, tt.role, tt.id, "new-hash"); err != nil {
			t.Fatalf("%s: update password: %v", tt.role, err)
		}
		acc, err = repo.FindByID(ctx, tt.role, tt.id)
		if err != nil || acc.Hash() != "new-hash" {
			t.Errorf("%s: expected new hash, got %v (%v)", tt.role, acc, err)
		}
		taken, err := repo.EmailTaken(ctx, tt.role, email)
		if err != nil || !taken {
			t.Errorf("%s: expected email taken", tt.role)
		}
	}

	if _, err := repo.FindCredentialByEmail(ctx, constants.RoleAdmin, "shared@example.org"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected admin lookup not to see other tables, got %v", err)
	}
	if err := repo.UpdatePassword(ctx, constants.RoleVolunteer, 9999, "x"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected not found for missing account, got %v", err)
	}
	if _, err := repo.FindByID(ctx, constants.Role("pilot"), 1); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestVolunteerProfileReplacesSkills(t *testing.T) {
	database := setupTestDB(t)
	repo := NewVolunteerRepository(database.ORM)
	ctx := context.Background()
	vol := seedVolunteer(t, database, "vol@example.org")

	if err := repo.Create(ctx, &gormModels.Volunteer{Email: "VOL@example.org", Name: "Dup", PasswordHash: "x"}, nil); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("duplicate volunteer: expected conflict, got %v", err)
	}

	dob := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	vol.Name = "Renamed"
	vol.DateOfBirth = &dob
	vol.Privacy = constants.PrivacyPrivate
	if err := repo.UpdateProfile(ctx, vol, []string{"cooking", "driving"}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	got, err := repo.GetByID(ctx, vol.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Renamed" || got.Privacy != constants.PrivacyPrivate || got.DateOfBirth == nil {
		t.Errorf("profile not updated: %+v", got)
	}
	if want := []string{"cooking", "driving"}; !equalStrings(got.SkillNames(), want) {
		t.Errorf("expected skills %v, got %v", want, got.SkillNames())
	}
}
