package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
	"helping-hands/volunteerhub/internal/models/dtos/responses"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

// AccountService handles login, self registration and password changes for
// every account variant.
type AccountService struct {
	accounts      *repositories.AccountRepository
	volunteers    *repositories.VolunteerRepository
	organizations *repositories.OrganizationRepository
	tokens        *auth.TokenIssuer
}

func NewAccountService(
	accounts *repositories.AccountRepository,
	volunteers *repositories.VolunteerRepository,
	organizations *repositories.OrganizationRepository,
	tokens *auth.TokenIssuer,
) *AccountService {
	return &AccountService{
		accounts:      accounts,
		volunteers:    volunteers,
		organizations: organizations,
		tokens:        tokens,
	}
}

// Login tries each account variant in order and issues a token for the first
// one whose password matches.
func (s *AccountService) Login(ctx context.Context, roles []constants.Role, email, password string) (*responses.TokenResponse, error) {
	for _, role := range roles {
		acc, err := s.accounts.FindCredentialByEmail(ctx, role, email)
		if errors.Is(err, common.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if auth.VerifyPassword(acc.Hash(), password) != nil {
			continue
		}
		return s.issue(auth.Identity{ID: acc.AccountID(), Role: acc.AccountRole()})
	}
	return nil, common.Unauthorized(constants.MsgInvalidCredentials)
}

// RegisterVolunteer creates a volunteer with its skills and logs them in.
func (s *AccountService) RegisterVolunteer(ctx context.Context, req requests.RegisterVolunteerRequest) (*responses.TokenResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	taken, err := s.accounts.EmailTaken(ctx, constants.RoleVolunteer, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, common.Conflict(constants.MsgVolunteerEmailTaken)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	v := &gormModels.Volunteer{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		DateOfBirth:  dob,
		Gender:       req.Gender,
		Description:  req.Description,
		Privacy:      parsePrivacy(req.Privacy),
	}
	if err := s.volunteers.Create(ctx, v, common.NormalizeSkills(req.Skills)); err != nil {
		return nil, err
	}

	logging.Info("Volunteer registered", "volunteer_id", v.ID)
	return s.issue(auth.Identity{ID: v.ID, Role: constants.RoleVolunteer})
}

// Me returns the caller's own account without its password hash.
func (s *AccountService) Me(ctx context.Context, id auth.Identity) (interface{}, error) {
	acc, err := s.accounts.FindByID(ctx, id.Role, id.ID)
	if err != nil {
		return nil, err
	}
	switch a := acc.(type) {
	case *gormModels.Admin:
		return responses.NewAdminResponse(a), nil
	case *gormModels.Organization:
		return responses.NewOrganizationResponse(a), nil
	case *gormModels.Volunteer:
		return responses.NewVolunteerResponse(a), nil
	}
	return nil, fmt.Errorf("unexpected account type %T", acc)
}

// ResetPassword replaces the password after checking the current one and
// issues a fresh token.
func (s *AccountService) ResetPassword(ctx context.Context, id auth.Identity, current, next string) (*responses.TokenResponse, error) {
	acc, err := s.accounts.FindByID(ctx, id.Role, id.ID)
	if err != nil {
		return nil, err
	}
	if auth.VerifyPassword(acc.Hash(), current) != nil {
		return nil, common.Unauthorized(constants.MsgWrongPassword)
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.accounts.UpdatePassword(ctx, id.Role, id.ID, hash); err != nil {
		return nil, err
	}

	logging.Info("Password reset", "role", id.Role, "user_id", id.ID)
	return s.issue(id)
}

// CreateAdmin seeds an admin account.
func (s *AccountService) CreateAdmin(ctx context.Context, email, name, password string) (*gormModels.Admin, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		return nil, common.Validation("email and name are required")
	}
	if len(password) < 8 {
		return nil, common.Validation("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &gormModels.Admin{Email: common.NormalizeEmail(email), Name: strings.TrimSpace(name), PasswordHash: hash}
	if err := s.accounts.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateOrganizationProfile changes everything but the organization's email.
func (s *AccountService) UpdateOrganizationProfile(ctx context.Context, orgID uint, req requests.OrganizationProfileRequest) (*responses.OrganizationResponse, error) {
	org, err := s.organizations.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	org.Name = strings.TrimSpace(req.Name)
	org.Contact = req.Contact
	org.Description = req.Description
	org.Latitude = *req.Latitude
	org.Longitude = *req.Longitude
	org.LocationName = req.LocationName
	if err := s.organizations.UpdateProfile(ctx, org); err != nil {
		return nil, err
	}

	resp := responses.NewOrganizationResponse(org)
	return &resp, nil
}

func (s *AccountService) issue(id auth.Identity) (*responses.TokenResponse, error) {
	token, expires, err := s.tokens.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &responses.TokenResponse{Token: token, Role: id.Role.String(), ExpiresAt: expires}, nil
}
