package services

import (
	"context"
	"fmt"
	"strings"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
	"helping-hands/volunteerhub/internal/models/dtos/responses"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
	"helping-hands/volunteerhub/internal/notifications"
)

// OrganizationRequestService runs the signup approval workflow. Mail goes out
// through the outbox after the database work commits; an outbox failure is
// logged and does not fail the review.
type OrganizationRequestService struct {
	requests         *repositories.OrganizationRequestRepository
	outbox           notifications.Outbox
	metrics          *metrics.MetricsRegistry
	generatePassword func(n int) (string, error)
}

func NewOrganizationRequestService(
	requestRepo *repositories.OrganizationRequestRepository,
	outbox notifications.Outbox,
	m *metrics.MetricsRegistry,
) *OrganizationRequestService {
	return &OrganizationRequestService{
		requests:         requestRepo,
		outbox:           outbox,
		metrics:          m,
		generatePassword: auth.GeneratePassword,
	}
}

func (s *OrganizationRequestService) Submit(ctx context.Context, req requests.SubmitOrganizationRequest) (*responses.OrganizationRequestResponse, error) {
	r := &gormModels.OrganizationRequest{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		Contact:      req.Contact,
		Description:  req.Description,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		LocationName: strings.TrimSpace(req.LocationName),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	s.count("submitted")
	logging.Info("Organization request submitted", "request_id", r.ID)

	resp := responses.NewOrganizationRequestResponse(r)
	return &resp, nil
}

func (s *OrganizationRequestService) List(ctx context.Context) ([]responses.OrganizationRequestResponse, error) {
	rows, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]responses.OrganizationRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, responses.NewOrganizationRequestResponse(&rows[i]))
	}
	return out, nil
}

// Review approves or rejects a pending request. Approval creates the
// organization with a generated password and mails it.
func (s *OrganizationRequestService) Review(ctx context.Context, req requests.ReviewOrganizationRequest) (*responses.ReviewResultResponse, error) {
	if req.Approve != nil && *req.Approve {
		return s.approve(ctx, req.RequestID)
	}
	return s.reject(ctx, req.RequestID, req.Reason)
}

func (s *OrganizationRequestService) approve(ctx context.Context, requestID uint) (*responses.ReviewResultResponse, error) {
	password, err := s.generatePassword(constants.GeneratedPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	org, r, err := s.requests.Approve(ctx, requestID, hash)
	if err != nil {
		return nil, err
	}
	s.count("approved")
	logging.Info("Organization request approved", "request_id", r.ID, "organization_id", org.ID)

	s.notify(ctx, notifications.OrganizationAccepted(org.Email, org.Name, password))
	return &responses.ReviewResultResponse{
		RequestID:      r.ID,
		Approved:       true,
		OrganizationID: &org.ID,
		Email:          org.Email,
	}, nil
}

func (s *OrganizationRequestService) reject(ctx context.Context, requestID uint, reason string) (*responses.ReviewResultResponse, error) {
	r, err := s.requests.Reject(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.count("rejected")
	logging.Info("Organization request rejected", "request_id", r.ID)

	s.notify(ctx, notifications.OrganizationRejected(r.Email, r.Name, reason))
	return &responses.ReviewResultResponse{RequestID: r.ID, Approved: false, Email: r.Email}, nil
}

func (s *OrganizationRequestService) notify(ctx context.Context, msg notifications.Message) {
	if err := s.outbox.Enqueue(ctx, msg); err != nil {
		logging.Error("Failed to enqueue mail", "kind", msg.Kind, "to", msg.To, "error", err)
	}
}

func (s *OrganizationRequestService) count(action string) {
	if s.metrics != nil {
		countAction(s.metrics.OrganizationRequestsTotal, action)
	}
}
