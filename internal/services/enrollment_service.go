package services

import (
	"context"

	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/models/dtos/responses"
	"helping-hands/volunteerhub/internal/models/entities"
)

// EnrollmentService handles applications. Open postings accept directly;
// review-based postings queue the application as pending.
type EnrollmentService struct {
	postings    *repositories.PostingRepository
	enrollments *repositories.EnrollmentRepository
	queue       *repositories.ApplicationQueueRepository
	metrics     *metrics.MetricsRegistry
}

func NewEnrollmentService(
	postings *repositories.PostingRepository,
	enrollments *repositories.EnrollmentRepository,
	queue *repositories.ApplicationQueueRepository,
	m *metrics.MetricsRegistry,
) *EnrollmentService {
	return &EnrollmentService{postings: postings, enrollments: enrollments, queue: queue, metrics: m}
}

func (s *EnrollmentService) Enroll(ctx context.Context, volunteerID, postingID uint, message *string) (*responses.EnrollmentResponse, error) {
	p, err := s.postings.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}

	status, action := constants.EnrollmentPending, "applied"
	if p.IsOpen {
		status, action = constants.EnrollmentAccepted, "enrolled"
	}

	e, err := s.enrollments.Apply(ctx, volunteerID, postingID, message, status)
	if err != nil {
		return nil, err
	}
	s.count(action)
	logging.Info("Volunteer applied", "volunteer_id", volunteerID, "posting_id", postingID, "status", status)

	resp := responses.NewEnrollmentResponse(e)
	return &resp, nil
}

func (s *EnrollmentService) Withdraw(ctx context.Context, volunteerID, postingID uint) error {
	if err := s.enrollments.Withdraw(ctx, volunteerID, postingID); err != nil {
		return err
	}
	s.count("withdrawn")
	return nil
}

// ListEnrollments returns accepted volunteers of an owned posting.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, orgID, postingID uint) ([]responses.ApplicantResponse, error) {
	return s.list(ctx, orgID, postingID, constants.EnrollmentAccepted)
}

// ListApplications returns pending applications of an owned posting.
func (s *EnrollmentService) ListApplications(ctx context.Context, orgID, postingID uint) ([]responses.ApplicantResponse, error) {
	return s.list(ctx, orgID, postingID, constants.EnrollmentPending)
}

func (s *EnrollmentService) Accept(ctx context.Context, orgID, postingID, enrollmentID uint) (*responses.EnrollmentResponse, error) {
	return s.decide(ctx, orgID, postingID, enrollmentID, constants.EnrollmentAccepted, "accepted")
}

// Reject marks the application rejected. The volunteer may apply again later.
func (s *EnrollmentService) Reject(ctx context.Context, orgID, postingID, enrollmentID uint) (*responses.EnrollmentResponse, error) {
	return s.decide(ctx, orgID, postingID, enrollmentID, constants.EnrollmentRejected, "rejected")
}

func (s *EnrollmentService) decide(ctx context.Context, orgID, postingID, enrollmentID uint, status constants.EnrollmentStatus, action string) (*responses.EnrollmentResponse, error) {
	if _, err := s.postings.GetOwned(ctx, orgID, postingID); err != nil {
		return nil, err
	}
	e, err := s.enrollments.Decide(ctx, postingID, enrollmentID, status)
	if err != nil {
		return nil, err
	}
	s.count(action)
	logging.Info("Application decided", "posting_id", postingID, "enrollment_id", enrollmentID, "status", status)

	resp := responses.NewEnrollmentResponse(e)
	return &resp, nil
}

func (s *EnrollmentService) list(ctx context.Context, orgID, postingID uint, status constants.EnrollmentStatus) ([]responses.ApplicantResponse, error) {
	if _, err := s.postings.GetOwned(ctx, orgID, postingID); err != nil {
		return nil, err
	}
	rows, skills, err := s.queue.ListForPosting(ctx, postingID, status)
	if err != nil {
		return nil, err
	}
	out := make([]responses.ApplicantResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, applicantResponse(row, skills[row.VolunteerID]))
	}
	return out, nil
}

func (s *EnrollmentService) count(action string) {
	if s.metrics != nil {
		countAction(s.metrics.EnrollmentsTotal, action)
	}
}

// applicantResponse hides email and date of birth of private volunteers.
func applicantResponse(row entities.ApplicantRow, skills []string) responses.ApplicantResponse {
	if skills == nil {
		skills = []string{}
	}
	summary := responses.VolunteerSummary{
		ID:          row.VolunteerID,
		Name:        row.Name,
		Gender:      row.Gender,
		Description: row.Description,
		Privacy:     row.Privacy.String(),
		Skills:      skills,
	}
	if row.Privacy != constants.PrivacyPrivate {
		summary.Email = row.Email
		summary.DateOfBirth = responses.FormatDate(row.DateOfBirth)
	}
	return responses.ApplicantResponse{
		EnrollmentID: row.EnrollmentID,
		PostingID:    row.PostingID,
		Message:      row.Message,
		Status:       row.Status.String(),
		AppliedAt:    row.CreatedAt,
		Volunteer:    summary,
	}
}
