package services

import (
	"context"
	"strings"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
	"helping-hands/volunteerhub/internal/models/dtos/responses"
)

type VolunteerService struct {
	volunteers *repositories.VolunteerRepository
	queue      *repositories.ApplicationQueueRepository
}

func NewVolunteerService(volunteers *repositories.VolunteerRepository, queue *repositories.ApplicationQueueRepository) *VolunteerService {
	return &VolunteerService{volunteers: volunteers, queue: queue}
}

func (s *VolunteerService) GetProfile(ctx context.Context, volunteerID uint) (*responses.VolunteerResponse, error) {
	v, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	resp := responses.NewVolunteerResponse(v)
	return &resp, nil
}

// UpdateProfile overwrites the profile and replaces the skill set.
func (s *VolunteerService) UpdateProfile(ctx context.Context, volunteerID uint, req requests.VolunteerProfileRequest) (*responses.VolunteerResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	v, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	v.Name = strings.TrimSpace(req.Name)
	v.DateOfBirth = dob
	v.Gender = req.Gender
	v.Description = req.Description
	v.Privacy = parsePrivacy(req.Privacy)

	if err := s.volunteers.UpdateProfile(ctx, v, common.NormalizeSkills(req.Skills)); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, volunteerID)
}

// ListEnrollments returns the volunteer's enrollments in every status.
func (s *VolunteerService) ListEnrollments(ctx context.Context, volunteerID uint) ([]responses.VolunteerEnrollmentResponse, error) {
	rows, err := s.queue.ListForVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	out := make([]responses.VolunteerEnrollmentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, responses.VolunteerEnrollmentResponse{
			EnrollmentID: row.EnrollmentID,
			PostingID:    row.PostingID,
			Title:        row.Title,
			StartTime:    row.StartTime,
			IsOpen:       row.IsOpen,
			Status:       row.Status.String(),
			Message:      row.Message,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, nil
}
