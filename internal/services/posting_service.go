package services

import (
	"context"
	"strings"
	"time"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/db/repositories"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
	"helping-hands/volunteerhub/internal/models/dtos/responses"
	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

const postingCacheName = "posting"

// PostingService owns the posting lifecycle. Reads by id go through the cache;
// writes invalidate it.
type PostingService struct {
	postings    *repositories.PostingRepository
	enrollments *repositories.EnrollmentRepository
	cache       common.CacheInterface
	cacheTTL    time.Duration
	metrics     *metrics.MetricsRegistry
}

func NewPostingService(
	postings *repositories.PostingRepository,
	enrollments *repositories.EnrollmentRepository,
	cache common.CacheInterface,
	cacheTTL time.Duration,
	m *metrics.MetricsRegistry,
) *PostingService {
	return &PostingService{
		postings:    postings,
		enrollments: enrollments,
		cache:       cache,
		cacheTTL:    cacheTTL,
		metrics:     m,
	}
}

func (s *PostingService) Create(ctx context.Context, orgID uint, req requests.PostingRequest) (*responses.PostingResponse, error) {
	p, err := postingFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.OrganizationID = orgID

	if err := s.postings.Create(ctx, p, common.NormalizeSkills(req.Skills)); err != nil {
		return nil, err
	}
	s.countPosting("created")
	logging.Info("Posting created", "posting_id", p.ID, "organization_id", orgID)

	resp := responses.NewPostingResponse(p)
	return &resp, nil
}

func (s *PostingService) Update(ctx context.Context, orgID, postingID uint, req requests.PostingRequest) (*responses.PostingResponse, error) {
	p, err := postingFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = postingID

	if err := s.postings.Update(ctx, orgID, p, common.NormalizeSkills(req.Skills)); err != nil {
		return nil, err
	}
	s.invalidate(ctx, postingID)
	s.countPosting("updated")

	return s.GetOwned(ctx, orgID, postingID)
}

func (s *PostingService) Delete(ctx context.Context, orgID, postingID uint) error {
	if err := s.postings.Delete(ctx, orgID, postingID); err != nil {
		return err
	}
	s.invalidate(ctx, postingID)
	s.countPosting("deleted")
	logging.Info("Posting deleted", "posting_id", postingID, "organization_id", orgID)
	return nil
}

// GetOwned returns the posting when orgID owns it. A foreign posting is
// reported as missing.
func (s *PostingService) GetOwned(ctx context.Context, orgID, postingID uint) (*responses.PostingResponse, error) {
	p, err := s.get(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if p.OrganizationID != orgID {
		return nil, common.NotFound(constants.MsgPostingNotFound)
	}
	return p, nil
}

// ListOwned lists the organization's postings in both modes.
func (s *PostingService) ListOwned(ctx context.Context, orgID uint, filter requests.PostingFilter) ([]responses.PostingResponse, error) {
	rows, err := s.postings.List(ctx, repositories.PostingQuery{OrganizationID: &orgID, Filter: filter})
	if err != nil {
		return nil, err
	}
	out := make([]responses.PostingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, responses.NewPostingResponse(&rows[i]))
	}
	return out, nil
}

// Browse lists open postings for a volunteer with their own enrollment status.
func (s *PostingService) Browse(ctx context.Context, volunteerID uint, filter requests.PostingFilter) ([]responses.VolunteerPostingResponse, error) {
	rows, err := s.postings.List(ctx, repositories.PostingQuery{OnlyOpen: true, Filter: filter})
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}
	statuses, err := s.enrollments.StatusesFor(ctx, volunteerID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]responses.VolunteerPostingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, responses.VolunteerPostingResponse{
			PostingResponse:  responses.NewPostingResponse(&rows[i]),
			EnrollmentStatus: statusPtr(statuses, rows[i].ID),
		})
	}
	return out, nil
}

// GetForVolunteer returns any posting by id, including review-based ones.
func (s *PostingService) GetForVolunteer(ctx context.Context, volunteerID, postingID uint) (*responses.VolunteerPostingResponse, error) {
	p, err := s.get(ctx, postingID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.enrollments.StatusesFor(ctx, volunteerID, []uint{postingID})
	if err != nil {
		return nil, err
	}
	return &responses.VolunteerPostingResponse{
		PostingResponse:  *p,
		EnrollmentStatus: statusPtr(statuses, postingID),
	}, nil
}

func (s *PostingService) get(ctx context.Context, postingID uint) (*responses.PostingResponse, error) {
	key := common.CacheKey(constants.CachePrefixPosting, postingID)
	resp, hit, err := common.GetOrLoad(ctx, s.cache, key, s.cacheTTL, func() (responses.PostingResponse, error) {
		p, err := s.postings.GetByID(ctx, postingID)
		if err != nil {
			return responses.PostingResponse{}, err
		}
		return responses.NewPostingResponse(p), nil
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		if hit {
			s.metrics.CacheHitsTotal.WithLabelValues(postingCacheName).Inc()
		} else {
			s.metrics.CacheMissesTotal.WithLabelValues(postingCacheName).Inc()
		}
	}
	return &resp, nil
}

func (s *PostingService) invalidate(ctx context.Context, postingID uint) {
	key := common.CacheKey(constants.CachePrefixPosting, postingID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logging.Warn("Failed to invalidate posting cache", "key", key, "error", err)
	}
}

func (s *PostingService) countPosting(action string) {
	if s.metrics != nil {
		countAction(s.metrics.PostingsTotal, action)
	}
}

func postingFromRequest(req requests.PostingRequest) (*gormModels.Posting, error) {
	start := req.StartTime.UTC()
	var end *time.Time
	if req.EndTime != nil {
		e := req.EndTime.UTC()
		if e.Before(start) {
			return nil, common.Validation("end_time must not be before start_time")
		}
		end = &e
	}
	return &gormModels.Posting{
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		LocationName:  strings.TrimSpace(req.LocationName),
		MaxVolunteers: req.MaxVolunteers,
		StartTime:     start,
		EndTime:       end,
		MinimumAge:    req.MinimumAge,
		IsOpen:        *req.IsOpen,
	}, nil
}

func statusPtr(statuses map[uint]constants.EnrollmentStatus, postingID uint) *string {
	st, ok := statuses[postingID]
	if !ok {
		return nil
	}
	s := st.String()
	return &s
}
