package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

// GetVolunteerProfile handles GET /volunteer/profile
func (h *Handlers) GetVolunteerProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		profile, err := h.deps.Services.Volunteers.GetProfile(r.Context(), id.ID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, profile)
	}
}

// UpdateVolunteerProfile handles PUT /volunteer/profile. Skills are replaced
// wholesale.
func (h *Handlers) UpdateVolunteerProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.VolunteerProfileRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		profile, err := h.deps.Services.Volunteers.UpdateProfile(r.Context(), id.ID, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, profile)
	}
}

// ListVolunteerEnrollments handles GET /volunteer/enrollments
func (h *Handlers) ListVolunteerEnrollments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		rows, err := h.deps.Services.Volunteers.ListEnrollments(r.Context(), id.ID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, rows)
	}
}
