package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

// CreatePosting handles POST /organization/posting
//
// @Summary      Publish a posting
// @Tags         Postings
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.PostingResponse
// @Failure      400  {object}  common.ErrorBody
// @Router       /organization/posting [post]
func (h *Handlers) CreatePosting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.PostingRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		posting, err := h.deps.Services.Postings.Create(r.Context(), id.ID, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusCreated, posting)
	}
}

// ListOwnPostings handles GET /organization/posting
func (h *Handlers) ListOwnPostings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		postings, err := h.deps.Services.Postings.ListOwned(r.Context(), id.ID, postingFilter(r))
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, postings)
	}
}

// GetOwnPosting handles GET /organization/posting/{id}
func (h *Handlers) GetOwnPosting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		posting, err := h.deps.Services.Postings.GetOwned(r.Context(), id.ID, postingID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, posting)
	}
}

// UpdatePosting handles PUT /organization/posting/{id}. The whole posting is
// replaced, skills included.
func (h *Handlers) UpdatePosting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.PostingRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		posting, err := h.deps.Services.Postings.Update(r.Context(), id.ID, postingID, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, posting)
	}
}

// DeletePosting handles DELETE /organization/posting/{id}
func (h *Handlers) DeletePosting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		if err := h.deps.Services.Postings.Delete(r.Context(), id.ID, postingID); err != nil {
			common.RespondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// BrowsePostings handles GET /volunteer/posting. Only open postings are listed.
//
// @Summary      Browse open postings
// @Tags         Postings
// @Produce      json
// @Param        location  query  string  false  "location name contains"
// @Param        skill     query  string  false  "required skill contains"
// @Param        start     query  string  false  "start time contains"
// @Param        end       query  string  false  "end time contains"
// @Success      200  {array}  responses.VolunteerPostingResponse
// @Router       /volunteer/posting [get]
func (h *Handlers) BrowsePostings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		postings, err := h.deps.Services.Postings.Browse(r.Context(), id.ID, postingFilter(r))
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, postings)
	}
}

// GetPostingForVolunteer handles GET /volunteer/posting/{id}
func (h *Handlers) GetPostingForVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		posting, err := h.deps.Services.Postings.GetForVolunteer(r.Context(), id.ID, postingID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, posting)
	}
}
