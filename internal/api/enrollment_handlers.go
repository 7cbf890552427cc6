package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/auth"
	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

func callerAndPosting(r *http.Request) (auth.Identity, uint, error) {
	id, err := identity(r)
	if err != nil {
		return auth.Identity{}, 0, err
	}
	postingID, err := pathID(r, "id")
	if err != nil {
		return auth.Identity{}, 0, err
	}
	return id, postingID, nil
}

// Enroll handles POST /volunteer/posting/{id}/enroll. The body is optional.
//
// @Summary      Apply to a posting
// @Description  Open postings accept right away; the rest queue the application for review.
// @Tags         Enrollments
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.EnrollmentResponse
// @Failure      404  {object}  common.ErrorBody
// @Failure      409  {object}  common.ErrorBody
// @Router       /volunteer/posting/{id}/enroll [post]
func (h *Handlers) Enroll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.EnrollRequest
		if r.ContentLength != 0 && r.Body != http.NoBody {
			if err := decodeAndValidate(w, r, &req); err != nil {
				common.RespondError(w, err)
				return
			}
		}

		enrollment, err := h.deps.Services.Enrollments.Enroll(r.Context(), id.ID, postingID, req.Message)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusCreated, enrollment)
	}
}

// Withdraw handles DELETE /volunteer/posting/{id}/enroll
func (h *Handlers) Withdraw() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		if err := h.deps.Services.Enrollments.Withdraw(r.Context(), id.ID, postingID); err != nil {
			common.RespondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListPostingEnrollments handles GET /organization/posting/{id}/enrollments
func (h *Handlers) ListPostingEnrollments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		rows, err := h.deps.Services.Enrollments.ListEnrollments(r.Context(), id.ID, postingID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, rows)
	}
}

// ListPostingApplications handles GET /organization/posting/{id}/applications
func (h *Handlers) ListPostingApplications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		rows, err := h.deps.Services.Enrollments.ListApplications(r.Context(), id.ID, postingID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, rows)
	}
}

// AcceptApplication handles
// POST /organization/posting/{id}/applications/{applicationID}/accept
func (h *Handlers) AcceptApplication() http.HandlerFunc {
	return h.decide(true)
}

// RejectApplication handles
// DELETE /organization/posting/{id}/applications/{applicationID}
func (h *Handlers) RejectApplication() http.HandlerFunc {
	return h.decide(false)
}

func (h *Handlers) decide(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, postingID, err := callerAndPosting(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		applicationID, err := pathID(r, "applicationID")
		if err != nil {
			common.RespondError(w, err)
			return
		}

		svc := h.deps.Services.Enrollments
		decide := svc.Reject
		if accept {
			decide = svc.Accept
		}
		enrollment, err := decide(r.Context(), id.ID, postingID, applicationID)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, enrollment)
	}
}
