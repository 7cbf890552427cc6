package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

// SubmitOrganizationRequest handles POST /organization/request
//
// @Summary      Ask for an organization account
// @Description  Queues a request for admin review. No account exists until it is approved.
// @Tags         Organizations
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.OrganizationRequestResponse
// @Failure      409  {object}  common.ErrorBody
// @Router       /organization/request [post]
func (h *Handlers) SubmitOrganizationRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SubmitOrganizationRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		out, err := h.deps.Services.OrganizationRequests.Submit(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusCreated, out)
	}
}

// ListOrganizationRequests handles GET /admin/organizationRequests
func (h *Handlers) ListOrganizationRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.deps.Services.OrganizationRequests.List(r.Context())
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, out)
	}
}

// ReviewOrganizationRequest handles POST /admin/reviewOrganizationRequest
//
// @Summary      Approve or reject an organization request
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.ReviewResultResponse
// @Failure      404  {object}  common.ErrorBody
// @Router       /admin/reviewOrganizationRequest [post]
func (h *Handlers) ReviewOrganizationRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.ReviewOrganizationRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		out, err := h.deps.Services.OrganizationRequests.Review(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, out)
	}
}
