package api

import (
	"net/http"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/models/dtos/requests"
)

var (
	userLoginRoles  = []constants.Role{constants.RoleOrganization, constants.RoleVolunteer}
	adminLoginRoles = []constants.Role{constants.RoleAdmin}
)

// UserLogin handles POST /user/login
//
// @Summary      Log in as an organization or volunteer
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  responses.TokenResponse
// @Failure      401  {object}  common.ErrorBody
// @Router       /user/login [post]
func (h *Handlers) UserLogin() http.HandlerFunc {
	return h.login(userLoginRoles)
}

// AdminLogin handles POST /admin/login
func (h *Handlers) AdminLogin() http.HandlerFunc {
	return h.login(adminLoginRoles)
}

func (h *Handlers) login(roles []constants.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.LoginRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		token, err := h.deps.Services.Accounts.Login(r.Context(), roles, req.Email, req.Password)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, token)
	}
}

// RegisterVolunteer handles POST /volunteer/create
//
// @Summary      Register a volunteer account
// @Tags         Accounts
// @Accept       json
// @Produce      json
// @Success      201  {object}  responses.TokenResponse
// @Failure      400  {object}  common.ErrorBody
// @Failure      409  {object}  common.ErrorBody
// @Router       /volunteer/create [post]
func (h *Handlers) RegisterVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.RegisterVolunteerRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		token, err := h.deps.Services.Accounts.RegisterVolunteer(r.Context(), req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusCreated, token)
	}
}

// Me handles GET /{role}/me. The body shape follows the caller's role.
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		me, err := h.deps.Services.Accounts.Me(r.Context(), id)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, me)
	}
}

// ResetPassword handles POST /{role}/reset-password and returns a fresh token.
func (h *Handlers) ResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.ResetPasswordRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		token, err := h.deps.Services.Accounts.ResetPassword(r.Context(), id, req.CurrentPassword, req.NewPassword)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, token)
	}
}

// UpdateOrganizationProfile handles PUT /organization/profile
func (h *Handlers) UpdateOrganizationProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity(r)
		if err != nil {
			common.RespondError(w, err)
			return
		}

		var req requests.OrganizationProfileRequest
		if err := decodeAndValidate(w, r, &req); err != nil {
			common.RespondError(w, err)
			return
		}

		org, err := h.deps.Services.Accounts.UpdateOrganizationProfile(r.Context(), id.ID, req)
		if err != nil {
			common.RespondError(w, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, org)
	}
}
