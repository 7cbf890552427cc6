package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"helping-hands/volunteerhub/internal/api"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/middleware"
)

// RegisterAPIRoutes registers the account, posting and enrollment routes.
// Every group but the public one is gated on a single role.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, limiter func(http.Handler) http.Handler) {

	// Public routes
	r.Group(func(public chi.Router) {
		public.Use(limiter)
		public.Post("/user/login", handlers.UserLogin())
		public.Post("/admin/login", handlers.AdminLogin())
		public.Post("/volunteer/create", handlers.RegisterVolunteer())
		public.Post("/organization/request", handlers.SubmitOrganizationRequest())
	})

	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.RequireRole(constants.RoleAdmin))

		admin.Get("/me", handlers.Me())
		admin.Post("/reset-password", handlers.ResetPassword())
		admin.Get("/organizationRequests", handlers.ListOrganizationRequests())
		admin.Post("/reviewOrganizationRequest", handlers.ReviewOrganizationRequest())
	})

	r.Route("/organization", func(org chi.Router) {
		org.Use(middleware.RequireRole(constants.RoleOrganization))

		org.Get("/me", handlers.Me())
		org.Post("/reset-password", handlers.ResetPassword())
		org.Put("/profile", handlers.UpdateOrganizationProfile())

		org.Route("/posting", func(p chi.Router) {
			p.Get("/", handlers.ListOwnPostings())
			p.Post("/", handlers.CreatePosting())

			p.Route("/{id}", func(one chi.Router) {
				one.Get("/", handlers.GetOwnPosting())
				one.Put("/", handlers.UpdatePosting())
				one.Delete("/", handlers.DeletePosting())

				one.Get("/enrollments", handlers.ListPostingEnrollments())
				one.Get("/applications", handlers.ListPostingApplications())
				one.Post("/applications/{applicationID}/accept", handlers.AcceptApplication())
				one.Delete("/applications/{applicationID}", handlers.RejectApplication())
			})
		})
	})

	r.Route("/volunteer", func(vol chi.Router) {
		vol.Use(middleware.RequireRole(constants.RoleVolunteer))

		vol.Get("/me", handlers.Me())
		vol.Post("/reset-password", handlers.ResetPassword())
		vol.Get("/profile", handlers.GetVolunteerProfile())
		vol.Put("/profile", handlers.UpdateVolunteerProfile())
		vol.Get("/enrollments", handlers.ListVolunteerEnrollments())

		vol.Get("/posting", handlers.BrowsePostings())
		vol.Get("/posting/{id}", handlers.GetPostingForVolunteer())
		vol.Post("/posting/{id}/enroll", handlers.Enroll())
		vol.Delete("/posting/{id}/enroll", handlers.Withdraw())
	})
}
