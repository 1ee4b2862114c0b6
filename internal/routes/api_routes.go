package routes

import (
	"github.com/Toyowa5296/poliform/internal/api"
	"github.com/Toyowa5296/poliform/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	tokens := deps.Services.Tokens
	sessions := deps.Services.Session

	r.Route("/api/v1", func(v1 chi.Router) {

		// Auth endpoints are rate limited per IP to slow down credential
		// stuffing.
		v1.Group(func(authRoutes chi.Router) {
			authRoutes.Use(middleware.RateLimitMiddleware)
			authRoutes.Post("/auth/signup", api.SignupHandler(deps))
			authRoutes.Post("/auth/login", api.LoginHandler(deps))
		})

		// Public reads. Claims are optional: an authenticated caller gets
		// their supported/membership flags filled in, an anonymous one gets
		// the same payload with the flags zeroed.
		v1.Group(func(public chi.Router) {
			public.Use(middleware.OptionalAuthMiddleware(tokens, sessions))
			public.Get("/parties", api.ListPartiesHandler(deps))
			public.Get("/parties/{partyID}", api.GetPartyHandler(deps))
			public.Get("/parties/{partyID}/comments", api.ListCommentsHandler(deps))
			public.Get("/tags", api.ListTagsHandler(deps))
		})

		// Everything else requires a live session.
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(tokens, sessions))

			authed.Post("/auth/logout", api.LogoutHandler(deps))

			authed.Get("/me", api.GetProfileHandler(deps))
			authed.Put("/me", api.UpdateProfileHandler(deps))
			authed.Post("/me/avatar", api.UploadAvatarHandler(deps))
			authed.Get("/me/parties", api.MyPartiesHandler(deps))

			authed.Post("/parties", api.CreatePartyHandler(deps))
			authed.Put("/parties/{partyID}", api.UpdatePartyHandler(deps))
			authed.Delete("/parties/{partyID}", api.DeletePartyHandler(deps))
			authed.Put("/parties/{partyID}/tags", api.SetPartyTagsHandler(deps))
			authed.Post("/parties/{partyID}/logo", api.UploadPartyLogoHandler(deps))

			authed.Post("/parties/{partyID}/support", api.ToggleSupportHandler(deps))

			authed.Post("/parties/{partyID}/apply", api.ApplyHandler(deps))
			authed.Delete("/parties/{partyID}/apply", api.CancelApplicationHandler(deps))
			authed.Get("/parties/{partyID}/applicants", api.ListApplicantsHandler(deps))
			authed.Post("/parties/{partyID}/applicants/{userID}/approve", api.ApproveApplicantHandler(deps))
			authed.Post("/parties/{partyID}/applicants/{userID}/reject", api.RejectApplicantHandler(deps))

			authed.Post("/parties/{partyID}/comments", api.CreateCommentHandler(deps))
			authed.Put("/comments/{commentID}", api.UpdateCommentHandler(deps))
			authed.Delete("/comments/{commentID}", api.DeleteCommentHandler(deps))

			authed.Post("/parties/{partyID}/pillars", api.CreatePillarHandler(deps))
			authed.Put("/parties/{partyID}/pillars/{pillarID}", api.UpdatePillarHandler(deps))
			authed.Delete("/parties/{partyID}/pillars/{pillarID}", api.DeletePillarHandler(deps))
		})
	})
}
