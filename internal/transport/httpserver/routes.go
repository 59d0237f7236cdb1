package httpserver

import (
	"net/http"
	"time"

	"wedgram-api/internal/config"
	accountdomain "wedgram-api/internal/domain/account"
	"wedgram-api/internal/transport/httpserver/handler"
	authmw "wedgram-api/internal/transport/httpserver/middleware"
	"wedgram-api/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, accounts authmw.AccountChecker, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSOrigins))

	auth := authmw.NewJWTAuth(cfg.JWT, accounts, log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.RateLimit.AuthPerMinute, time.Minute))

			r.Post("/auth/register", handlers.Register)
			r.Post("/auth/login", handlers.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.RateLimit.RSVPPerMinute, time.Minute))

			r.Post("/rsvp/{token}", handlers.SubmitRSVP)
			r.Get("/rsvp/{token}", handlers.RSVPStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.Me)
			r.Patch("/auth/me", handlers.UpdateMe)
			r.Delete("/auth/me", handlers.DeactivateMe)

			r.Post("/weddings", handlers.CreateWedding)
			r.Get("/weddings/me", handlers.GetWedding)
			r.Patch("/weddings/me", handlers.UpdateWedding)
			r.Get("/weddings/check", handlers.CheckWedding)
			r.Put("/weddings/me/gallery", handlers.ReplaceGallery)
			r.Post("/weddings/me/gallery/images", handlers.AddGalleryImage)
			r.Delete("/weddings/me/gallery/images/{image_id}", handlers.DeleteGalleryImage)
			r.Put("/weddings/me/schedule", handlers.ReplaceSchedule)
			r.Post("/weddings/me/schedule/events", handlers.AddScheduleEvent)
			r.Put("/weddings/me/schedule/events/{event_id}", handlers.UpdateScheduleEvent)
			r.Delete("/weddings/me/schedule/events/{event_id}", handlers.DeleteScheduleEvent)

			r.Post("/invites", handlers.CreateGuests)
			r.Get("/invites", handlers.ListGuests)
			r.Post("/invites/send", handlers.SendInvitations)

			r.Get("/gifts", handlers.ListGifts)
			r.Post("/gifts", handlers.CreateGift)
			r.Get("/gifts/stats", handlers.GiftStats)
			r.Get("/gifts/{id}", handlers.GetGift)
			r.Put("/gifts/{id}", handlers.UpdateGift)
			r.Delete("/gifts/{id}", handlers.DeleteGift)

			r.Get("/notifications", handlers.ListNotifications)
			r.Get("/notifications/unread-count", handlers.UnreadNotificationCount)
			r.Post("/notifications/{id}/read", handlers.MarkNotificationRead)
			r.Post("/notifications/read-all", handlers.MarkAllNotificationsRead)
			r.Delete("/notifications/{id}", handlers.DeleteNotification)

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRole(accountdomain.RoleAdmin))

				r.Get("/admin/stats", handlers.AdminStats)
				r.Get("/admin/users", handlers.AdminListUsers)
				r.Get("/admin/guests", handlers.AdminListGuests)
				r.Post("/admin/users", handlers.AdminCreateUser)
			})
		})
	})

	return r
}
