package delivery

import (
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *PageHandler, sessions *domain.SessionService, log *logger.ZapLogger) {
	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(sessions, log))

		// page
		r.Get("/", h.Mount)

		// subscribe
		r.Post("/subscribe", h.Subscribe)

		// community
		r.Post("/community/channel", h.SelectChannel)
		r.Post("/community/messages", h.PostMessage)

		// admin
		r.Post("/admin/check", h.AdminCheck)
		r.Post("/admin/members", h.AdminMembers)
		r.Post("/admin/videos", h.AdminAddVideo)
		r.Post("/admin/resources", h.AdminAddResource)
	})
}
