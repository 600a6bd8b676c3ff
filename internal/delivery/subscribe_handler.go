package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
)

// POST /subscribe
func (h *PageHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		provider := models.ParseProvider(r.PostForm.Get("provider"))
		err := sess.Page.Subscribe.Start(r.Context(),
			r.PostForm.Get("name"),
			r.PostForm.Get("email"),
			provider,
		)

		entry := logger.LogEntry{
			Level:   "info",
			Message: "subscribe flow finished",
			Fields: map[string]any{
				"session":  sess.ID,
				"provider": provider,
				"state":    sess.Page.Subscribe.State(),
			},
		}
		if err != nil {
			entry.Level = "warn"
			entry.Error = err
		}
		h.log.Log(entry)
	})
}
