package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/delivery/views"
	"github.com/Vovarama1992/salesacademy/internal/domain"
)

type PageHandler struct {
	log *logger.ZapLogger
	now func() time.Time
}

func NewPageHandler(log *logger.ZapLogger) *PageHandler {
	return &PageHandler{
		log: log,
		now: time.Now,
	}
}

// GET /
func (h *PageHandler) Mount(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, false, func(sess *domain.Session) {
		if err := sess.Page.Mount(r.Context()); err != nil {
			h.log.Log(logger.LogEntry{
				Level:   "warn",
				Message: "mount load failed",
				Fields:  map[string]any{"session": sess.ID},
				Error:   err,
			})
		}
	})
}

// event runs one UI event against the locked page session and renders the
// result. A session opened by this very request is mounted first so that
// the event acts on a loaded page.
func (h *PageHandler) event(w http.ResponseWriter, r *http.Request, needsForm bool, apply func(sess *domain.Session)) {
	ps, ok := sessionFrom(r.Context())
	if !ok {
		http.Error(w, "missing session", http.StatusInternalServerError)
		return
	}

	if needsForm {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	sess := ps.sess
	sess.Lock()
	defer sess.Unlock()

	// форма пришла без живой сессии, сначала монтируем страницу
	if ps.fresh && needsForm {
		_ = sess.Page.Mount(r.Context())
	}

	apply(sess)
	h.render(w, sess)
}

func (h *PageHandler) render(w http.ResponseWriter, sess *domain.Session) {
	page := views.Page(views.PageData{
		Page:   sess.Page,
		Popups: sess.Page.Popups.Drain(),
		Now:    h.now(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "render failed",
			Fields:  map[string]any{"session": sess.ID},
			Error:   err,
		})
	}
}
