package delivery

import (
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
)

// POST /admin/check
func (h *PageHandler) AdminCheck(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		_ = sess.Page.Admin.Check(r.Context(), r.PostForm.Get("email"))
	})
}

// POST /admin/members
func (h *PageHandler) AdminMembers(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		h.adminResult(sess, "members refresh", sess.Page.Admin.LoadMembers(r.Context()))
	})
}

// POST /admin/videos
func (h *PageHandler) AdminAddVideo(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		err := sess.Page.Admin.AddVideo(r.Context(), domain.VideoForm{
			Title:       r.PostForm.Get("title"),
			VimeoID:     r.PostForm.Get("vimeo_id"),
			Description: r.PostForm.Get("description"),
		})
		h.adminResult(sess, "video add", err)
	})
}

// POST /admin/resources
func (h *PageHandler) AdminAddResource(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		err := sess.Page.Admin.AddResource(r.Context(), domain.ResourceForm{
			Title:       r.PostForm.Get("title"),
			Type:        models.ParseResourceType(r.PostForm.Get("type")),
			URL:         r.PostForm.Get("url"),
			Description: r.PostForm.Get("description"),
			Tags:        r.PostForm.Get("tags"),
		})
		h.adminResult(sess, "resource add", err)
	})
}

// adminResult only logs locked-gate attempts; backend failures are already
// logged by the panel.
func (h *PageHandler) adminResult(sess *domain.Session, action string, err error) {
	if !errors.Is(err, domain.ErrNotAdmin) {
		return
	}
	h.log.Log(logger.LogEntry{
		Level:   "warn",
		Message: action + " rejected",
		Fields:  map[string]any{"session": sess.ID},
		Error:   err,
	})
}
