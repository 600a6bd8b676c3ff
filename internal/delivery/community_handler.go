package delivery

import (
	"net/http"

	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/models"
)

// POST /community/channel
// The channel picker submits the post form, so typed email and draft come
// along and are kept.
func (h *PageHandler) SelectChannel(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		board := sess.Page.Community
		board.SetEmail(r.PostForm.Get("email"))
		board.SetDraft(r.PostForm.Get("content"))
		_ = board.SelectChannel(r.Context(), models.ParseChannel(r.PostForm.Get("channel")))
	})
}

// POST /community/messages
func (h *PageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	h.event(w, r, true, func(sess *domain.Session) {
		sess.Page.Community.Post(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("content"))
	})
}
