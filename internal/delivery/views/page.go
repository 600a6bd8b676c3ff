package views

import (
	"time"

	"github.com/Vovarama1992/salesacademy/internal/domain"
	cmp "maragu.dev/gomponents"
)

type PageData struct {
	Page   *domain.Page
	Popups []string
	Now    time.Time
}

// Page renders every section in order. Popups are opened once, on this
// render only.
func Page(d PageData) cmp.Node {
	return Layout(
		PageConfig{Description: "AI sales training videos, community and resources."},
		Nav(),
		Hero(),
		Subscribe(d.Page.Subscribe),
		Videos(d.Page.Videos.Videos()),
		Community(d.Page.Community, d.Now),
		Resources(d.Page.Resources.Resources()),
		Admin(d.Page.Admin),
		Footer(d.Now.Year()),
		openWindows(d.Popups),
	)
}
