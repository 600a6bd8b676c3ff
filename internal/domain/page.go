package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/ports"
	"golang.org/x/sync/errgroup"
)

// Page is one visitor's composed page. Each section owns its state.
type Page struct {
	Subscribe *SubscribeFlow
	Videos    *VideoLibrary
	Community *CommunityBoard
	Resources *ResourceDirectory
	Admin     *AdminPanel
	Popups    *PopupQueue
}

func NewPage(api ports.Backend, log *logger.ZapLogger) *Page {
	popups := &PopupQueue{}
	return &Page{
		Subscribe: NewSubscribeFlow(api, api, popups, log),
		Videos:    NewVideoLibrary(api, log),
		Community: NewCommunityBoard(api, log),
		Resources: NewResourceDirectory(api, log),
		Admin:     NewAdminPanel(api, log),
		Popups:    popups,
	}
}

// Mount resets every section to its initial state and loads the
// collections fetched on mount. Load failures keep the section empty; the
// first one is returned for logging.
func (p *Page) Mount(ctx context.Context) error {
	p.Subscribe.Reset()
	p.Videos.Reset()
	p.Community.Reset()
	p.Resources.Reset()
	p.Admin.Reset()
	p.Popups.Drain()

	var g errgroup.Group
	g.Go(func() error { return p.Videos.Load(ctx) })
	g.Go(func() error { return p.Community.Load(ctx) })
	g.Go(func() error { return p.Resources.Load(ctx) })
	return g.Wait()
}
