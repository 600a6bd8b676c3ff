package domain

import (
	"context"
	"errors"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

// ErrNotAdmin is returned for privileged actions while the view gate is
// closed. No request is made in that case.
var ErrNotAdmin = errors.New("admin view is locked")

type VideoForm struct {
	Title       string
	VimeoID     string
	Description string
}

type ResourceForm struct {
	Title       string
	Type        models.ResourceType
	URL         string
	Description string
	Tags        string
}

func NewResourceForm() ResourceForm {
	return ResourceForm{Type: models.ResourcePrompt}
}

// AdminPanel gates the admin view on an unauthenticated is_admin lookup.
// The gate only decides what is rendered: the backend checks the
// x-admin-email header on every privileged call.
type AdminPanel struct {
	api ports.Backend
	log *logger.ZapLogger

	email        string
	isAdmin      bool
	members      Collection[models.Member]
	videoForm    VideoForm
	resourceForm ResourceForm
}

func NewAdminPanel(api ports.Backend, log *logger.ZapLogger) *AdminPanel {
	p := &AdminPanel{api: api, log: log}
	p.Reset()
	return p
}

func (p *AdminPanel) Reset() {
	p.email = ""
	p.isAdmin = false
	p.members.Reset()
	p.videoForm = VideoForm{}
	p.resourceForm = NewResourceForm()
}

func (p *AdminPanel) Email() string              { return p.email }
func (p *AdminPanel) IsAdmin() bool              { return p.isAdmin }
func (p *AdminPanel) Members() []models.Member   { return p.members.Items() }
func (p *AdminPanel) VideoForm() VideoForm       { return p.videoForm }
func (p *AdminPanel) ResourceForm() ResourceForm { return p.resourceForm }

// Check looks the email up. The gate follows the answer; a failed lookup
// leaves it as it was.
func (p *AdminPanel) Check(ctx context.Context, email string) error {
	p.email = email

	ok, err := p.api.IsAdmin(ctx, email)
	if err != nil {
		logSwallowed(p.log, "admin check failed", err, nil)
		return err
	}

	p.isAdmin = ok
	p.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "admin check",
		Fields:  map[string]any{"is_admin": ok},
	})
	return nil
}

// LoadMembers replaces the member list, only on an ok response.
func (p *AdminPanel) LoadMembers(ctx context.Context) error {
	if !p.isAdmin {
		return ErrNotAdmin
	}

	email := p.email
	err := p.members.Refresh(ctx, func(ctx context.Context) ([]models.Member, error) {
		return p.api.ListMembers(ctx, email)
	})
	if err != nil {
		logSwallowed(p.log, "members load failed", err, nil)
	}
	return err
}

// AddVideo submits the form and resets it whatever the outcome.
func (p *AdminPanel) AddVideo(ctx context.Context, form VideoForm) error {
	if !p.isAdmin {
		return ErrNotAdmin
	}
	p.videoForm = form

	err := p.api.CreateVideo(ctx, p.email, models.VideoInput{
		Title:       form.Title,
		VimeoID:     form.VimeoID,
		Description: form.Description,
	})
	if err != nil {
		logSwallowed(p.log, "video create failed", err, nil)
	}

	p.videoForm = VideoForm{}
	return err
}

// AddResource submits the form with parsed tags and resets it whatever the
// outcome.
func (p *AdminPanel) AddResource(ctx context.Context, form ResourceForm) error {
	if !p.isAdmin {
		return ErrNotAdmin
	}
	p.resourceForm = form

	err := p.api.CreateResource(ctx, p.email, models.ResourceInput{
		Title:       form.Title,
		Type:        form.Type,
		URL:         form.URL,
		Description: form.Description,
		Tags:        ParseTags(form.Tags),
	})
	if err != nil {
		logSwallowed(p.log, "resource create failed", err, nil)
	}

	p.resourceForm = NewResourceForm()
	return err
}
