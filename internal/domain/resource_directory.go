package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type ResourceDirectory struct {
	api  ports.ResourceAPI
	log  *logger.ZapLogger
	list Collection[models.Resource]
}

func NewResourceDirectory(api ports.ResourceAPI, log *logger.ZapLogger) *ResourceDirectory {
	return &ResourceDirectory{api: api, log: log}
}

func (d *ResourceDirectory) Load(ctx context.Context) error {
	err := d.list.Refresh(ctx, d.api.ListResources)
	if err != nil {
		logSwallowed(d.log, "resources load failed", err, nil)
	}
	return err
}

func (d *ResourceDirectory) Resources() []models.Resource { return d.list.Items() }

func (d *ResourceDirectory) Reset() { d.list.Reset() }
