package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type VideoLibrary struct {
	api  ports.VideoAPI
	log  *logger.ZapLogger
	list Collection[models.Video]
}

func NewVideoLibrary(api ports.VideoAPI, log *logger.ZapLogger) *VideoLibrary {
	return &VideoLibrary{api: api, log: log}
}

func (l *VideoLibrary) Load(ctx context.Context) error {
	err := l.list.Refresh(ctx, l.api.ListVideos)
	if err != nil {
		logSwallowed(l.log, "videos load failed", err, nil)
	}
	return err
}

func (l *VideoLibrary) Videos() []models.Video { return l.list.Items() }

func (l *VideoLibrary) Reset() { l.list.Reset() }
