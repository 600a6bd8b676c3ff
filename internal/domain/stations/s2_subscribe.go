package stations

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type S2Subscribe struct {
	subs ports.SubscriptionAPI
	log  *logger.ZapLogger
}

func NewS2Subscribe(subs ports.SubscriptionAPI, log *logger.ZapLogger) *S2Subscribe {
	return &S2Subscribe{subs: subs, log: log}
}

func (s *S2Subscribe) Run(ctx context.Context, email string, provider models.Provider) (*models.SubscribeResult, error) {
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S2][START] start subscription",
		Fields:  map[string]any{"email": email, "provider": provider},
	})

	res, err := s.subs.Subscribe(ctx, models.SubscribeRequest{Email: email, Provider: provider})
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "[S2][ERR] start subscription",
			Fields:  map[string]any{"email": email, "provider": provider},
			Error:   err,
		})
		return nil, err
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S2][OK] subscription started",
		Fields:  map[string]any{"checkout": res.CheckoutURL != ""},
	})
	return res, nil
}
