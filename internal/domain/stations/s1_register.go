package stations

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type S1Register struct {
	members ports.MembersAPI
	log     *logger.ZapLogger
}

func NewS1Register(members ports.MembersAPI, log *logger.ZapLogger) *S1Register {
	return &S1Register{members: members, log: log}
}

func (s *S1Register) Run(ctx context.Context, name, email string) error {
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S1][START] register member",
		Fields:  map[string]any{"email": email},
	})

	if err := s.members.RegisterMember(ctx, models.RegisterRequest{Name: name, Email: email}); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "[S1][ERR] register member",
			Fields:  map[string]any{"email": email},
			Error:   err,
		})
		return err
	}

	s.log.Log(logger.LogEntry{Level: "info", Message: "[S1][OK] member registered"})
	return nil
}
