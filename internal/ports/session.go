package ports

import "time"

type SessionTokens interface {
	Sign(sessionID string, expires time.Time) (string, error)
	Verify(token string) (sessionID string, err error)
}
