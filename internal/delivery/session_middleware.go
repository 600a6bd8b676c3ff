package delivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain"
)

const SessionCookie = "sid"

type ctxKey int

const sessionKey ctxKey = iota

type pageSession struct {
	sess  *domain.Session
	fresh bool
}

// SessionMiddleware resolves the visitor's page session from the cookie or
// opens a new one.
func SessionMiddleware(sessions *domain.SessionService, log *logger.ZapLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if c, err := r.Cookie(SessionCookie); err == nil {
				if sess, ok := sessions.Resolve(c.Value); ok {
					next.ServeHTTP(w, r.WithContext(withSession(ctx, sess, false)))
					return
				}
			}

			sess, token, err := sessions.Create()
			if errors.Is(err, domain.ErrSessionLimit) {
				log.Log(logger.LogEntry{
					Level:   "warn",
					Message: "session limit reached",
					Fields:  map[string]any{"live": sessions.Len()},
				})
				http.Error(w, "too many visitors, try again later", http.StatusServiceUnavailable)
				return
			}
			if err != nil {
				log.Log(logger.LogEntry{
					Level:   "error",
					Message: "session create failed",
					Error:   err,
				})
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(withSession(ctx, sess, true)))
		})
	}
}

func withSession(ctx context.Context, sess *domain.Session, fresh bool) context.Context {
	return context.WithValue(ctx, sessionKey, pageSession{sess: sess, fresh: fresh})
}

func sessionFrom(ctx context.Context) (pageSession, bool) {
	ps, ok := ctx.Value(sessionKey).(pageSession)
	return ps, ok && ps.sess != nil
}
