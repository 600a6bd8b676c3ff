package main

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/config"
	"github.com/Vovarama1992/salesacademy/internal/delivery"
	"github.com/Vovarama1992/salesacademy/internal/domain"
	"github.com/Vovarama1992/salesacademy/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {

	// ENV
	cfg, err := config.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	// LOGGER
	var zcore *zap.Logger
	if cfg.Production() {
		zcore, err = zap.NewProduction()
	} else {
		zcore, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("logger: " + err.Error())
	}
	defer zcore.Sync()
	zl := logger.NewZapLogger(zcore.Sugar())

	// BACKEND CLIENT
	metrics := infra.NewMetrics()
	backend := infra.NewBackendClient(cfg.BackendURL, cfg.BackendTimeout, metrics)

	// PAGE SESSIONS
	sessions := domain.NewSessionService(
		domain.NewJWTTokens(cfg.SessionSecret),
		func() *domain.Page { return domain.NewPage(backend, zl) },
		cfg.SessionIdleTTL,
		cfg.SessionMax,
		metrics,
	)

	// SWEEP (чистим простаивающие сессии)
	c := cron.New()
	_, err = c.AddFunc(cfg.SessionSweepSchedule, func() {
		dropped := sessions.Sweep(time.Now())
		if dropped > 0 {
			zl.Log(logger.LogEntry{
				Level:   "info",
				Message: "idle sessions swept",
				Fields:  map[string]any{"dropped": dropped, "live": sessions.Len()},
			})
		}
	})
	if err != nil {
		panic("invalid SESSION_SWEEP_SCHEDULE: " + err.Error())
	}
	c.Start()
	defer c.Stop()

	// ROUTER
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, delivery.NewPageHandler(zl), sessions, zl)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields: map[string]any{
			"port":    cfg.Port,
			"backend": cfg.BackendURL,
			"env":     cfg.Env,
		},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
