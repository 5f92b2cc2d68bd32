package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/jwillison/gbupool/config"
	"github.com/jwillison/gbupool/db"
	"github.com/jwillison/gbupool/engine"
	"github.com/jwillison/gbupool/handlers"
	applog "github.com/jwillison/gbupool/logger"
	"github.com/jwillison/gbupool/provider/espn"
	"github.com/jwillison/gbupool/scheduler"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	bdb := db.Setup(cfg)
	defer bdb.Close()

	ctx := context.Background()
	if err := db.CreateTables(ctx, bdb); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}
	if err := db.SeedTeams(ctx, bdb); err != nil {
		logger.Fatal("seed teams failed", zap.Error(err))
	}

	store := db.NewStore(bdb)
	provider := espn.NewClient(espn.Config{
		BaseURL: cfg.ProviderBaseURL,
		Timeout: cfg.ProviderTimeout,
	})
	updater := engine.New(store, provider, logger)
	h := handlers.New(store, updater)

	go scheduler.New(updater, logger, cfg.UpdateInterval).Run(ctx)

	e := echo.New()
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	api.GET("/teams/:tier", h.Teams)
	api.GET("/season/current", h.CurrentSeason)
	api.POST("/users", h.CreateParticipant)
	api.GET("/users/:name", h.GetParticipant)
	api.POST("/picks", h.SavePicks)
	api.GET("/picks/:participantID", h.GetPicks)
	api.GET("/picks-status", h.PicksStatus)
	api.GET("/leaderboard", h.Leaderboard)
	api.GET("/standings", h.Standings)
	api.GET("/games", h.Games)
	api.GET("/rules", h.Rules)
	api.POST("/admin/update-games", h.UpdateGames)
	api.POST("/admin/fix-scores", h.FixScores)
	api.POST("/admin/lock-picks", h.LockPicks)
	api.POST("/admin/reveal-picks", h.RevealPicks)
	api.POST("/admin/hide-picks", h.HidePicks)
	api.POST("/admin/advance-week", h.AdvanceWeek)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	if cfg.Debug {
		logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
		if err := e.Start(cfg.Port); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	if err := s.ListenAndServeTLS("", ""); err != http.ErrServerClosed {
		logger.Error("tls server exited", zap.Error(err))
		os.Exit(1)
	}
}
