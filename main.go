package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/config"
	"github.com/investplus/admin-engine/pkg/handlers"
	"github.com/investplus/admin-engine/pkg/llm"
	"github.com/investplus/admin-engine/pkg/middleware"
	"github.com/investplus/admin-engine/pkg/repositories"
	"github.com/investplus/admin-engine/pkg/services"
	"github.com/investplus/admin-engine/pkg/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	seeds, err := repositories.LoadSeeds(cfg.Store.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load seed data", zap.Error(err))
	}

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer func() { _ = st.Close() }()

	gateway, err := repositories.NewGateway(st, seeds, logger)
	if err != nil {
		logger.Fatal("Failed to build gateway", zap.Error(err))
	}

	workflow := services.NewRegistrationWorkflowService(&services.RegistrationWorkflowDeps{
		Registrations: gateway.Registrations,
		Members:       gateway.Members,
		Logger:        logger,
	})
	dashboard := services.NewDashboardService(gateway.Members, gateway.Registrations, gateway.Projects)
	notifications := services.NewNotificationService(gateway.Notifications, logger)
	settings := services.NewSettingsService(gateway.Profile, logger)

	var completion llm.CompletionClient
	if cfg.AI.IsConfigured() {
		completion, err = llm.NewClient(cfg.AI.Provider, &llm.Config{
			Endpoint:    cfg.AI.Endpoint,
			Model:       cfg.AI.Model,
			APIKey:      cfg.AI.APIKey,
			Temperature: cfg.AI.Temperature,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to build completion client", zap.Error(err))
		}
	} else {
		logger.Warn("No completion model configured, announcement drafting disabled")
	}
	drafts := services.NewAnnouncementDraftService(completion, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyMembers,
		services.NewMemberDirectory(gateway.Members, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyProjects,
		services.NewProjectDirectory(gateway.Projects, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyExperts,
		services.NewExpertDirectory(gateway.Experts, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyInvestors,
		services.NewInvestorDirectory(gateway.Investors, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyPartners,
		services.NewPartnerDirectory(gateway.Partners, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeySteps,
		services.NewMethodologyDirectory(gateway.Steps, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyAchievements,
		services.NewAchievementDirectory(gateway.Achievements, logger), logger).RegisterRoutes(mux)
	handlers.NewDirectoryHandler(repositories.KeyAnnouncements,
		services.NewAnnouncementDirectory(gateway.Announcements, logger), logger).RegisterRoutes(mux)
	handlers.NewRegistrationsHandler(workflow, logger).RegisterRoutes(mux)
	handlers.NewDashboardHandler(dashboard, logger).RegisterRoutes(mux)
	handlers.NewNotificationsHandler(notifications, logger).RegisterRoutes(mux)
	handlers.NewDraftHandler(drafts, logger).RegisterRoutes(mux)
	handlers.NewSettingsHandler(settings, logger).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.BindAddr, cfg.Port),
		Handler: middleware.RequestLogger(logger)(mux),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting admin-engine",
			zap.String("addr", srv.Addr),
			zap.String("version", cfg.Version),
			zap.String("store", cfg.Store.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
