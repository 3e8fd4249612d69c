package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-schedule/external/tba"
	"github.com/riskibarqy/scout-schedule/internal/config"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/kvstore"
	"github.com/riskibarqy/scout-schedule/internal/interfaces/httpapi"
	"github.com/riskibarqy/scout-schedule/internal/platform/cache"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/riskibarqy/scout-schedule/internal/platform/resilience"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

// Runtime owns every long-lived dependency: the persistent store, the TBA
// client, the identity memo and the services built on top of them.
type Runtime struct {
	Config      config.Config
	Logger      *logging.Logger
	Schedules   *usecase.ScheduleService
	Rosters     *usecase.RosterService
	Identities  *usecase.TeamIdentityService
	Credentials *usecase.CredentialService

	closeStore func() error
}

func NewRuntime(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	client := tba.NewClient(tba.ClientConfig{
		BaseURL:   cfg.TBABaseURL,
		Timeout:   cfg.TBATimeout,
		UserAgent: cfg.TBAUserAgent,
		Logger:    logger.Named("tba"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TBACircuitEnabled,
			FailureThreshold: cfg.TBACircuitFailureCount,
			OpenTimeout:      cfg.TBACircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TBACircuitHalfOpenMaxReq,
		},
	})

	historyRepo := kvstore.NewScheduleHistoryRepository(store, cfg.HistoryCapacity, logger)
	cacheRepo := kvstore.NewScheduleCacheRepository(store, historyRepo, logger)
	credentialRepo := kvstore.NewCredentialRepository(store)

	credentials := usecase.NewCredentialService(credentialRepo, logger)
	identities := usecase.NewTeamIdentityService(client, credentials, cache.NewStore[string](0), usecase.TeamIdentityConfig{
		PlaceholderLogo:   cfg.TeamLogoPlaceholder,
		DirectURLFallback: cfg.TBALogoDirectURLFallback,
		PrefetchWorkers:   cfg.PrefetchWorkers,
	}, logger)

	return &Runtime{
		Config:      cfg,
		Logger:      logger,
		Schedules:   usecase.NewScheduleService(client, cacheRepo, historyRepo, credentials, logger),
		Rosters:     usecase.NewRosterService(historyRepo, logger),
		Identities:  identities,
		Credentials: credentials,
		closeStore:  closeStore,
	}, nil
}

func (r *Runtime) Close() error {
	if r == nil || r.closeStore == nil {
		return nil
	}
	return r.closeStore()
}

func NewHTTPServer(rt *Runtime) (*http.Server, error) {
	if rt == nil {
		return nil, fmt.Errorf("runtime is required")
	}

	handler := httpapi.NewHandler(rt.Schedules, rt.Rosters, rt.Identities, rt.Credentials, rt.Logger)
	router := httpapi.NewRouter(handler, rt.Logger, rt.Config.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         rt.Config.HTTPAddr,
		Handler:      router,
		ReadTimeout:  rt.Config.ReadTimeout,
		WriteTimeout: rt.Config.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
