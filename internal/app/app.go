package app

import (
	"fmt"
	"net/http"

	"github.com/lepakko/Six-Kings/external/googlesheets"
	"github.com/lepakko/Six-Kings/internal/config"
	"github.com/lepakko/Six-Kings/internal/interfaces/httpapi"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
	"github.com/lepakko/Six-Kings/internal/platform/resilience"
	"github.com/lepakko/Six-Kings/internal/usecase"
)

// NewSheetClient builds the spreadsheet source from config.
func NewSheetClient(cfg config.Config, logger *logging.Logger) *googlesheets.Client {
	matchdays := make([]googlesheets.MatchdayTab, 0, len(cfg.Sheet.MatchdayGIDs))
	for _, item := range cfg.Sheet.MatchdayGIDs {
		matchdays = append(matchdays, googlesheets.MatchdayTab{Round: item.Round, GID: item.GID})
	}

	return googlesheets.NewClient(googlesheets.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.Sheet.Timeout},
		BaseURL:    cfg.Sheet.BaseURL,
		SheetID:    cfg.Sheet.ID,
		Tabs: googlesheets.Tabs{
			Players:   cfg.Sheet.PlayersGID,
			Liga:      cfg.Sheet.LigaGID,
			Starter:   cfg.Sheet.StarterGID,
			Team:      cfg.Sheet.TeamGID,
			Matchdays: matchdays,
		},
		Timeout:    cfg.Sheet.Timeout,
		MaxRetries: cfg.Sheet.MaxRetries,
		Workers:    cfg.Sheet.FetchWorkers,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.Sheet.CircuitEnabled,
			FailureThreshold: cfg.Sheet.CircuitFailureCount,
			OpenTimeout:      cfg.Sheet.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.Sheet.CircuitHalfOpenMaxReq,
		},
	})
}

func NewLeagueService(cfg config.Config, logger *logging.Logger) *usecase.LeagueService {
	return usecase.NewLeagueService(NewSheetClient(cfg, logger), usecase.LeagueServiceConfig{
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})
}

func NewHTTPServer(cfg config.Config, leagueSvc *usecase.LeagueService, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(leagueSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
