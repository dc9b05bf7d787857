package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lepakko/Six-Kings/internal/domain/leaguestanding"
	"github.com/lepakko/Six-Kings/internal/domain/matchday"
	"github.com/lepakko/Six-Kings/internal/domain/playerstats"
	"github.com/lepakko/Six-Kings/internal/domain/sheet"
	"github.com/lepakko/Six-Kings/internal/platform/logging"
	"github.com/lepakko/Six-Kings/internal/usecase"
)

// LeagueService is the read and refresh surface the handlers need.
type LeagueService interface {
	Refresh(ctx context.Context) (usecase.Snapshot, error)
	Standings(ctx context.Context) ([]leaguestanding.Standing, error)
	PlayerStats(ctx context.Context) ([]playerstats.Record, error)
	Matchdays(ctx context.Context) ([]matchday.Matchday, error)
	Matchday(ctx context.Context, id int) (matchday.Matchday, error)
	MatchdayBlocks(ctx context.Context, id int) ([]matchday.Block, error)
	TeamSheet(ctx context.Context) (sheet.Table, error)
}

type Handler struct {
	leagueService LeagueService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(leagueService LeagueService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService: leagueService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type matchdayPath struct {
	MatchdayID string `validate:"required,numeric"`
}

func (h *Handler) matchdayID(ctx context.Context, r *http.Request) (int, error) {
	path := matchdayPath{MatchdayID: strings.TrimSpace(r.PathValue("matchdayID"))}
	if err := h.validateRequest(ctx, path); err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(path.MatchdayID)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid matchday id %q", usecase.ErrInvalidInput, path.MatchdayID)
	}
	return id, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
