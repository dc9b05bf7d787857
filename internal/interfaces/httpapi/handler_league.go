package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.leagueService.Standings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.leagueService.PlayerStats(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdays")
	defer span.End()

	items, err := h.leagueService.Matchdays(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchdays failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchdayDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchdayToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchday")
	defer span.End()

	id, err := h.matchdayID(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.Matchday(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchday failed", "matchday_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchdayToDTO(item))
}

func (h *Handler) ListMatchdayBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchdayBlocks")
	defer span.End()

	id, err := h.matchdayID(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	blocks, err := h.leagueService.MatchdayBlocks(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchday blocks failed", "matchday_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]blockDTO, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, blockToDTO(block))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeamSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSheet")
	defer span.End()

	table, err := h.leagueService.TeamSheet(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get team sheet failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableToDTO(table))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Refresh")
	defer span.End()

	snapshot, err := h.leagueService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh league snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshDTO{
		LoadedAt:  snapshot.LoadedAt,
		Teams:     len(snapshot.Standings),
		Players:   len(snapshot.Players),
		Matchdays: len(snapshot.Matchdays),
	})
}
