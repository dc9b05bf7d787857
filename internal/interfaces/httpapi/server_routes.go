package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /v1/matchdays/{matchdayID}", handler.GetMatchday)
	mux.HandleFunc("GET /v1/matchdays/{matchdayID}/blocks", handler.ListMatchdayBlocks)
	mux.HandleFunc("GET /v1/team", handler.GetTeamSheet)
	mux.HandleFunc("POST /v1/refresh", handler.Refresh)
}
