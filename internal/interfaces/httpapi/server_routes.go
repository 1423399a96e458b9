package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/filter", handler.FilterPlayers)
	mux.HandleFunc("GET /v1/players/top-k", handler.TopKPlayers)
	mux.HandleFunc("GET /v1/players/top", handler.TopPlayersByCriteria)
	mux.HandleFunc("GET /v1/players/best-team", handler.BestTeam)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/image", handler.GetPlayerImage)
}
