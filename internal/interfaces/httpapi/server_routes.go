package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("POST /api/players", handler.CreatePlayer)
	mux.HandleFunc("GET /api/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PATCH /api/players/{playerID}", handler.PatchPlayer)
	mux.HandleFunc("DELETE /api/players/{playerID}", handler.DeletePlayer)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/arsenal/recent-results", handler.GetRecentResults)
	mux.HandleFunc("GET /api/arsenal/upcoming-fixtures", handler.GetUpcomingFixtures)
	mux.HandleFunc("GET /api/arsenal/overview", handler.GetMatchOverview)
}
