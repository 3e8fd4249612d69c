package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{eventID}/schedule", handler.GetSchedule)
	mux.HandleFunc("DELETE /v1/events/{eventID}/schedule", handler.ClearSchedule)
	mux.HandleFunc("GET /v1/schedule-history", handler.ListScheduleHistory)
	mux.HandleFunc("GET /v1/schedule-history/{eventID}", handler.GetScheduleFromHistory)
	mux.HandleFunc("DELETE /v1/schedule-history/{eventID}", handler.RemoveScheduleFromHistory)
	mux.HandleFunc("GET /v1/matches/{matchNumber}/slots/{slot}", handler.GetRosterSlot)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams/{teamNumber}", handler.GetTeam)
	mux.HandleFunc("POST /v1/teams/prefetch", handler.PrefetchTeams)
}

func registerCredentialRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("PUT /v1/credential", handler.SaveCredential)
	mux.HandleFunc("DELETE /v1/credential", handler.ClearCredential)
}
