package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/scout-schedule/internal/domain/team"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

// GetTeam never fails on alliance-data errors; the identity falls back to
// "Team N" with the placeholder logo.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	number, err := team.ParseNumber(r.PathValue("teamNumber"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(h.identityService.Resolve(ctx, number)))
}

func (h *Handler) PrefetchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PrefetchTeams")
	defer span.End()

	var req prefetchTeamsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	resolved, err := h.identityService.Prefetch(ctx, req.TeamNumbers)
	if err != nil {
		h.logger.WarnContext(ctx, "prefetch teams interrupted", "resolved", resolved, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, prefetchResultDTO{
		Requested: len(req.TeamNumbers),
		Resolved:  resolved,
	})
}
