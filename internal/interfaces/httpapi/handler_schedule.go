package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

// GetSchedule serves the cached schedule, or fetches it. ?refresh=true skips the cache.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	eventID := r.PathValue("eventID")
	refresh, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("refresh")))

	if refresh {
		record, err := h.scheduleService.Refresh(ctx, eventID)
		if err != nil {
			h.logger.WarnContext(ctx, "refresh schedule failed", "event_id", eventID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, toScheduleDTO(record, false))
		return
	}

	result, err := h.scheduleService.Load(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "load schedule failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toScheduleDTO(result.Record, result.FromCache))
}

func (h *Handler) ClearSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearSchedule")
	defer span.End()

	if err := h.scheduleService.ClearCache(ctx, r.PathValue("eventID")); err != nil {
		h.logger.ErrorContext(ctx, "clear schedule cache failed", "event_id", r.PathValue("eventID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ListScheduleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScheduleHistory")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, toScheduleHistoryDTOs(h.scheduleService.History(ctx)))
}

func (h *Handler) GetScheduleFromHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScheduleFromHistory")
	defer span.End()

	record, err := h.scheduleService.LoadFromHistory(ctx, r.PathValue("eventID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toScheduleDTO(record, true))
}

func (h *Handler) RemoveScheduleFromHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveScheduleFromHistory")
	defer span.End()

	if err := h.scheduleService.RemoveFromHistory(ctx, r.PathValue("eventID")); err != nil {
		h.logger.ErrorContext(ctx, "remove schedule history failed", "event_id", r.PathValue("eventID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}

func (h *Handler) GetRosterSlot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterSlot")
	defer span.End()

	matchNumber, err := strconv.Atoi(strings.TrimSpace(r.PathValue("matchNumber")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: match number must be an integer", usecase.ErrInvalidInput))
		return
	}

	item, ok, err := h.rosterService.Lookup(ctx, matchNumber, r.PathValue("slot"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no stored schedule has a team in slot %s of match %d",
			usecase.ErrNotFound, strings.ToUpper(r.PathValue("slot")), matchNumber))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRosterSlotDTO(item))
}
