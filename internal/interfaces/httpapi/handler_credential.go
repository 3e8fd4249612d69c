package httpapi

import "net/http"

// SaveCredential stores the API key and drops memoized team identities, which
// may have been defaults resolved without a key.
func (h *Handler) SaveCredential(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveCredential")
	defer span.End()

	var req saveCredentialRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.credentialService.Save(ctx, req.APIKey); err != nil {
		h.logger.ErrorContext(ctx, "save api key failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	h.identityService.ForgetAll(ctx)

	writeNoContent(w)
}

func (h *Handler) ClearCredential(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCredential")
	defer span.End()

	if err := h.credentialService.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "clear api key failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	h.identityService.ForgetAll(ctx)

	writeNoContent(w)
}
