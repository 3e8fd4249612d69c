package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

type Handler struct {
	scheduleService   *usecase.ScheduleService
	rosterService     *usecase.RosterService
	identityService   *usecase.TeamIdentityService
	credentialService *usecase.CredentialService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	rosterService *usecase.RosterService,
	identityService *usecase.TeamIdentityService,
	credentialService *usecase.CredentialService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scheduleService:   scheduleService,
		rosterService:     rosterService,
		identityService:   identityService,
		credentialService: credentialService,
		logger:            logger,
		validator:         validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
