package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/domain/credential"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

type CredentialService struct {
	repo   credential.Repository
	logger *logging.Logger
}

func NewCredentialService(repo credential.Repository, logger *logging.Logger) *CredentialService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CredentialService{repo: repo, logger: logger}
}

// Get returns the stored API key. Read failures degrade to "no key".
func (s *CredentialService) Get(ctx context.Context) (string, bool) {
	if s == nil || s.repo == nil {
		return "", false
	}

	key, ok, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "read api key failed, treating as unset", "error", err)
		return "", false
	}
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Require returns the key or a MissingCredentialError tagged with op.
func (s *CredentialService) Require(ctx context.Context, op string) (string, error) {
	key, ok := s.Get(ctx)
	if !ok {
		return "", &MissingCredentialError{Op: op}
	}
	return key, nil
}

func (s *CredentialService) Save(ctx context.Context, apiKey string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CredentialService.Save")
	defer span.End()

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidInput)
	}
	if err := s.repo.Save(ctx, apiKey); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

func (s *CredentialService) Clear(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CredentialService.Clear")
	defer span.End()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear api key: %w", err)
	}
	return nil
}
