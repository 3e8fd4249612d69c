package kvstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
)

// CredentialRepository stores the API key as raw text, not JSON.
type CredentialRepository struct {
	store kv.Store
}

func NewCredentialRepository(store kv.Store) *CredentialRepository {
	return &CredentialRepository{store: store}
}

func (r *CredentialRepository) Get(ctx context.Context) (string, bool, error) {
	raw, found, err := r.store.Get(ctx, credentialKey)
	if err != nil {
		return "", false, fmt.Errorf("read api key: %w", err)
	}
	key := strings.TrimSpace(string(raw))
	if !found || key == "" {
		return "", false, nil
	}
	return key, true, nil
}

func (r *CredentialRepository) Save(ctx context.Context, apiKey string) error {
	if err := r.store.Put(ctx, credentialKey, []byte(strings.TrimSpace(apiKey))); err != nil {
		return fmt.Errorf("write api key: %w", err)
	}
	return nil
}

func (r *CredentialRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, credentialKey); err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	return nil
}
