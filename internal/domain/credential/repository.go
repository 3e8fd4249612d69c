package credential

import "context"

// Repository stores the single alliance-data API key. An absent key is a
// valid state, reported as ("", false, nil).
type Repository interface {
	Get(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, apiKey string) error
	Clear(ctx context.Context) error
}
