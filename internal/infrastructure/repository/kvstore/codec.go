package kvstore

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/riskibarqy/scout-schedule/internal/usecase"
)

var modelValidator = validator.New(validator.WithRequiredStructEnabled())

// readJSON loads key and decodes it into T. Missing keys and undecodable or
// invalid documents both come back as found=false; only the latter is logged.
// Store I/O errors are returned.
func readJSON[T any](ctx context.Context, store kv.Store, logger *logging.Logger, key string, check func(T) error) (T, bool, error) {
	var out T

	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return out, false, err
	}

	if err := sonic.Unmarshal(raw, &out); err != nil {
		logCorruption(ctx, logger, key, err)
		var zero T
		return zero, false, nil
	}
	if check != nil {
		if err := check(out); err != nil {
			logCorruption(ctx, logger, key, err)
			var zero T
			return zero, false, nil
		}
	}
	return out, true, nil
}

// writeJSON encodes into a pooled buffer; the history document is rewritten
// whole on every schedule load.
func writeJSON(ctx context.Context, store kv.Store, key string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(value); err != nil {
		return err
	}
	return store.Put(ctx, key, buf.B)
}

func logCorruption(ctx context.Context, logger *logging.Logger, key string, err error) {
	logger.WarnContext(ctx, "discarding corrupt stored value",
		"key", key,
		"error", &usecase.StorageCorruptionError{Key: key, Err: err},
	)
}
