package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the API middleware.
const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an operation when the returned func runs.
// Pass a pointer to the surrounding function's named error so failures are
// logged with the elapsed time:
//
//	defer obs.Time(ctx, log, "plan.trip")(&err)
func Time(ctx context.Context, log zerolog.Logger, op string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error().Err(*errp).Str("req_id", reqID).Str("op", op).Dur("dur", dur).Msg("operation failed")
			return
		}
		log.Debug().Str("req_id", reqID).Str("op", op).Dur("dur", dur).Msg("operation complete")
	}
}
