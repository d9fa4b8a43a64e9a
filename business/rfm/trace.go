package rfm

import "context"

type ctxKey string

const RunIDKey ctxKey = "run_id"

func RunIDFromContext(ctx context.Context) string {
	if v := ctx.Value(RunIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
