package monitoring

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"commenteval/internal/runner"
)

const preflightTimeout = 30 * time.Second

// ProviderPreflight issues one tiny generation before a batch is committed,
// so an expired key or dead endpoint fails fast instead of burning through
// the batch's failure budget.
func ProviderPreflight(ctx context.Context, gen runner.Generator) bool {
	ctx, cancel := context.WithTimeout(ctx, preflightTimeout)
	defer cancel()

	raw, err := gen.Invoke(ctx, "Reply with exactly: OK", 4, 0)
	if err != nil {
		slog.Warn("[HealthCheck] Provider preflight failed",
			slog.String("error", err.Error()))
		return false
	}

	if strings.TrimSpace(raw) == "" {
		slog.Warn("[HealthCheck] Provider preflight returned empty reply")
		return false
	}

	return true
}
