package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
)

// PredictionCache stores raw replies keyed by prompt digest. A lookup miss
// is not an error; a store failure is logged and swallowed so caching can
// never fail a batch.
type PredictionCache interface {
	LookupPrediction(ctx context.Context, digest string) (string, bool)
	StorePrediction(ctx context.Context, digest string, raw string) error
}

// CachedGenerator wraps a Generator with a PredictionCache. The cache key
// covers the full prompt plus the generation parameters, so a changed
// instruction or budget never serves a stale reply.
type CachedGenerator struct {
	Inner Generator
	Cache PredictionCache
}

func (c *CachedGenerator) Invoke(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	digest := promptDigest(prompt, maxTokens, temperature)

	if raw, ok := c.Cache.LookupPrediction(ctx, digest); ok {
		slog.Debug("[CachedGenerator] cache hit", slog.String("digest", digest))
		return raw, nil
	}

	raw, err := c.Inner.Invoke(ctx, prompt, maxTokens, temperature)
	if err != nil {
		return "", err
	}

	if err := c.Cache.StorePrediction(ctx, digest, raw); err != nil {
		slog.Warn("[CachedGenerator] failed to cache prediction",
			slog.String("digest", digest),
			slog.String("error", err.Error()))
	}

	return raw, nil
}

func promptDigest(prompt string, maxTokens int, temperature float64) string {
	raw := prompt + "|" + strconv.Itoa(maxTokens) + "|" +
		strconv.FormatFloat(temperature, 'f', -1, 64)
	hash := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(hash[:])
}
