// Package assistant answers feedback, coaching and research requests, preferring a
// language model when one is configured and falling back to the rule-based engines
// whenever it is not or its reply is unusable.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/cache"
	"github.com/jonathan/billbuddy/internal/llm"
	"github.com/jonathan/billbuddy/internal/safeguards"
	"github.com/jonathan/billbuddy/internal/schemas"
)

// DefaultReviewConcurrency bounds the coaching calls a review makes at once.
const DefaultReviewConcurrency = 3

// Options tunes an Assistant. Zero values select the defaults.
type Options struct {
	Timeout           time.Duration
	CacheTTL          time.Duration
	ReviewConcurrency int
}

// Assistant orchestrates the rule-based engines and an optional model client.
type Assistant struct {
	client      llm.Client
	cache       cache.Cache
	logger      *zap.Logger
	timeout     time.Duration
	cacheTTL    time.Duration
	concurrency int
}

// New creates an Assistant. A nil client runs fully offline; a nil cache disables memoisation.
func New(client llm.Client, c cache.Cache, logger *zap.Logger, opts Options) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = llm.DefaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = cache.DefaultTTL
	}
	if opts.ReviewConcurrency <= 0 {
		opts.ReviewConcurrency = DefaultReviewConcurrency
	}
	return &Assistant{
		client:      client,
		cache:       c,
		logger:      logger,
		timeout:     opts.Timeout,
		cacheTTL:    opts.CacheTTL,
		concurrency: opts.ReviewConcurrency,
	}
}

// Online reports whether a model client is configured.
func (a *Assistant) Online() bool {
	return a.client != nil
}

// screen logs student text that trips an injection heuristic. It never blocks.
func (a *Assistant) screen(op string, texts ...string) {
	for _, text := range texts {
		if matched := safeguards.Scan(text); len(matched) > 0 {
			a.logger.Warn("suspicious instructions in student text",
				zap.String("op", op),
				zap.Strings("patterns", matched))
			return
		}
	}
}

// complete runs one model call and returns a reply that satisfies the schema for kind.
// normalize, when set, reshapes the cleaned reply before validation.
// Only validated replies are cached.
func (a *Assistant) complete(ctx context.Context, op string, prompt llm.Prompt, kind schemas.Kind, normalize func(string) string) (string, error) {
	key, keyErr := cache.Fingerprint(op, a.client.Provider(), prompt)
	if keyErr != nil {
		a.logger.Debug("cache key unavailable", zap.String("op", op), zap.Error(keyErr))
	}

	if a.cache != nil && keyErr == nil {
		cached, ok, err := a.cache.Get(ctx, key)
		switch {
		case err != nil:
			a.logger.Warn("cache read failed", zap.String("op", op), zap.Error(err))
		case ok:
			a.logger.Debug("cache hit", zap.String("op", op), zap.String("key", key))
			return string(cached), nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	content, err := a.client.GenerateJSON(callCtx, prompt)
	if err != nil {
		return "", err
	}
	a.logger.Debug("model reply received",
		zap.String("op", op),
		zap.String("provider", string(a.client.Provider())),
		zap.Duration("elapsed", time.Since(start)))

	content = strings.TrimSpace(llm.CleanJSONBlock(content))
	if content == "" {
		return "", &ResponseError{Op: op, Message: "empty " + op + " response"}
	}
	if normalize != nil {
		content = normalize(content)
	}

	if err := schemas.Validate(kind, content); err != nil {
		return "", &ResponseError{Op: op, Message: "malformed " + op + " payload", Cause: err}
	}

	if a.cache != nil && keyErr == nil {
		if err := a.cache.Set(ctx, key, []byte(content), a.cacheTTL); err != nil {
			a.logger.Warn("cache write failed", zap.String("op", op), zap.Error(err))
		}
	}
	return content, nil
}

// decode unmarshals a validated reply into v.
func decode(op, content string, v any) error {
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return &ResponseError{Op: op, Message: "malformed " + op + " payload", Cause: err}
	}
	return nil
}

// errorMessage renders err for the error field of a response.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "AI request timed out"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "AI request failed"
}
