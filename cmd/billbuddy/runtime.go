package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/billbuddy/internal/assistant"
	"github.com/jonathan/billbuddy/internal/cache"
	"github.com/jonathan/billbuddy/internal/config"
	"github.com/jonathan/billbuddy/internal/llm"
	"github.com/jonathan/billbuddy/internal/observability"
)

// loadConfig layers the config file under the environment and the environment under flags.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg := config.FromEnv()

	if opts.configPath != "" {
		fileCfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg.Offline = cfg.Offline || opts.offline
	cfg.Verbose = cfg.Verbose || opts.verbose

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// runtime bundles what a command needs to reach the assistant.
type runtime struct {
	cfg       *config.Config
	logger    *zap.Logger
	client    llm.Client
	cache     cache.Cache
	assistant *assistant.Assistant
}

// newRuntime builds the logger, model client and cache for a command.
// A missing or disabled provider leaves the assistant offline.
func newRuntime(ctx context.Context, opts *rootOptions) (*runtime, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logger}

	var timeout time.Duration
	if llmCfg := cfg.LLMConfig(); llmCfg != nil {
		timeout = llmCfg.GetTimeout()
		client, err := llm.NewClient(ctx, llmCfg)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("failed to create %s client: %w", llmCfg.Provider, err)
		}
		rt.client = client
		logger.Debug("language model enabled", zap.String("provider", string(llmCfg.Provider)), zap.String("model", llmCfg.GetModel()))
	} else {
		logger.Debug("running offline")
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.cache = rc
	} else {
		rt.cache = cache.NewMemoryCache()
	}

	rt.assistant = assistant.New(rt.client, rt.cache, logger, assistant.Options{
		Timeout:  timeout,
		CacheTTL: cfg.CacheDuration(),
	})
	return rt, nil
}

// Close releases the model client and cache, then flushes the logger.
func (rt *runtime) Close() {
	if rt.client != nil {
		if err := rt.client.Close(); err != nil {
			rt.logger.Warn("failed to close model client", zap.Error(err))
		}
	}
	if rt.cache != nil {
		if err := rt.cache.Close(); err != nil {
			rt.logger.Warn("failed to close cache", zap.Error(err))
		}
	}
	_ = rt.logger.Sync()
}
