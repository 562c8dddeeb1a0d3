// Package runner provides the core asset-processing orchestration
package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webasset-toolkit/asset-runner/pkg/cache"
	"github.com/webasset-toolkit/asset-runner/pkg/config"
	"github.com/webasset-toolkit/asset-runner/pkg/errors"
	"github.com/webasset-toolkit/asset-runner/pkg/lint"
	"github.com/webasset-toolkit/asset-runner/pkg/observability"
	"github.com/webasset-toolkit/asset-runner/pkg/perf"
	"github.com/webasset-toolkit/asset-runner/pkg/processor"
	"github.com/webasset-toolkit/asset-runner/pkg/report"
)

// DefaultRunner implements the Runner interface
type DefaultRunner struct {
	cfg      *config.Config
	registry *processor.Registry
	store    cache.Cache
	keys     *cache.KeyGenerator
	log      observability.Logger
}

// NewRunner creates a new runner instance
func NewRunner(cfg *config.Config, log observability.Logger) (*DefaultRunner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid configuration", err)
	}
	if log == nil {
		log = observability.NewNopLogger()
	}

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Path != "" {
			store = cache.NewDiskCache(cfg.Cache.Path)
		} else {
			store = cache.NewMemoryCache()
		}
	}

	return &DefaultRunner{
		cfg:      cfg,
		registry: processor.NewRegistry(),
		store:    store,
		keys:     cache.NewKeyGenerator(),
		log:      log,
	}, nil
}

// Registry exposes the stage registry so callers can add custom stages
// before processing starts.
func (r *DefaultRunner) Registry() *processor.Registry {
	return r.registry
}

// Process implements Runner. Each resource runs its own sequential
// pipeline; resources run concurrently on the worker pool. A failing
// resource is recorded in its slot, it does not abort the batch.
func (r *DefaultRunner) Process(ctx context.Context, opts ProcessOptions) (*ProcessResult, error) {
	if len(opts.Paths) == 0 {
		return nil, errors.ValidationError("no resources to process", ErrNoResources)
	}

	started := time.Now()
	result := &ProcessResult{
		RunID:     uuid.NewString(),
		Resources: make([]ResourceResult, len(opts.Paths)),
	}
	r.log.Info("processing resources",
		observability.String("run_id", result.RunID),
		observability.Int("count", len(opts.Paths)))

	pool, err := perf.NewWorkerPool(r.cfg.Global.Concurrency)
	if err != nil {
		return nil, errors.ConfigError("failed to create worker pool", err)
	}
	pool.Start()
	for i, path := range opts.Paths {
		i, path := i, path
		submitErr := pool.Submit(func() {
			result.Resources[i] = r.processOne(ctx, path, opts.Force)
		})
		if submitErr != nil {
			result.Resources[i] = ResourceResult{Path: path, Err: submitErr}
		}
	}
	pool.Stop()

	for i := range result.Resources {
		if result.Resources[i].Err != nil {
			result.Failed++
		}
	}
	result.Duration = time.Since(started)
	r.log.Info("processing finished",
		observability.String("run_id", result.RunID),
		observability.Int("failed", result.Failed))
	return result, nil
}

// processOne runs the configured chain over a single resource.
func (r *DefaultRunner) processOne(ctx context.Context, path string, force bool) ResourceResult {
	res := processor.NewResource(path)
	stageNames := r.cfg.Pipelines.ForType(string(res.Type))

	data, err := os.ReadFile(path)
	if err != nil {
		return ResourceResult{Path: path, Err: errors.ValidationError(fmt.Sprintf("failed to read resource: %s", path), err)}
	}
	input := string(data)

	key := r.keys.GenerateForResource(path, input, stageNames)
	if r.store != nil && !force {
		if cached, err := r.store.Get(ctx, key); err == nil {
			r.log.Debug("cache hit", observability.String("path", path))
			return ResourceResult{Path: path, Output: string(cached), Cached: true}
		}
	}

	chain, err := r.registry.CreateChain(stageNames, r.cfg.Pipelines.StageOptions)
	if err != nil {
		return ResourceResult{Path: path, Err: err}
	}

	output, err := chain.Process(ctx, res, input)
	if err != nil {
		r.log.Warn("pipeline failed",
			observability.String("path", path),
			observability.Err(err))
		return ResourceResult{Path: path, Err: err}
	}

	if r.store != nil {
		if err := r.store.Set(ctx, key, []byte(output), r.cfg.Cache.TTL.Std()); err != nil {
			// A failed cache write never fails the resource.
			r.log.Warn("cache write failed",
				observability.String("path", path),
				observability.Err(err))
		}
	}
	return ResourceResult{Path: path, Output: output}
}

// LintReport implements Runner. The whole conversion is fail-fast: the
// first raw record that cannot be adapted aborts the run with no report.
func (r *DefaultRunner) LintReport(ctx context.Context, opts ReportOptions) (*ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.TimeoutError("report generation canceled", err)
	}
	if len(opts.RawData) == 0 {
		return nil, errors.ValidationError("raw lint data is required", nil)
	}

	dialect, err := report.ParseDialect(opts.Dialect)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	var rep *lint.Report
	switch strings.ToLower(opts.Tool) {
	case "linter":
		groups, err := lint.ParseLinterOutput(opts.RawData, opts.Paths)
		if err != nil {
			return nil, err
		}
		rep, err = lint.BuildReport(groups, lint.AdaptLinterError)
		if err != nil {
			return nil, err
		}
	case "csslint":
		groups, err := lint.ParseCSSLintOutput(opts.RawData, opts.Paths)
		if err != nil {
			return nil, err
		}
		rep, err = lint.BuildReport(groups, lint.AdaptCSSLintError)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.ConfigError(fmt.Sprintf("unknown lint tool: %q", opts.Tool), ErrUnknownTool)
	}

	doc, err := report.Format(rep, dialect)
	if err != nil {
		return nil, err
	}

	result := &ReportResult{
		RunID:     uuid.NewString(),
		Document:  doc,
		Resources: rep.Len(),
		Findings:  rep.TotalItems(),
		Duration:  time.Since(started),
	}
	r.log.Info("lint report formatted",
		observability.String("run_id", result.RunID),
		observability.String("dialect", dialect.String()),
		observability.Int("resources", result.Resources),
		observability.Int("findings", result.Findings))
	return result, nil
}
