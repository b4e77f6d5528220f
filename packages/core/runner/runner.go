package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/reqfile/packages/core/env"
	"github.com/abdul-hamid-achik/reqfile/packages/core/parser"
	"github.com/abdul-hamid-achik/reqfile/packages/http"
	"github.com/abdul-hamid-achik/reqfile/packages/logging"
	"github.com/abdul-hamid-achik/reqfile/packages/output"
)

type Config struct {
	// EnvFile is the base file; empty means env.DefaultBaseFile.
	EnvFile string
	Timeout time.Duration
	// DryRun stops after the request is built and printed.
	DryRun bool
}

type Runner struct {
	client    *http.Client
	logger    *logging.Logger
	formatter *output.ConsoleFormatter
	config    *Config
}

type RunnerOption func(*Runner)

// WithHTTPClient replaces the client built from Config.Timeout.
func WithHTTPClient(c *http.Client) RunnerOption {
	return func(r *Runner) {
		r.client = c
	}
}

func WithLogger(l *logging.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

func WithFormatter(f *output.ConsoleFormatter) RunnerOption {
	return func(r *Runner) {
		r.formatter = f
	}
}

func NewRunner(cfg *Config, opts ...RunnerOption) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &Runner{config: cfg}
	for _, opt := range opts {
		opt(r)
	}

	if r.client == nil {
		clientOpts := []http.ClientOption{}
		if cfg.Timeout > 0 {
			clientOpts = append(clientOpts, http.WithTimeout(cfg.Timeout))
		}
		r.client = http.NewClient(clientOpts...)
	}
	if r.formatter == nil {
		r.formatter = output.NewConsoleFormatter()
	}

	return r
}

type RunResult struct {
	File       string
	BaseFile   string
	BaseLoaded bool
	Request    *http.Request
	Response   *http.Response
}

// Load merges the base file beneath the request file at path.
func (r *Runner) Load(path string) (parser.Descriptor, *env.Environment, error) {
	environment, err := env.LoadEnvironment(r.config.EnvFile)
	switch {
	case err != nil:
		r.logger.Notice(logging.Normal, "base config not used: %v", err)
	case environment.Descriptor.IsEmpty():
		r.logger.Notice(logging.Detailed, "base config %s sets no fields", environment.Path)
	default:
		r.logger.Notice(logging.Detailed, "using base config %s", environment.Path)
	}

	target, err := parser.ParseFile(path)
	if err != nil {
		return parser.Descriptor{}, environment, err
	}

	return parser.Merge(environment.Descriptor, target), environment, nil
}

// RunFile runs the request file at path. The returned result is partially
// filled when an error occurs after the request was built.
func (r *Runner) RunFile(ctx context.Context, path string) (*RunResult, error) {
	result := &RunResult{File: path}

	merged, environment, err := r.Load(path)
	result.BaseFile = environment.Path
	result.BaseLoaded = environment.Loaded
	if err != nil {
		return result, err
	}

	req, err := http.BuildRequest(merged)
	if err != nil {
		return result, fmt.Errorf("building request from %s: %w", path, err)
	}
	result.Request = req

	if r.config.DryRun {
		r.logger.Print(logging.Minimal, r.formatter.FormatRequest(req))
		return result, nil
	}
	r.logger.Print(logging.Detailed, r.formatter.FormatRequest(req))

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		return result, err
	}
	result.Response = resp

	r.logger.Print(logging.Normal, r.formatter.FormatResponseHead(resp))
	r.logger.Print(logging.Minimal, r.formatter.FormatBody(resp))

	return result, nil
}
