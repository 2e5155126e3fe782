package infer

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvbayes/bayes"
	"github.com/katalvlaran/lvbayes/elimination"
)

var (
	// ErrQueryIsEvidence indicates a query variable that is also observed.
	ErrQueryIsEvidence = errors.New("infer: query variable is also evidence")

	// ErrEmptyQuery indicates a Posterior or Joint call without query variables.
	ErrEmptyQuery = errors.New("infer: empty query")

	// ErrDuplicateQuery indicates a query variable listed more than once.
	ErrDuplicateQuery = errors.New("infer: duplicate query variable")

	// ErrMissingFactor indicates a Traceback order naming a variable with no
	// stored factor.
	ErrMissingFactor = errors.New("infer: no stored factor for variable")
)

// Option configures an inference call.
type Option func(*Options)

// Options holds inference settings.
type Options struct {
	// Ctx is checked between elimination steps and parents the spans.
	Ctx context.Context

	// Logger receives debug records; defaults to a discard logger.
	Logger *slog.Logger

	// Heuristic plans the elimination order; default MinFill.
	Heuristic elimination.Heuristic
}

// DefaultOptions returns Background context, a discarding logger and MinFill.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Heuristic: elimination.MinFill,
	}
}

// WithContext sets the context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeuristic selects the elimination heuristic.
func WithHeuristic(h elimination.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// MAPResult is the outcome of a MAP query.
type MAPResult struct {
	// Probability is max_x P(x, e).
	Probability float64

	// Assignment maps every variable, evidence included, to its outcome.
	Assignment bayes.Assignment

	// Order is the elimination order that was used.
	Order []string
}
