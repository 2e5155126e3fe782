package sampling

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvbayes/bayes"
)

var (
	// ErrInvalidSampleCount indicates a non-positive sample count or
	// thinning, or a negative burn-in.
	ErrInvalidSampleCount = errors.New("sampling: invalid sample count")

	// ErrNoAcceptedSamples indicates that rejection sampling kept no sample.
	ErrNoAcceptedSamples = errors.New("sampling: no sample consistent with evidence")

	// ErrZeroMass indicates a distribution whose weights sum to zero.
	ErrZeroMass = errors.New("sampling: distribution has zero mass")

	// ErrNegativeWeight indicates a negative or NaN weight.
	ErrNegativeWeight = errors.New("sampling: negative weight")

	// ErrLengthMismatch indicates outcome and weight slices of different length.
	ErrLengthMismatch = errors.New("sampling: outcomes and weights differ in length")
)

// SweepHook observes the Gibbs state after each full sweep. state must not
// be retained; it is reused between calls.
type SweepHook func(sweep int, state bayes.Assignment)

// Option configures a Sampler.
type Option func(*Options)

// Options holds Sampler settings.
type Options struct {
	// Ctx is checked between samples and sweeps and parents the spans.
	Ctx context.Context

	// Logger receives debug records; defaults to a discard logger.
	Logger *slog.Logger

	// Seed seeds the RNG when Rand is nil. 0 selects the fixed default.
	Seed int64

	// Rand, when set, is used as is.
	Rand *rand.Rand

	// OnSweep, when set, is called after every Gibbs sweep.
	OnSweep SweepHook
}

// DefaultOptions returns Background context, a discarding logger and the
// default seed.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
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

// WithSeed seeds a fresh RNG. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand uses r directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampling: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSweepHook installs a Gibbs sweep observer.
func WithSweepHook(h SweepHook) Option {
	return func(o *Options) { o.OnSweep = h }
}

// Sampler draws samples from Bayesian networks. Not goroutine-safe.
type Sampler struct {
	rng     *rand.Rand
	ctx     context.Context
	logger  *slog.Logger
	onSweep SweepHook
}

// New returns a Sampler configured by opts.
func New(opts ...Option) *Sampler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	return &Sampler{rng: r, ctx: o.Ctx, logger: o.Logger, onSweep: o.OnSweep}
}

// Fork returns a Sampler with an independent RNG stream derived from s and
// stream, sharing s's context, logger and hook. Forking advances s's RNG.
func (s *Sampler) Fork(stream uint64) *Sampler {
	return &Sampler{
		rng:     deriveRNG(s.rng, stream),
		ctx:     s.ctx,
		logger:  s.logger,
		onSweep: s.onSweep,
	}
}
