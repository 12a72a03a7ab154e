package catalogue

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// DefaultBanner frames each demo title.
const DefaultBanner = "====="

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the Runner logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("catalogue: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.lggr = l
	}
}

// WithBanner sets the string framing each demo title. Panics on empty.
func WithBanner(banner string) RunnerOption {
	if banner == "" {
		panic("catalogue: WithBanner(\"\")")
	}
	return func(r *Runner) {
		r.banner = banner
	}
}

// Runner executes demos in order against one writer.
type Runner struct {
	w      io.Writer
	lggr   *zap.Logger
	banner string
}

// NewRunner returns a Runner writing to w.
func NewRunner(w io.Writer, opts ...RunnerOption) *Runner {
	r := &Runner{
		w:      w,
		lggr:   zap.NewNop(),
		banner: DefaultBanner,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes demos sequentially and returns the first failure. A demo
// without a Run func fails before its banner is written.
func (r *Runner) Run(demos []Demo) error {
	for i, d := range demos {
		if d.Run == nil {
			return fmt.Errorf("%s: %w", d.Slug, ErrNilRun)
		}
		if _, err := fmt.Fprintf(r.w, "%s %s %s\n", r.banner, d.Name, r.banner); err != nil {
			return fmt.Errorf("%s: banner: %w", d.Slug, err)
		}

		r.lggr.Debug("running demo", zap.Int("index", i), zap.String("demo", d.Slug))
		if err := d.Run(r.w, r.lggr); err != nil {
			r.lggr.Error("demo failed", zap.String("demo", d.Slug), zap.Error(err))
			return fmt.Errorf("%s: %w", d.Slug, err)
		}
	}
	r.lggr.Info("demos finished", zap.Int("count", len(demos)))

	return nil
}
