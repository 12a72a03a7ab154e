package catalogue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/adapter"
	"github.com/katalvlaran/patterns/bridge"
	"github.com/katalvlaran/patterns/builder"
	"github.com/katalvlaran/patterns/composite"
	"github.com/katalvlaran/patterns/criteria"
	"github.com/katalvlaran/patterns/decorator"
	"github.com/katalvlaran/patterns/facade"
	"github.com/katalvlaran/patterns/factory"
)

var (
	// ErrUnknownDemo indicates a slug that names no demo.
	ErrUnknownDemo = errors.New("catalogue: unknown demo")

	// ErrNilRun is returned by Runner.Run for a Demo without a Run func.
	ErrNilRun = errors.New("catalogue: demo has no Run func")
)

// Demo describes one runnable pattern demo.
type Demo struct {
	// Slug is the stable, lower-case identifier used on the command line.
	Slug string `yaml:"slug"`
	// Name is the display title used in banners.
	Name string `yaml:"name"`
	// Run writes the demo output to w. Demos that report diagnostics log
	// them to lggr.
	Run func(w io.Writer, lggr *zap.Logger) error `yaml:"-"`
}

// plain adapts a demo that takes no logger.
func plain(fn func(io.Writer) error) func(io.Writer, *zap.Logger) error {
	return func(w io.Writer, _ *zap.Logger) error { return fn(w) }
}

func adapterDemo(w io.Writer, lggr *zap.Logger) error {
	return adapter.Demo(w, adapter.WithLogger(lggr.Named("adapter")))
}

// All returns every demo in canonical order.
func All() []Demo {
	return []Demo{
		{Slug: "factory", Name: "Factory Pattern", Run: plain(factory.FactoryDemo)},
		{Slug: "abstract-factory", Name: "Abstract Factory Pattern", Run: plain(factory.AbstractDemo)},
		{Slug: "builder", Name: "Builder Pattern", Run: plain(builder.Demo)},
		{Slug: "adapter", Name: "Adapter Pattern", Run: adapterDemo},
		{Slug: "bridge", Name: "Bridge Pattern", Run: plain(bridge.Demo)},
		{Slug: "decorator", Name: "Decorator Pattern", Run: plain(decorator.Demo)},
		{Slug: "facade", Name: "Facade Pattern", Run: plain(facade.Demo)},
		{Slug: "composite", Name: "Composite Pattern", Run: plain(composite.Demo)},
		{Slug: "criteria", Name: "Filter Pattern", Run: plain(criteria.Demo)},
	}
}

// Slugs returns the slugs of All in order.
func Slugs() []string {
	all := All()
	out := make([]string, len(all))
	for i, d := range all {
		out[i] = d.Slug
	}

	return out
}

// Select returns the demos named by slugs, in the order given. Slugs are
// matched case-insensitively. No slugs selects every demo.
func Select(slugs ...string) ([]Demo, error) {
	all := All()
	if len(slugs) == 0 {
		return all, nil
	}

	bySlug := make(map[string]Demo, len(all))
	for _, d := range all {
		bySlug[d.Slug] = d
	}

	out := make([]Demo, 0, len(slugs))
	for _, s := range slugs {
		d, ok := bySlug[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			return nil, fmt.Errorf("Select(%q): %w", s, ErrUnknownDemo)
		}
		out = append(out, d)
	}

	return out, nil
}
