package batch

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
	"github.com/PanchamBro/mediawiki-projects-list/internal/resolver"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of inputs resolved in parallel when no
// option overrides it. Resolution is CPU-bound regex work, so a modest
// limit already saturates typical machines.
const DefaultConcurrency = 10

// Processor resolves batches of inputs through a shared Resolver.
type Processor struct {
	resolver    *resolver.Resolver
	concurrency int
	logger      *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of concurrent resolutions.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for batch progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a Processor over r.
func NewProcessor(r *resolver.Resolver, opts ...Option) *Processor {
	p := &Processor{
		resolver:    r,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Resolve resolves every input and returns one Outcome per input, in
// input order. Each input is tried against the project catalog first and
// the proxy catalog second, and project matches with an id-string codec
// also carry their encoded id.
//
// Per-input failures are recorded in the Outcome rather than aborting the
// batch; the error return only reports context cancellation.
func (p *Processor) Resolve(ctx context.Context, inputs []string) ([]model.Outcome, error) {
	p.logger.Debug("starting batch resolution",
		"total_inputs", len(inputs),
		"concurrency", p.concurrency,
	)

	outcomes := make([]model.Outcome, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			outcomes[i] = p.resolveOne(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	p.logger.Debug("batch resolution complete", "total_inputs", len(inputs))
	return outcomes, nil
}

// resolveOne resolves a single input into an Outcome.
func (p *Processor) resolveOne(input string) model.Outcome {
	out := model.Outcome{Input: input}

	res, err := p.resolver.ResolveWikiProject(input)
	if err != nil {
		p.logger.Warn("project resolution failed", "input", input, "error", err)
		out.Err = err.Error()
		return out
	}
	if res != nil {
		out.Project = res
		if res.WikiProject.IDString != nil {
			if u, err := url.Parse(input); err == nil {
				if id, ok := p.resolver.EncodeIDString(u); ok {
					out.IDString = id
				}
			}
		}
		return out
	}

	proxy, err := p.resolver.ResolveFrontendProxy(input)
	if err != nil {
		p.logger.Warn("proxy resolution failed", "input", input, "error", err)
		out.Err = err.Error()
		return out
	}
	out.Proxy = proxy
	return out
}
