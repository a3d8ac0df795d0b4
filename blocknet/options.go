package blocknet

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option configures a Topology via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by
// NewTopology.
type Option func(*topologyOptions)

type topologyOptions struct {
	factory   NetworkFactory
	logger    *zap.Logger
	tracer    trace.Tracer
	listeners []TopologyListener
	err       error
}

func defaultOptions() topologyOptions {
	return topologyOptions{
		factory: NewBasicNetwork,
		logger:  zap.NewNop(),
		tracer:  otel.Tracer("github.com/katalvlaran/blocknet"),
	}
}

// WithNetworkFactory sets the constructor for new network handles.
func WithNetworkFactory(f NetworkFactory) Option {
	return func(o *topologyOptions) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil network factory", ErrOptionViolation)
			return
		}
		o.factory = f
	}
}

// WithLogger routes debug output of mutations to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *topologyOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(o *topologyOptions) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithListeners subscribes ls at construction time, in order.
func WithListeners(ls ...TopologyListener) Option {
	return func(o *topologyOptions) {
		for _, l := range ls {
			if l == nil {
				o.err = fmt.Errorf("%w: nil listener", ErrOptionViolation)
				return
			}
		}
		o.listeners = append(o.listeners, ls...)
	}
}

// PathOption tunes a single route query.
type PathOption func(*pathOptions)

type pathOptions struct {
	ctx     context.Context
	filter  EdgeFilter
	maxHops int
}

// WithContext bounds the walk by ctx and parents its span.
func WithContext(ctx context.Context) PathOption {
	return func(o *pathOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEdgeFilter restricts traversal to edges accepted by f.
func WithEdgeFilter(f EdgeFilter) PathOption {
	return func(o *pathOptions) {
		o.filter = f
	}
}

// WithMaxHops stops exploring past n edges from the source. n <= 0 means
// no limit.
func WithMaxHops(n int) PathOption {
	return func(o *pathOptions) {
		if n > 0 {
			o.maxHops = n
		}
	}
}
