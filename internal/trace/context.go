package trace

import "context"

// SpanContext names the span that new events nest under: the run, one log
// file or one pass over a trace.
type SpanContext struct {
	SpanID uint64
	Scope  Scope
	Name   string // "run", "file:<path>", "prune" ...
}

// Root reports whether no span is open yet.
func (sc SpanContext) Root() bool { return sc.SpanID == 0 }

// tracer и текущий span едут в одном значении контекста
type carried struct {
	tracer Tracer
	span   SpanContext
}

type carriedKey struct{}

func carriedFrom(ctx context.Context) carried {
	if ctx != nil {
		if c, ok := ctx.Value(carriedKey{}).(carried); ok {
			return c
		}
	}
	return carried{tracer: Nop}
}

// FromContext returns the tracer attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return carriedFrom(ctx).tracer
}

// WithTracer attaches t to ctx. The current span is kept.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	c := carriedFrom(ctx)
	c.tracer = t
	return context.WithValue(ctx, carriedKey{}, c)
}

// CurrentSpan returns the innermost span opened with StartSpan, or the zero
// SpanContext at the top of a run.
func CurrentSpan(ctx context.Context) SpanContext {
	return carriedFrom(ctx).span
}

// StartSpan opens a span under the current one and returns a context in
// which it is current. The caller ends the span.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	c := carriedFrom(ctx)
	span := Begin(c.tracer, scope, name, c.span.SpanID)
	c.span = SpanContext{SpanID: span.ID(), Scope: scope, Name: name}
	return context.WithValue(ctx, carriedKey{}, c), span
}
