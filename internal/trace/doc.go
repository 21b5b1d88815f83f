// Package trace records what poincarelog does while it reads, prunes and
// renders reduction logs.
//
// Enable tracing via command-line flags:
//
//	poincarelog --trace=- --trace-level=detail poincare-log.xml
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a run fails
//   - MultiTracer: stream and ring together
//
// # Levels and scopes
//
// LevelPhase emits ScopeDriver and ScopeFile spans, LevelDetail adds the
// per-trace ScopePass spans (parse, prune, render) and LevelDebug adds
// ScopeNode points for every removed step.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
//	defer span.End("")
//
// Spans started from the returned ctx nest under the file span.
package trace
