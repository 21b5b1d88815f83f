package driver

import (
	"io"

	"poincarelog/internal/ast"
	"poincarelog/internal/export"
	"poincarelog/internal/format"
	"poincarelog/internal/source"
)

// Sink receives every pruned trace of a run in order.
type Sink interface {
	Trace(file *source.File, index int, proc *ast.ReduceProcess) error
	// Close is called once after the last trace of a successful run.
	Close() error
}

// TextSink writes the human-readable report.
type TextSink struct {
	w        io.Writer
	renderer *format.Renderer
}

func NewTextSink(w io.Writer, opts format.Options) *TextSink {
	return &TextSink{w: w, renderer: format.NewRenderer(opts)}
}

func (s *TextSink) Trace(_ *source.File, _ int, proc *ast.ReduceProcess) error {
	return s.renderer.Write(s.w, proc)
}

func (s *TextSink) Close() error { return nil }

// ExportSink serializes traces with an export encoder.
type ExportSink struct {
	enc export.Encoder
}

func NewExportSink(kind export.Kind, w io.Writer) (*ExportSink, error) {
	enc, err := export.NewEncoder(kind, w)
	if err != nil {
		return nil, err
	}
	return &ExportSink{enc: enc}, nil
}

func (s *ExportSink) Trace(file *source.File, index int, proc *ast.ReduceProcess) error {
	t := export.FromProcess(file.Path, index, proc)
	return s.enc.Encode(&t)
}

func (s *ExportSink) Close() error { return nil }

// DiscardSink drops every trace. The stats command uses it.
type DiscardSink struct{}

func (DiscardSink) Trace(*source.File, int, *ast.ReduceProcess) error { return nil }
func (DiscardSink) Close() error                                      { return nil }
