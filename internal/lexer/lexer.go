package lexer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"

	"poincarelog/internal/diag"
	"poincarelog/internal/source"
	"poincarelog/internal/token"
)

// Lexer turns one log file into a pull stream of tag events.
// It does not check that start and end tags match; that is the builders' job,
// so a mismatch is reported with the builders' vocabulary.
type Lexer struct {
	file *source.File
	dec  *xml.Decoder
	opts Options
	done bool
}

func New(file *source.File, opts Options) *Lexer {
	dec := xml.NewDecoder(bytes.NewReader(file.Content))
	dec.Strict = true
	dec.CharsetReader = charsetReader
	return &Lexer{
		file: file,
		dec:  dec,
		opts: opts,
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next significant event. After EOF it keeps returning EOF.
// A malformed document is reported once and returned as *diag.Error.
func (lx *Lexer) Next() (token.Token, error) {
	return lx.scan()
}

func (lx *Lexer) scan() (token.Token, error) {
	for !lx.done {
		start := lx.offset()
		raw, err := lx.dec.RawToken()
		if errors.Is(err, io.EOF) {
			lx.done = true
			break
		}
		if err != nil {
			return token.Token{}, lx.syntaxError(start, err)
		}
		sp := lx.span(start, lx.offset())

		switch t := raw.(type) {
		case xml.StartElement:
			return token.Token{
				Kind:  token.StartTag,
				Span:  sp,
				Name:  qualifiedName(t.Name),
				Attrs: convertAttrs(t.Attr),
			}, nil
		case xml.EndElement:
			return token.Token{Kind: token.EndTag, Span: sp, Name: qualifiedName(t.Name)}, nil
		case xml.CharData:
			trimmed := bytes.TrimLeft(t, " \t\r\n")
			if len(bytes.TrimSpace(trimmed)) == 0 {
				continue
			}
			sp.Start += uint32(len(t) - len(trimmed)) // #nosec G115 -- len(trimmed) <= len(t)
			return token.Token{Kind: token.Text, Span: sp, Text: string(t)}, nil
		default:
			// Comment, ProcInst, Directive
			continue
		}
	}
	end := lx.contentLen()
	return token.Token{Kind: token.EOF, Span: lx.span(end, end)}, nil
}

func (lx *Lexer) syntaxError(at uint32, err error) error {
	msg := err.Error()
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		msg = se.Msg
	}
	pos := lx.offset()
	if pos < at {
		pos = at
	}
	lx.done = true
	return diag.ReportError(lx.reporter(), diag.XMLSyntax, lx.span(pos, pos),
		fmt.Sprintf("malformed XML at position %d: %s", pos, msg))
}

func (lx *Lexer) offset() uint32 {
	off, err := safecast.Conv[uint32](lx.dec.InputOffset())
	if err != nil {
		return ^uint32(0)
	}
	return off
}

func (lx *Lexer) contentLen() uint32 {
	n, err := safecast.Conv[uint32](len(lx.file.Content))
	if err != nil {
		return ^uint32(0)
	}
	return n
}

func (lx *Lexer) span(start, end uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: end}
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func convertAttrs(in []xml.Attr) []token.Attr {
	if len(in) == 0 {
		return nil
	}
	out := make([]token.Attr, len(in))
	for i, a := range in {
		out[i] = token.Attr{Key: qualifiedName(a.Name), Value: a.Value}
	}
	return out
}
