package lexer

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

// charsetReader decodes logs whose prolog declares a non UTF-8 encoding,
// e.g. <?xml version="1.0" encoding="ISO-8859-1"?>.
// Offsets of such files count decoded bytes, not bytes on disk.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
