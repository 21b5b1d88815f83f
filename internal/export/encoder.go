package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Kind selects the export encoding.
type Kind uint8

const (
	KindJSON    Kind = iota + 1 // NDJSON, one object per trace
	KindMsgpack                 // stream of msgpack maps
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseKind converts a --format value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "json", "ndjson":
		return KindJSON, nil
	case "msgpack", "mp":
		return KindMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown export format %q (expected: json|msgpack)", s)
	}
}

// Encoder writes traces one after another.
type Encoder interface {
	Encode(t *Trace) error
}

// NewEncoder returns the encoder for kind writing to w.
func NewEncoder(kind Kind, w io.Writer) (Encoder, error) {
	switch kind {
	case KindJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return jsonEncoder{enc: enc}, nil
	case KindMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return msgpackEncoder{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unknown export kind %v", kind)
	}
}

type jsonEncoder struct{ enc *json.Encoder }

func (e jsonEncoder) Encode(t *Trace) error {
	if err := e.enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode trace %d as json: %w", t.Index, err)
	}
	return nil
}

type msgpackEncoder struct{ enc *msgpack.Encoder }

func (e msgpackEncoder) Encode(t *Trace) error {
	if err := e.enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode trace %d as msgpack: %w", t.Index, err)
	}
	return nil
}

// DecodeMsgpack reads every trace from a msgpack stream.
func DecodeMsgpack(r io.Reader) ([]Trace, error) {
	dec := msgpack.NewDecoder(r)
	var out []Trace
	for {
		var t Trace
		err := dec.Decode(&t)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("failed to decode msgpack trace: %w", err)
		}
		out = append(out, t)
	}
}
