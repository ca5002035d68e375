package plan

import (
	"bytes"
	"encoding/json"
	"errors"
)

type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentText
	ContentStructured
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentStructured:
		return "structured"
	default:
		return "empty"
	}
}

// Content is one plan section: either text or an arbitrary JSON value
// returned by the model. It marshals back to exactly what was parsed.
type Content struct {
	kind ContentKind
	text string
	raw  json.RawMessage
}

// TextContent wraps plain text, such as the baseline plan or raw model output.
func TextContent(s string) Content {
	return Content{kind: ContentText, text: s}
}

// StructuredContent wraps a JSON value that is not a string.
func StructuredContent(raw json.RawMessage) Content {
	return Content{kind: ContentStructured, raw: append(json.RawMessage(nil), raw...)}
}

func (c Content) Kind() ContentKind { return c.kind }

func (c Content) IsZero() bool { return c.kind == ContentEmpty }

// Raw returns the JSON bytes of a structured section, nil otherwise.
func (c Content) Raw() json.RawMessage { return c.raw }

// String renders the section for humans: text verbatim, JSON indented.
func (c Content) String() string {
	switch c.kind {
	case ContentText:
		return c.text
	case ContentStructured:
		var buf bytes.Buffer
		if err := json.Indent(&buf, c.raw, "", "  "); err != nil {
			return string(c.raw)
		}
		return buf.String()
	default:
		return ""
	}
}

func (c Content) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ContentText:
		return json.Marshal(c.text)
	case ContentStructured:
		return c.raw, nil
	default:
		return []byte("null"), nil
	}
}

func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return errors.New("plan: empty JSON value")
	case bytes.Equal(trimmed, []byte("null")):
		*c = Content{}
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = TextContent(s)
		return nil
	}
	if !json.Valid(trimmed) {
		return errors.New("plan: invalid JSON value")
	}
	*c = StructuredContent(trimmed)
	return nil
}
