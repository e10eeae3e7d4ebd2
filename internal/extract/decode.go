package extract

import (
	"encoding/json"
	"fmt"
)

// contextLimit bounds how much of the candidate is carried in a ParseError.
// Truncated JSON most often breaks at the tail, so head and tail are kept
// separately instead of one prefix.
const contextLimit = 800

// ParseError reports a candidate that is not syntactically valid JSON.
// It carries enough context to reproduce the failure offline without
// dumping arbitrarily large payloads into logs.
type ParseError struct {
	Reason   string // underlying decoder message
	Head     string // first ~800 chars of the candidate
	Tail     string // last ~800 chars of the candidate, empty if Head covers it
	Original string // the unmodified raw completion, for offline debugging
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse JSON: %s", e.Reason)
}

// Context returns a human-readable head/tail excerpt of the failing candidate.
func (e *ParseError) Context() string {
	if e.Tail == "" {
		return e.Head
	}
	return e.Head + "\n... [truncated] ...\n" + e.Tail
}

// Decode parses a candidate string into a raw object graph. The original
// text is threaded through only for diagnostics; it is never re-parsed.
func Decode(candidate, original string) (map[string]any, error) {
	var v any
	if err := json.Unmarshal([]byte(candidate), &v); err != nil {
		return nil, newParseError(err.Error(), candidate, original)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, newParseError("top-level value is not an object", candidate, original)
	}
	return obj, nil
}

func newParseError(reason, candidate, original string) *ParseError {
	e := &ParseError{Reason: reason, Original: original}
	if len(candidate) <= 2*contextLimit {
		e.Head = candidate
		return e
	}
	e.Head = candidate[:contextLimit]
	e.Tail = candidate[len(candidate)-contextLimit:]
	return e
}
