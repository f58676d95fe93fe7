package completion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/techstack/pkg/categorize"
)

// Stage reports how a response was decoded.
type Stage int

const (
	StageFailed    Stage = iota // Neither the text nor an embedded value decoded
	StageDirect                 // The whole text decoded
	StageExtracted              // A bracketed substring decoded
)

func (s Stage) String() string {
	switch s {
	case StageDirect:
		return "direct"
	case StageExtracted:
		return "extracted"
	default:
		return "failed"
	}
}

// ArrayResult is the outcome of [DecodeArray].
type ArrayResult struct {
	Items []string
	Stage Stage
}

// OK reports whether decoding succeeded.
func (r ArrayResult) OK() bool { return r.Stage != StageFailed }

// DecodeArray decodes a JSON string array from a completion response. The
// whole text is tried first, then the first value starting at a '[' that
// decodes as a string array (models often wrap the array in prose or code
// fences).
func DecodeArray(text string) ArrayResult {
	var items []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &items); err == nil && items != nil {
		return ArrayResult{Items: items, Stage: StageDirect}
	}
	ok := scanValues(text, '[', func(dec *json.Decoder) bool {
		items = nil
		return dec.Decode(&items) == nil && items != nil
	})
	if ok {
		return ArrayResult{Items: items, Stage: StageExtracted}
	}
	return ArrayResult{Stage: StageFailed}
}

// DecodeCategories decodes a category object from a completion response
// using the same two stages as DecodeArray.
func DecodeCategories(text string) (categorize.Map, Stage, error) {
	var m categorize.Map
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
			return m, StageDirect, nil
		}
	}
	ok := scanValues(text, '{', func(dec *json.Decoder) bool {
		m = nil
		return dec.Decode(&m) == nil
	})
	if ok {
		return m, StageExtracted, nil
	}
	return nil, StageFailed, fmt.Errorf("%w: %s", ErrUnparseable, snippet(text))
}

// scanValues calls decode with a decoder positioned at each occurrence of
// open in text, in order, until decode reports success. Text after the
// decoded value is ignored.
func scanValues(text string, open byte, decode func(*json.Decoder) bool) bool {
	for i := 0; i < len(text); i++ {
		j := strings.IndexByte(text[i:], open)
		if j < 0 {
			return false
		}
		i += j
		if decode(json.NewDecoder(strings.NewReader(text[i:]))) {
			return true
		}
	}
	return false
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	const limit = 80
	if r := []rune(s); len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
