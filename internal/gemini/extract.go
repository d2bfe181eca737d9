package gemini

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"strings"
)

// ExtractPayload locates a JSON object substring in raw model output and
// parses it. Models routinely wrap their JSON in prose or code fences; the
// wrapper is not an error, only truly unparseable output is. The object
// must carry a "books" key, which guards against matching an unrelated
// {...} fragment in surrounding prose.
func ExtractPayload(text string) (*Payload, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSONObject
	}

	raw := []byte(text[start : end+1])

	var probe struct {
		Books jsontext.Value `json:"books"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("gemini: parse model output: %w", err)
	}
	if probe.Books == nil {
		return nil, ErrNoBooksKey
	}

	// An explicit null books value means zero recommendations.
	if string(probe.Books) == "null" {
		return &Payload{Books: []jsontext.Value{}}, nil
	}

	var books []jsontext.Value
	if err := json.Unmarshal(probe.Books, &books); err != nil {
		return nil, fmt.Errorf(`gemini: "books" is not an array: %w`, err)
	}

	return &Payload{Books: books}, nil
}
