package gemini

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
)

// Payload is the parsed provider response. Each entry is kept raw so that
// one malformed book cannot fail the whole batch.
type Payload struct {
	Books []jsontext.Value
}

// rawBook is the tolerant intermediate shape for one model-sourced book.
// All "trust but verify" coercion lives here: scalar-or-list genres, the
// publicationYear/year alias, and numbers-only ratings.
type rawBook struct {
	Title           string       `json:"title"`
	Author          string       `json:"author"`
	Description     string       `json:"description"`
	Genre           genreList    `json:"genre"`
	PublicationYear optionalInt  `json:"publicationYear"`
	Year            optionalInt  `json:"year"`
	Rating          optionalReal `json:"rating"`
}

// publicationYear returns the year alias with publicationYear preferred.
func (b *rawBook) publicationYear() *int {
	if b.PublicationYear.value != nil {
		return b.PublicationYear.value
	}
	return b.Year.value
}

// genreList accepts either a JSON array of strings or a single scalar
// string, normalizing both to a slice. Unusable shapes decode as absent.
type genreList []string

func (g *genreList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*g = genreList{single}
		return nil
	}

	*g = nil
	return nil
}

// optionalInt decodes a JSON integer; any other shape is treated as absent.
type optionalInt struct {
	value *int
}

func (n *optionalInt) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.value = &v
	return nil
}

// optionalReal decodes a JSON number; any other shape is treated as absent.
// Absence is never coerced to zero, which would read as a valid low rating.
type optionalReal struct {
	value *float64
}

func (n *optionalReal) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.value = &v
	return nil
}
