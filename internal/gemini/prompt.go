package gemini

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the natural-language prompt for a recommendation
// run. The model is instructed to wrap its answer in a JSON object with a
// "books" array so the response can be extracted mechanically.
func BuildPrompt(genres, seedTitles []string, limit int) string {
	var b strings.Builder

	b.WriteString("I'm looking for book recommendations based on the following preferences:\n")
	if len(genres) > 0 {
		fmt.Fprintf(&b, "Favorite genres: %s\n", strings.Join(genres, ", "))
	}
	if len(seedTitles) > 0 {
		fmt.Fprintf(&b, "Books I've enjoyed: %s\n", strings.Join(seedTitles, ", "))
	}

	fmt.Fprintf(&b, `
Please recommend %d books that match these preferences. For each book, provide:
- Title
- Author
- Brief description (1-2 sentences)
- Genre
- Publication year (if known)

Format the response as a JSON object with the following structure:
{
  "books": [
    {
      "title": "Book Title",
      "author": "Author Name",
      "description": "Brief description",
      "genre": ["Genre1", "Genre2"],
      "publicationYear": 2020
    }
  ]
}
`, limit)

	return b.String()
}
