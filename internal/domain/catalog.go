package domain

func float(v float64) *float64 { return &v }
func year(v int) *int          { return &v }

// SeedBooks returns the demo catalog inserted on first startup.
// IDs are left empty; the store assigns them when seeding.
func SeedBooks() []Book {
	return []Book{
		{
			Title:           "Crime and Punishment",
			Author:          "Fyodor Dostoevsky",
			Description:     "A psychological novel following the impoverished student Rodion Raskolnikov through a murder and the moral collapse that follows it. Guilt, punishment, faith, and redemption are examined in depth.",
			CoverImage:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?q=80&w=1000&auto=format&fit=crop",
			Genres:          []string{"Classic", "Psychological", "Novel"},
			PublicationYear: year(1866),
			Rating:          float(4.8),
		},
		{
			Title:           "Les Misérables",
			Author:          "Victor Hugo",
			Description:     "The story of the convict Jean Valjean and the lives entangled with his, set against post-revolutionary France. Justice, law, faith, and love drive one of the great classics of world literature.",
			CoverImage:      "https://images.unsplash.com/photo-1541963463532-d68292c34b19?q=80&w=1000&auto=format&fit=crop",
			Genres:          []string{"Classic", "Historical", "Novel"},
			PublicationYear: year(1862),
			Rating:          float(4.7),
		},
		{
			Title:           "War and Peace",
			Author:          "Leo Tolstoy",
			Description:     "Russian society during Napoleon's invasion, told through five aristocratic families. Widely held to be one of the most important works ever written.",
			CoverImage:      "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?q=80&w=1000&auto=format&fit=crop",
			Genres:          []string{"Classic", "Historical", "War"},
			PublicationYear: year(1869),
			Rating:          float(4.9),
		},
		{
			Title:           "To Kill a Mockingbird",
			Author:          "Harper Lee",
			Description:     "Set in 1930s Alabama, a Pulitzer Prize winning novel about racism, justice, and growing up.",
			CoverImage:      "https://images.unsplash.com/photo-1476275466078-4007374efbbe?q=80&w=1000&auto=format&fit=crop",
			Genres:          []string{"Classic", "Novel", "Law"},
			PublicationYear: year(1960),
			Rating:          float(4.6),
		},
		{
			Title:           "The Lord of the Rings",
			Author:          "J.R.R. Tolkien",
			Description:     "An epic fantasy set in Middle-earth, following the struggle to destroy the One Ring.",
			CoverImage:      "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?q=80&w=1000&auto=format&fit=crop",
			Genres:          []string{"Fantasy", "Adventure", "Epic"},
			PublicationYear: year(1954),
			Rating:          float(4.9),
		},
	}
}
