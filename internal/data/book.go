// Package data provides the record types, seed dataset, and in-memory
// store operations for the bookshelf API.
package data

// Book represents a single book record held in the in-memory store.
// Optional attributes are pointers so an absent value stays distinguishable
// from a zero one.
type Book struct {
	ID            int64   // Unique identifier assigned by the store
	Title         string  // Title of the book, unique case-insensitively
	AuthorID      int64   // Identifier of the author who wrote the book
	Genre         *string // Optional genre, one of the Genres() values
	PublishedYear *int    // Optional year of first publication
	Pages         *int    // Optional page count
	ISBN          *string // Optional ISBN, 10 or 13 characters once cleaned
	IsAvailable   bool    // Whether the book can currently be borrowed
	Summary       *string // Optional short plot summary
}

// AddBookInput holds the fields a client must supply when adding a book.
// Title and AuthorID are required; everything else may be omitted.
// AuthorID arrives as a string because it crosses the API as a GraphQL ID.
type AddBookInput struct {
	Title         string
	AuthorID      string
	Genre         *string
	PublishedYear *int
	Pages         *int
	ISBN          *string
	Summary       *string
}

// UpdateBookInput holds the fields a client may supply when partially
// updating a book. Every field is a pointer so we can distinguish between
// "not provided" (nil) and "intentionally set". Only non-nil fields are
// applied; the rest of the record is left untouched.
type UpdateBookInput struct {
	Title         *string
	AuthorID      *string
	Genre         *string
	PublishedYear *int
	Pages         *int
	ISBN          *string
	Summary       *string
	IsAvailable   *bool
}

// Genres returns the accepted genre values in the order the schema
// declares them. A fresh slice is returned on every call so callers
// cannot mutate the canonical list.
func Genres() []string {
	return []string{
		"FICTION",
		"NON_FICTION",
		"MYSTERY",
		"FANTASY",
		"SCIENCE_FICTION",
		"BIOGRAPHY",
		"HISTORY",
		"ROMANCE",
	}
}
