package graph

import (
	"fmt"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// BookResolver serves the Book type's fields from one record. The
// derived fields (author, fullData) consult the store at resolve time,
// so an author renamed after the record was fetched shows its new name.
type BookResolver struct {
	store *data.Store
	book  *data.Book
}

func (r *BookResolver) ID() graphql.ID {
	return gid(r.book.ID)
}

func (r *BookResolver) Title() string {
	return r.book.Title
}

func (r *BookResolver) AuthorID() graphql.ID {
	return gid(r.book.AuthorID)
}

// Author resolves the referenced author, or nil when the reference
// dangles.
func (r *BookResolver) Author() *AuthorResolver {
	author, ok := r.store.AuthorOf(r.book)
	if !ok {
		return nil
	}
	return &AuthorResolver{store: r.store, author: author}
}

func (r *BookResolver) Genre() *string {
	return r.book.Genre
}

func (r *BookResolver) PublishedYear() *int32 {
	return int32Field(r.book.PublishedYear)
}

func (r *BookResolver) Pages() *int32 {
	return int32Field(r.book.Pages)
}

func (r *BookResolver) ISBN() *string {
	return r.book.ISBN
}

func (r *BookResolver) IsAvailable() bool {
	return r.book.IsAvailable
}

func (r *BookResolver) Summary() *string {
	return r.book.Summary
}

// FullData assembles the display string, substituting "Unknown Author"
// for a dangling reference and "Unknown Year" for a missing publication
// year.
func (r *BookResolver) FullData() string {
	authorName := "Unknown Author"
	if author, ok := r.store.AuthorOf(r.book); ok {
		authorName = author.Name
	}
	year := "Unknown Year"
	if r.book.PublishedYear != nil {
		year = strconv.Itoa(*r.book.PublishedYear)
	}
	return fmt.Sprintf("%s by %s (%s)", r.book.Title, authorName, year)
}
