package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// AuthorResolver serves the Author type's fields from one record. The
// books field reads the live collection, which makes the circular
// author -> books -> author traversal work on current data.
type AuthorResolver struct {
	store  *data.Store
	author *data.Author
}

func (r *AuthorResolver) ID() graphql.ID {
	return gid(r.author.ID)
}

func (r *AuthorResolver) Name() string {
	return r.author.Name
}

func (r *AuthorResolver) Biography() *string {
	return r.author.Biography
}

func (r *AuthorResolver) BirthYear() *int32 {
	return int32Field(r.author.BirthYear)
}

func (r *AuthorResolver) Books() []*BookResolver {
	books := r.store.BooksOf(r.author)
	resolvers := make([]*BookResolver, 0, len(books))
	for _, b := range books {
		resolvers = append(resolvers, &BookResolver{store: r.store, book: b})
	}
	return resolvers
}
