package graph

import (
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// Resolver is the schema root. Every Query and Mutation field maps to one
// exported method on this type; the engine matches methods to fields by
// name, case-insensitively. Query methods live in query.go and mutation
// methods in mutation.go.
type Resolver struct {
	store *data.Store
}

// NewResolver returns a root resolver reading from and writing to store.
func NewResolver(store *data.Store) *Resolver {
	return &Resolver{store: store}
}

// bookResolver wraps a record, passing nil through so a missed lookup
// serializes as null.
func (r *Resolver) bookResolver(b *data.Book) *BookResolver {
	if b == nil {
		return nil
	}
	return &BookResolver{store: r.store, book: b}
}

func (r *Resolver) bookResolvers(books []*data.Book) []*BookResolver {
	resolvers := make([]*BookResolver, 0, len(books))
	for _, b := range books {
		resolvers = append(resolvers, &BookResolver{store: r.store, book: b})
	}
	return resolvers
}

func (r *Resolver) authorResolver(a *data.Author) *AuthorResolver {
	if a == nil {
		return nil
	}
	return &AuthorResolver{store: r.store, author: a}
}

func (r *Resolver) authorResolvers(authors []*data.Author) []*AuthorResolver {
	resolvers := make([]*AuthorResolver, 0, len(authors))
	for _, a := range authors {
		resolvers = append(resolvers, &AuthorResolver{store: r.store, author: a})
	}
	return resolvers
}

// gid renders an internal id as the GraphQL ID scalar.
func gid(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

// intArg widens an optional GraphQL Int argument to the store's int form.
func intArg(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// int32Field narrows an optional stored int for the wire, where GraphQL
// Int is 32 bits.
func int32Field(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}

// idArg unwraps an optional ID argument to the store's string form.
func idArg(p *graphql.ID) *string {
	if p == nil {
		return nil
	}
	v := string(*p)
	return &v
}
