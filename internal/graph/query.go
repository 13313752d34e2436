package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

func (r *Resolver) Books() []*BookResolver {
	return r.bookResolvers(r.store.Books())
}

func (r *Resolver) BookCount() int32 {
	return int32(r.store.BookCount())
}

func (r *Resolver) Authors() []*AuthorResolver {
	return r.authorResolvers(r.store.Authors())
}

func (r *Resolver) AuthorCount() int32 {
	return int32(r.store.AuthorCount())
}

func (r *Resolver) Book(args struct{ ID graphql.ID }) *BookResolver {
	book, ok := r.store.Book(string(args.ID))
	if !ok {
		return nil
	}
	return r.bookResolver(book)
}

func (r *Resolver) BookByTitle(args struct{ Title string }) *BookResolver {
	book, ok := r.store.BookByTitle(args.Title)
	if !ok {
		return nil
	}
	return r.bookResolver(book)
}

func (r *Resolver) Author(args struct{ ID graphql.ID }) *AuthorResolver {
	author, ok := r.store.Author(string(args.ID))
	if !ok {
		return nil
	}
	return r.authorResolver(author)
}

func (r *Resolver) AuthorByName(args struct{ Name string }) *AuthorResolver {
	author, ok := r.store.AuthorByName(args.Name)
	if !ok {
		return nil
	}
	return r.authorResolver(author)
}

func (r *Resolver) BooksByGenre(args struct{ Genre string }) []*BookResolver {
	return r.bookResolvers(r.store.BooksByGenre(args.Genre))
}

func (r *Resolver) BooksByAuthor(args struct{ AuthorID graphql.ID }) []*BookResolver {
	return r.bookResolvers(r.store.BooksByAuthor(string(args.AuthorID)))
}

func (r *Resolver) BooksByYear(args struct{ Year int32 }) []*BookResolver {
	return r.bookResolvers(r.store.BooksByYear(int(args.Year)))
}

func (r *Resolver) BooksByAvailability(args struct{ IsAvailable bool }) []*BookResolver {
	return r.bookResolvers(r.store.BooksByAvailability(args.IsAvailable))
}

type searchBooksArgs struct {
	Keyword string
	Genre   *string
}

func (r *Resolver) SearchBooks(args searchBooksArgs) []*BookResolver {
	return r.bookResolvers(r.store.SearchBooks(args.Keyword, args.Genre))
}

type booksPaginatedArgs struct {
	First  *int32
	After  *string
	Last   *int32
	Before *string
}

// BooksPaginated resolves the connection field. The schema declares a
// default of 2 for first, so the engine hands this method First=2 when
// the argument is omitted; an explicit null arrives as nil and means
// "no forward cap".
func (r *Resolver) BooksPaginated(args booksPaginatedArgs) *BookConnectionResolver {
	page := r.store.PaginateBooks(data.PageArgs{
		First:  intArg(args.First),
		After:  args.After,
		Last:   intArg(args.Last),
		Before: args.Before,
	})
	return &BookConnectionResolver{store: r.store, page: page}
}
