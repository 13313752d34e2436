package graph

import (
	"fmt"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// The input structs mirror the schema's input objects field for field.
// Optional GraphQL fields must be pointers here, and GraphQL Int is
// 32-bit on the wire, so the numeric fields are *int32 until they are
// converted for the store.

type addBookInput struct {
	Title         string
	AuthorID      graphql.ID
	Genre         *string
	PublishedYear *int32
	Pages         *int32
	ISBN          *string
	Summary       *string
}

type updateBookInput struct {
	Title         *string
	AuthorID      *graphql.ID
	Genre         *string
	PublishedYear *int32
	Pages         *int32
	ISBN          *string
	Summary       *string
	IsAvailable   *bool
}

type addAuthorInput struct {
	Name      string
	Biography *string
	BirthYear *int32
}

type updateAuthorInput struct {
	Name      *string
	Biography *string
	BirthYear *int32
}

func (r *Resolver) AddBook(args struct{ Input addBookInput }) (*BookResolver, error) {
	book, err := r.store.AddBook(data.AddBookInput{
		Title:         args.Input.Title,
		AuthorID:      string(args.Input.AuthorID),
		Genre:         args.Input.Genre,
		PublishedYear: intArg(args.Input.PublishedYear),
		Pages:         intArg(args.Input.Pages),
		ISBN:          args.Input.ISBN,
		Summary:       args.Input.Summary,
	})
	if err != nil {
		return nil, err
	}
	return r.bookResolver(book), nil
}

type updateBookArgs struct {
	ID    graphql.ID
	Input updateBookInput
}

func (r *Resolver) UpdateBook(args updateBookArgs) (*BookResolver, error) {
	book, err := r.store.UpdateBook(string(args.ID), data.UpdateBookInput{
		Title:         args.Input.Title,
		AuthorID:      idArg(args.Input.AuthorID),
		Genre:         args.Input.Genre,
		PublishedYear: intArg(args.Input.PublishedYear),
		Pages:         intArg(args.Input.Pages),
		ISBN:          args.Input.ISBN,
		Summary:       args.Input.Summary,
		IsAvailable:   args.Input.IsAvailable,
	})
	if err != nil {
		return nil, err
	}
	return r.bookResolver(book), nil
}

func (r *Resolver) DeleteBook(args struct{ ID graphql.ID }) bool {
	return r.store.DeleteBook(string(args.ID))
}

func (r *Resolver) ToggleBookAvailability(args struct{ ID graphql.ID }) (*BookResolver, error) {
	book, err := r.store.ToggleBookAvailability(string(args.ID))
	if err != nil {
		return nil, err
	}
	return r.bookResolver(book), nil
}

func (r *Resolver) AddAuthor(args struct{ Input addAuthorInput }) (*AuthorResolver, error) {
	author, err := r.store.AddAuthor(data.AddAuthorInput{
		Name:      args.Input.Name,
		Biography: args.Input.Biography,
		BirthYear: intArg(args.Input.BirthYear),
	})
	if err != nil {
		return nil, err
	}
	return r.authorResolver(author), nil
}

type updateAuthorArgs struct {
	ID    graphql.ID
	Input updateAuthorInput
}

func (r *Resolver) UpdateAuthor(args updateAuthorArgs) (*AuthorResolver, error) {
	author, err := r.store.UpdateAuthor(string(args.ID), data.UpdateAuthorInput{
		Name:      args.Input.Name,
		Biography: args.Input.Biography,
		BirthYear: intArg(args.Input.BirthYear),
	})
	if err != nil {
		return nil, err
	}
	return r.authorResolver(author), nil
}

func (r *Resolver) DeleteAuthor(args struct{ ID graphql.ID }) (bool, error) {
	return r.store.DeleteAuthor(string(args.ID))
}

// ResetData throws away every change and reloads the seed dataset. The
// return value is a human-readable confirmation, not a structured type.
func (r *Resolver) ResetData() string {
	authors, books := r.store.Reset()
	return fmt.Sprintf("Data reset complete: restored %d authors and %d books.", authors, books)
}
