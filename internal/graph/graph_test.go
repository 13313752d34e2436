package graph

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/gqltesting"
	"github.com/stretchr/testify/require"

	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// newTestSchema builds a schema over a fresh seed store. Tests that
// mutate share one schema within a function so they can build on each
// other's state in order.
func newTestSchema(t *testing.T) *graphql.Schema {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSchema(data.NewStore(data.DefaultSeed()), logger)
}

func TestQueries(t *testing.T) {
	schema := newTestSchema(t)

	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					bookCount
					authorCount
				}
			`),
			ExpectedResult: `{"bookCount": 5, "authorCount": 5}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					book(id: "3") {
						id
						title
						isAvailable
						fullData
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"book": {
						"id": "3",
						"title": "1984",
						"isAvailable": true,
						"fullData": "1984 by George Orwell (1949)"
					}
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					book(id: "999") { id }
				}
			`),
			ExpectedResult: `{"book": null}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					author(id: "2") {
						name
						birthYear
						books { title }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"author": {
						"name": "J.R.R. Tolkien",
						"birthYear": 1892,
						"books": [{"title": "The Hobbit"}]
					}
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					exact: bookByTitle(title: "1984") { id }
					wrongCase: bookByTitle(title: "the hobbit") { id }
				}
			`),
			ExpectedResult: `{"exact": {"id": "3"}, "wrongCase": null}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					authorByName(name: "rowling") {
						id
						name
					}
				}
			`),
			ExpectedResult: `{"authorByName": {"id": "1", "name": "J.K. Rowling"}}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksByGenre(genre: SCIENCE_FICTION) { title }
				}
			`),
			ExpectedResult: `{"booksByGenre": [{"title": "1984"}, {"title": "Foundation"}]}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksByAuthor(authorId: "4") { title }
					booksByYear(year: 1997) { id }
					booksByAvailability(isAvailable: false) { title }
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksByAuthor": [{"title": "Murder on the Orient Express"}],
					"booksByYear": [{"id": "1"}],
					"booksByAvailability": [{"title": "Foundation"}]
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				query Search($keyword: String!, $genre: Genre) {
					searchBooks(keyword: $keyword, genre: $genre) { title }
				}
			`),
			Variables:      map[string]interface{}{"keyword": "the", "genre": "FANTASY"},
			ExpectedResult: `{"searchBooks": [{"title": "Harry Potter and the Philosopher's Stone"}, {"title": "The Hobbit"}]}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				query {
					books {
						...availability
					}
				}

				fragment availability on Book {
					id
					isAvailable
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"books": [
						{"id": "1", "isAvailable": true},
						{"id": "2", "isAvailable": true},
						{"id": "3", "isAvailable": true},
						{"id": "4", "isAvailable": true},
						{"id": "5", "isAvailable": false}
					]
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				query Summaries($withSummary: Boolean!) {
					book(id: "5") {
						title
						summary @include(if: $withSummary)
					}
				}
			`),
			Variables:      map[string]interface{}{"withSummary": false},
			ExpectedResult: `{"book": {"title": "Foundation"}}`,
		},
	})
}

func TestPaginationQueries(t *testing.T) {
	schema := newTestSchema(t)

	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			// No arguments: the schema default first=2 applies.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated {
						edges {
							cursor
							node { id title }
						}
						pageInfo {
							hasNextPage
							hasPreviousPage
							startCursor
							endCursor
						}
						totalCount
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [
							{"cursor": "1", "node": {"id": "1", "title": "Harry Potter and the Philosopher's Stone"}},
							{"cursor": "2", "node": {"id": "2", "title": "The Hobbit"}}
						],
						"pageInfo": {
							"hasNextPage": true,
							"hasPreviousPage": false,
							"startCursor": "1",
							"endCursor": "2"
						},
						"totalCount": 5
					}
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: 2, after: "2") {
						edges { node { id } }
						pageInfo { hasNextPage hasPreviousPage endCursor }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [{"node": {"id": "3"}}, {"node": {"id": "4"}}],
						"pageInfo": {"hasNextPage": true, "hasPreviousPage": true, "endCursor": "4"}
					}
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: 2, after: "4") {
						edges { node { id } }
						pageInfo { hasNextPage endCursor }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [{"node": {"id": "5"}}],
						"pageInfo": {"hasNextPage": false, "endCursor": "5"}
					}
				}
			`),
		},
		{
			// The default first=2 still applies when only last is sent,
			// so the front cap wins before last is considered.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(last: 2) {
						edges { node { id } }
					}
				}
			`),
			ExpectedResult: `{"booksPaginated": {"edges": [{"node": {"id": "1"}}, {"node": {"id": "2"}}]}}`,
		},
		{
			// Explicit null disables the default, exposing the pure
			// last-only window.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: null, last: 2) {
						edges { node { id } }
						pageInfo { hasNextPage hasPreviousPage }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [{"node": {"id": "4"}}, {"node": {"id": "5"}}],
						"pageInfo": {"hasNextPage": false, "hasPreviousPage": true}
					}
				}
			`),
		},
		{
			// first: 0 is a provided value, not an absent one.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: 0) {
						edges { node { id } }
						pageInfo { hasNextPage hasPreviousPage startCursor endCursor }
						totalCount
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [],
						"pageInfo": {
							"hasNextPage": true,
							"hasPreviousPage": false,
							"startCursor": null,
							"endCursor": null
						},
						"totalCount": 5
					}
				}
			`),
		},
		{
			// A cursor matching nothing behaves as if it were omitted.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: 2, after: "999") {
						edges { node { id } }
						pageInfo { hasPreviousPage }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [{"node": {"id": "1"}}, {"node": {"id": "2"}}],
						"pageInfo": {"hasPreviousPage": false}
					}
				}
			`),
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				{
					booksPaginated(first: null, last: 2, before: "5") {
						edges { node { id } }
						pageInfo { hasNextPage hasPreviousPage }
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"booksPaginated": {
						"edges": [{"node": {"id": "3"}}, {"node": {"id": "4"}}],
						"pageInfo": {"hasNextPage": true, "hasPreviousPage": true}
					}
				}
			`),
		},
	})
}

func TestMutationLifecycle(t *testing.T) {
	schema := newTestSchema(t)

	gqltesting.RunTests(t, []*gqltesting.Test{
		{
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					addBook(input: {title: "Dune", authorId: "5", genre: SCIENCE_FICTION}) {
						id
						title
						isAvailable
						fullData
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"addBook": {
						"id": "6",
						"title": "Dune",
						"isAvailable": true,
						"fullData": "Dune by Isaac Asimov (Unknown Year)"
					}
				}
			`),
		},
		{
			Schema:         schema,
			Query:          `{ bookCount }`,
			ExpectedResult: `{"bookCount": 6}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					toggleBookAvailability(id: "1") { id isAvailable }
				}
			`),
			ExpectedResult: `{"toggleBookAvailability": {"id": "1", "isAvailable": false}}`,
		},
		{
			// Toggling twice lands back where it started.
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					toggleBookAvailability(id: "1") { id isAvailable }
				}
			`),
			ExpectedResult: `{"toggleBookAvailability": {"id": "1", "isAvailable": true}}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					updateBook(id: "2", input: {pages: 320, summary: "Revised edition."}) {
						title
						pages
						isbn
						summary
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"updateBook": {
						"title": "The Hobbit",
						"pages": 320,
						"isbn": "9780261103344",
						"summary": "Revised edition."
					}
				}
			`),
		},
		{
			// Update skips validation, so a dangling author reference is
			// accepted and surfaces as a null author.
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					updateBook(id: "1", input: {authorId: "999"}) {
						authorId
						author { name }
						fullData
					}
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"updateBook": {
						"authorId": "999",
						"author": null,
						"fullData": "Harry Potter and the Philosopher's Stone by Unknown Author (1997)"
					}
				}
			`),
		},
		{
			Schema:         schema,
			Query:          `mutation { deleteBook(id: "6") }`,
			ExpectedResult: `{"deleteBook": true}`,
		},
		{
			Schema:         schema,
			Query:          `mutation { deleteBook(id: "6") }`,
			ExpectedResult: `{"deleteBook": false}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					addAuthor(input: {name: "  Ursula K. Le Guin  ", birthYear: 1929}) {
						id
						name
						birthYear
					}
				}
			`),
			ExpectedResult: `{"addAuthor": {"id": "6", "name": "Ursula K. Le Guin", "birthYear": 1929}}`,
		},
		{
			Schema: schema,
			Query: heredoc.Doc(`
				mutation {
					updateAuthor(id: "6", input: {biography: "Wrote the Earthsea cycle."}) {
						name
						biography
					}
				}
			`),
			ExpectedResult: `{"updateAuthor": {"name": "Ursula K. Le Guin", "biography": "Wrote the Earthsea cycle."}}`,
		},
		{
			Schema:         schema,
			Query:          `mutation { deleteAuthor(id: "6") }`,
			ExpectedResult: `{"deleteAuthor": true}`,
		},
		{
			Schema:         schema,
			Query:          `mutation { deleteAuthor(id: "6") }`,
			ExpectedResult: `{"deleteAuthor": false}`,
		},
		{
			Schema:         schema,
			Query:          `mutation { resetData }`,
			ExpectedResult: `{"resetData": "Data reset complete: restored 5 authors and 5 books."}`,
		},
		{
			// Everything is back to the seed, ids included.
			Schema: schema,
			Query: heredoc.Doc(`
				{
					bookCount
					authorCount
					book(id: "1") {
						isAvailable
						author { name }
					}
					hobbit: book(id: "2") { pages summary }
				}
			`),
			ExpectedResult: heredoc.Doc(`
				{
					"bookCount": 5,
					"authorCount": 5,
					"book": {
						"isAvailable": true,
						"author": {"name": "J.K. Rowling"}
					},
					"hobbit": {
						"pages": 310,
						"summary": "Bilbo Baggins is swept into a quest to reclaim a dwarf kingdom from a dragon."
					}
				}
			`),
		},
	})
}

func TestMutationErrors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
		ext     map[string]interface{}
	}{
		{
			name:    "duplicate title",
			query:   `mutation { addBook(input: {title: "1984", authorId: "1"}) { id } }`,
			message: `a book titled "1984" already exists`,
			ext:     map[string]interface{}{"code": "CONFLICT", "field": "title", "value": "1984"},
		},
		{
			name:    "unknown author reference",
			query:   `mutation { addBook(input: {title: "Dune", authorId: "999"}) { id } }`,
			message: `no author with id "999" exists`,
			ext:     map[string]interface{}{"code": "INVALID_REFERENCE", "field": "authorId", "value": "999"},
		},
		{
			name:  "malformed isbn",
			query: `mutation { addBook(input: {title: "Dune", authorId: "1", isbn: "12345"}) { id } }`,
			ext:   map[string]interface{}{"code": "INVALID_FORMAT", "field": "isbn", "value": "12345"},
		},
		{
			name:  "publication year out of range",
			query: `mutation { addBook(input: {title: "Dune", authorId: "1", publishedYear: 3000}) { id } }`,
			ext:   map[string]interface{}{"code": "OUT_OF_RANGE", "field": "publishedYear", "value": "3000"},
		},
		{
			name:  "non-positive pages",
			query: `mutation { addBook(input: {title: "Dune", authorId: "1", pages: 0}) { id } }`,
			ext:   map[string]interface{}{"code": "INVALID_VALUE", "field": "pages", "value": "0"},
		},
		{
			name:  "duplicate author name",
			query: `mutation { addAuthor(input: {name: "george orwell"}) { id } }`,
			ext:   map[string]interface{}{"code": "CONFLICT", "field": "name", "value": "george orwell"},
		},
		{
			name:  "birth year out of range",
			query: `mutation { addAuthor(input: {name: "Somebody New", birthYear: 5000}) { id } }`,
			ext:   map[string]interface{}{"code": "OUT_OF_RANGE", "field": "birthYear", "value": "5000"},
		},
		{
			name:    "author name too short",
			query:   `mutation { addAuthor(input: {name: " A "}) { id } }`,
			message: "author name must be at least 2 characters long",
			ext:     map[string]interface{}{"code": "INVALID_VALUE", "field": "name", "value": "A"},
		},
		{
			name:  "update target missing",
			query: `mutation { updateBook(id: "999", input: {title: "x"}) { id } }`,
			ext:   map[string]interface{}{"code": "NOT_FOUND", "field": "id", "value": "999"},
		},
		{
			name:  "toggle target missing",
			query: `mutation { toggleBookAvailability(id: "999") { id } }`,
			ext:   map[string]interface{}{"code": "NOT_FOUND", "field": "id", "value": "999"},
		},
		{
			name:    "delete author with dependent books",
			query:   `mutation { deleteAuthor(id: "3") }`,
			message: `cannot delete author "3": 1 book(s) still reference this author`,
			ext:     map[string]interface{}{"code": "DEPENDENCY_CONFLICT", "field": "id", "value": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := newTestSchema(t)

			resp := schema.Exec(context.Background(), tt.query, "", nil)
			require.Len(t, resp.Errors, 1)

			qerr := resp.Errors[0]
			if tt.message != "" {
				require.Equal(t, tt.message, qerr.Message)
			}
			require.Empty(t, cmp.Diff(tt.ext, qerr.Extensions))
		})
	}
}

func TestRejectedMutationLeavesStateUntouched(t *testing.T) {
	store := data.NewStore(data.DefaultSeed())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	schema := NewSchema(store, logger)

	resp := schema.Exec(context.Background(), `mutation { addBook(input: {title: "Dune", authorId: "1", pages: -5}) { id } }`, "", nil)
	require.NotEmpty(t, resp.Errors)

	require.Equal(t, 5, store.BookCount())
	_, ok := store.BookByTitle("Dune")
	require.False(t, ok)
}

func TestEngineRejectsUnknownEnumValue(t *testing.T) {
	schema := newTestSchema(t)

	// The enum never reaches the resolver; the engine fails the request
	// during validation.
	resp := schema.Exec(context.Background(), `{ booksByGenre(genre: WESTERN) { id } }`, "", nil)
	require.NotEmpty(t, resp.Errors)
	require.Contains(t, resp.Errors[0].Message, "Genre")
}
