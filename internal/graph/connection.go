package graph

import (
	"github.com/pagesmith/graphql-bookshelf/internal/data"
)

// BookConnectionResolver serves one page computed by the store. The page
// is a snapshot: its edges keep resolving consistently even if the
// collection changes underneath.
type BookConnectionResolver struct {
	store *data.Store
	page  data.Page
}

func (r *BookConnectionResolver) Edges() []*BookEdgeResolver {
	edges := make([]*BookEdgeResolver, 0, len(r.page.Edges))
	for _, e := range r.page.Edges {
		edges = append(edges, &BookEdgeResolver{store: r.store, edge: e})
	}
	return edges
}

func (r *BookConnectionResolver) PageInfo() *PageInfoResolver {
	return &PageInfoResolver{page: r.page}
}

func (r *BookConnectionResolver) TotalCount() int32 {
	return int32(r.page.TotalCount)
}

type BookEdgeResolver struct {
	store *data.Store
	edge  data.Edge
}

func (r *BookEdgeResolver) Cursor() string {
	return r.edge.Cursor
}

func (r *BookEdgeResolver) Node() *BookResolver {
	return &BookResolver{store: r.store, book: r.edge.Node}
}

type PageInfoResolver struct {
	page data.Page
}

func (r *PageInfoResolver) HasNextPage() bool {
	return r.page.HasNext
}

func (r *PageInfoResolver) HasPreviousPage() bool {
	return r.page.HasPrev
}

func (r *PageInfoResolver) StartCursor() *string {
	return r.page.StartCursor
}

func (r *PageInfoResolver) EndCursor() *string {
	return r.page.EndCursor
}
