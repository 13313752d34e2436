package data

// PageArgs carries the four optional cursor-pagination arguments. Nil
// means the argument was absent. The schema declares a default of 2 for
// first, so the only way First reaches this package as nil is an explicit
// null in the request.
type PageArgs struct {
	First  *int
	After  *string
	Last   *int
	Before *string
}

// Edge pairs a book with its cursor. Cursors are simply the stringified
// record id, so clients can mint them without decoding anything.
type Edge struct {
	Node   *Book
	Cursor string
}

// Page is one window over the book collection plus the metadata a client
// needs to keep walking: boundary cursors, has-more flags in both
// directions, and the size of the whole collection.
type Page struct {
	Edges       []Edge
	HasNext     bool
	HasPrev     bool
	StartCursor *string
	EndCursor   *string
	TotalCount  int
}

// Paginate selects a half-open index window [start, end) over books,
// which must already be in insertion order. The window starts as the
// whole slice and the arguments narrow it in a fixed sequence:
//
//  1. after moves start to just past the matching cursor
//  2. before moves end to the matching cursor
//  3. first caps the window length from the front
//  4. last caps the window length from the back
//
// A cursor that matches no record leaves its boundary untouched, exactly
// as if the argument had been omitted. A first or last that would turn
// the window inside out collapses it to empty rather than erroring.
// HasNext and HasPrev report whether records exist beyond the window in
// the unfiltered collection, and TotalCount is always the full length.
func Paginate(books []*Book, args PageArgs) Page {
	start, end := 0, len(books)

	if args.After != nil {
		if i := cursorIndex(books, *args.After); i >= 0 {
			start = i + 1
		}
	}
	if args.Before != nil {
		if i := cursorIndex(books, *args.Before); i >= 0 {
			end = i
		}
	}
	if args.First != nil {
		if capped := start + *args.First; capped < end {
			end = capped
		}
	}
	if args.Last != nil {
		if capped := end - *args.Last; capped > start {
			start = capped
		}
	}

	start = clamp(start, 0, len(books))
	end = clamp(end, 0, len(books))
	if end < start {
		end = start
	}

	page := Page{
		Edges:      make([]Edge, 0, end-start),
		HasNext:    end < len(books),
		HasPrev:    start > 0,
		TotalCount: len(books),
	}
	for _, b := range books[start:end] {
		page.Edges = append(page.Edges, Edge{Node: b, Cursor: formatID(b.ID)})
	}
	if n := len(page.Edges); n > 0 {
		page.StartCursor = &page.Edges[0].Cursor
		page.EndCursor = &page.Edges[n-1].Cursor
	}
	return page
}

// cursorIndex returns the position of the record whose id renders to
// cursor, or -1 when nothing matches.
func cursorIndex(books []*Book, cursor string) int {
	for i, b := range books {
		if formatID(b.ID) == cursor {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
