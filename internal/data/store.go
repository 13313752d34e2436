package data

import (
	"strconv"
	"strings"
	"sync"

	"github.com/pagesmith/graphql-bookshelf/internal/validator"
)

// Store holds the author and book collections in memory. A single RWMutex
// guards both collections: reads take the read lock and return snapshots,
// mutations take the write lock and follow validate-then-commit, so a
// rejected input leaves no trace. Records are never modified in place
// once published; updates install fresh copies.
type Store struct {
	mu      sync.RWMutex
	seed    Seed // pristine dataset restored by Reset
	authors []*Author
	books   []*Book
}

// NewStore creates a Store populated from seed. The seed is deep-copied
// twice: once into the live collections and once into the private copy
// that Reset restores, so later changes to the caller's Seed value have
// no effect.
func NewStore(seed Seed) *Store {
	s := &Store{}
	seedAuthors, seedBooks := seed.clone()
	s.seed = Seed{Authors: seedAuthors, Books: seedBooks}
	s.authors, s.books = s.seed.clone()
	return s
}

// parseID converts a client-supplied id string into the internal int64
// form. Anything unparseable maps to 0, which no record ever carries
// (assignment starts at 1), so a garbage id simply never matches.
func parseID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// formatID renders an internal id in the form clients see, which is also
// the pagination cursor form.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Books returns the book collection in insertion order. The slice is a
// fresh copy; the records it points at are shared but immutable.
func (s *Store) Books() []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Book{}, s.books...)
}

// Authors returns the author collection in insertion order.
func (s *Store) Authors() []*Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Author{}, s.authors...)
}

// BookCount returns the number of books currently stored.
func (s *Store) BookCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

// AuthorCount returns the number of authors currently stored.
func (s *Store) AuthorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors)
}

// Book looks up a book by id. The second return value reports whether a
// match was found.
func (s *Store) Book(id string) (*Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findBook(s.books, parseID(id)); i >= 0 {
		return s.books[i], true
	}
	return nil, false
}

// Author looks up an author by id.
func (s *Store) Author(id string) (*Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findAuthor(s.authors, parseID(id)); i >= 0 {
		return s.authors[i], true
	}
	return nil, false
}

// AuthorOf returns the author a book references, if that author still
// exists. Updates can leave a book pointing at nothing; callers render
// that as an unknown author rather than an error.
func (s *Store) AuthorOf(b *Book) (*Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := findAuthor(s.authors, b.AuthorID); i >= 0 {
		return s.authors[i], true
	}
	return nil, false
}

// BooksOf returns the books referencing the given author, in insertion
// order.
func (s *Store) BooksOf(a *Author) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return booksOf(s.books, a.ID)
}

// BookByTitle returns the first book whose title matches exactly,
// case-sensitively.
func (s *Store) BookByTitle(title string) (*Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.Title == title {
			return b, true
		}
	}
	return nil, false
}

// AuthorByName returns the first author whose name contains the given
// fragment, compared case-insensitively. "rowling" finds J.K. Rowling.
func (s *Store) AuthorByName(name string) (*Author, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(name)
	for _, a := range s.authors {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			return a, true
		}
	}
	return nil, false
}

// BooksByGenre returns every book tagged with exactly the given genre, in
// insertion order. Books without a genre never match.
func (s *Store) BooksByGenre(genre string) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []*Book{}
	for _, b := range s.books {
		if b.Genre != nil && *b.Genre == genre {
			matches = append(matches, b)
		}
	}
	return matches
}

// BooksByAuthor returns every book referencing the given author id.
func (s *Store) BooksByAuthor(authorID string) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return booksOf(s.books, parseID(authorID))
}

// BooksByYear returns every book first published in the given year.
func (s *Store) BooksByYear(year int) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []*Book{}
	for _, b := range s.books {
		if b.PublishedYear != nil && *b.PublishedYear == year {
			matches = append(matches, b)
		}
	}
	return matches
}

// BooksByAvailability returns every book whose availability flag equals
// isAvailable.
func (s *Store) BooksByAvailability(isAvailable bool) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []*Book{}
	for _, b := range s.books {
		if b.IsAvailable == isAvailable {
			matches = append(matches, b)
		}
	}
	return matches
}

// SearchBooks returns books whose title or summary contains keyword,
// compared case-insensitively. When genre is non-nil the match is further
// restricted to that genre.
func (s *Store) SearchBooks(keyword string, genre *string) []*Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(keyword)
	matches := []*Book{}
	for _, b := range s.books {
		if genre != nil && (b.Genre == nil || *b.Genre != *genre) {
			continue
		}
		inTitle := strings.Contains(strings.ToLower(b.Title), needle)
		inSummary := b.Summary != nil && strings.Contains(strings.ToLower(*b.Summary), needle)
		if inTitle || inSummary {
			matches = append(matches, b)
		}
	}
	return matches
}

// PaginateBooks applies cursor pagination over the full book collection
// in insertion order. See Paginate for the window rules.
func (s *Store) PaginateBooks(args PageArgs) Page {
	s.mu.RLock()
	snapshot := append([]*Book{}, s.books...)
	s.mu.RUnlock()
	return Paginate(snapshot, args)
}

// AddBook validates input and, if every check passes, appends a new book
// and returns it. Checks run in a fixed order and the first failure wins:
// title uniqueness, author existence, ISBN shape, publication year, page
// count. A new book always starts out available.
func (s *Store) AddBook(input AddBookInput) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !validator.UniqueAmong(input.Title, bookTitles(s.books)) {
		return nil, errDuplicateTitle(input.Title)
	}

	authorID := parseID(input.AuthorID)
	if findAuthor(s.authors, authorID) < 0 {
		return nil, errUnknownAuthor(input.AuthorID)
	}

	if input.ISBN != nil && !validator.ValidISBN(*input.ISBN) {
		return nil, errInvalidISBN(*input.ISBN)
	}
	if input.PublishedYear != nil && !validator.ValidYear(*input.PublishedYear) {
		return nil, errYearOutOfRange("publishedYear", *input.PublishedYear)
	}
	if input.Pages != nil && !validator.ValidPageCount(*input.Pages) {
		return nil, errInvalidPageCount(*input.Pages)
	}

	book := &Book{
		ID:            nextID(bookIDs(s.books)),
		Title:         input.Title,
		AuthorID:      authorID,
		Genre:         copyStr(input.Genre),
		PublishedYear: copyInt(input.PublishedYear),
		Pages:         copyInt(input.Pages),
		ISBN:          copyStr(input.ISBN),
		IsAvailable:   true,
		Summary:       copyStr(input.Summary),
	}
	s.books = append(s.books, book)
	return book, nil
}

// UpdateBook applies a shallow merge of the non-nil input fields onto the
// book with the given id and returns the updated record. No validation
// runs on update: a duplicate title, malformed ISBN, or authorId pointing
// nowhere is accepted as-is. A book whose authorId no longer resolves
// simply reports an unknown author in its derived fields.
func (s *Store) UpdateBook(id string, input UpdateBookInput) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findBook(s.books, parseID(id))
	if i < 0 {
		return nil, errBookNotFound(id)
	}

	updated := *s.books[i]
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.AuthorID != nil {
		updated.AuthorID = parseID(*input.AuthorID)
	}
	if input.Genre != nil {
		updated.Genre = copyStr(input.Genre)
	}
	if input.PublishedYear != nil {
		updated.PublishedYear = copyInt(input.PublishedYear)
	}
	if input.Pages != nil {
		updated.Pages = copyInt(input.Pages)
	}
	if input.ISBN != nil {
		updated.ISBN = copyStr(input.ISBN)
	}
	if input.Summary != nil {
		updated.Summary = copyStr(input.Summary)
	}
	if input.IsAvailable != nil {
		updated.IsAvailable = *input.IsAvailable
	}

	s.books[i] = &updated
	return &updated, nil
}

// DeleteBook removes the book with the given id. It returns true if a
// record was removed and false if the id matched nothing; a miss is not
// an error.
func (s *Store) DeleteBook(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findBook(s.books, parseID(id))
	if i < 0 {
		return false
	}
	s.books = append(s.books[:i], s.books[i+1:]...)
	return true
}

// ToggleBookAvailability flips the availability flag of the book with the
// given id and returns the updated record.
func (s *Store) ToggleBookAvailability(id string) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findBook(s.books, parseID(id))
	if i < 0 {
		return nil, errBookNotFound(id)
	}

	updated := *s.books[i]
	updated.IsAvailable = !updated.IsAvailable
	s.books[i] = &updated
	return &updated, nil
}

// AddAuthor validates input and, if every check passes, appends a new
// author and returns it. The name is trimmed before any check, and the
// checks run in a fixed order: name uniqueness, birth year range, then
// minimum name length.
func (s *Store) AddAuthor(input AddAuthorInput) (*Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(input.Name)

	if !validator.UniqueAmong(name, authorNames(s.authors)) {
		return nil, errDuplicateAuthorName(name)
	}
	if input.BirthYear != nil && !validator.ValidYear(*input.BirthYear) {
		return nil, errYearOutOfRange("birthYear", *input.BirthYear)
	}
	if !validator.ValidAuthorName(name) {
		return nil, errAuthorNameTooShort(name)
	}

	author := &Author{
		ID:        nextID(authorIDs(s.authors)),
		Name:      name,
		Biography: copyStr(input.Biography),
		BirthYear: copyInt(input.BirthYear),
	}
	s.authors = append(s.authors, author)
	return author, nil
}

// UpdateAuthor applies a shallow merge of the non-nil input fields onto
// the author with the given id. As with books, no validation and no
// trimming happens on update.
func (s *Store) UpdateAuthor(id string, input UpdateAuthorInput) (*Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findAuthor(s.authors, parseID(id))
	if i < 0 {
		return nil, errAuthorNotFound(id)
	}

	updated := *s.authors[i]
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Biography != nil {
		updated.Biography = copyStr(input.Biography)
	}
	if input.BirthYear != nil {
		updated.BirthYear = copyInt(input.BirthYear)
	}

	s.authors[i] = &updated
	return &updated, nil
}

// DeleteAuthor removes the author with the given id. A miss returns
// (false, nil). An author still referenced by books is not removed; the
// delete fails with a dependency conflict instead so no book is left
// pointing at nothing by this path.
func (s *Store) DeleteAuthor(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := findAuthor(s.authors, parseID(id))
	if i < 0 {
		return false, nil
	}

	if n := len(booksOf(s.books, s.authors[i].ID)); n > 0 {
		return false, errAuthorHasBooks(id, n)
	}

	s.authors = append(s.authors[:i], s.authors[i+1:]...)
	return true, nil
}

// Reset discards every change and restores the seed dataset the store was
// created with, original identifiers included. It returns the restored
// author and book counts.
func (s *Store) Reset() (authors, books int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authors, s.books = s.seed.clone()
	return len(s.authors), len(s.books)
}

// findBook returns the index of the book with the given id, or -1.
// Callers must hold the lock.
func findBook(books []*Book, id int64) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// findAuthor returns the index of the author with the given id, or -1.
func findAuthor(authors []*Author, id int64) int {
	for i, a := range authors {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// booksOf returns the books referencing the given author id.
func booksOf(books []*Book, authorID int64) []*Book {
	matches := []*Book{}
	for _, b := range books {
		if b.AuthorID == authorID {
			matches = append(matches, b)
		}
	}
	return matches
}

// nextID returns max(ids)+1, or 1 for an empty collection. Deleting the
// highest-numbered record therefore frees its id for the next add.
func nextID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func bookIDs(books []*Book) []int64 {
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	return ids
}

func authorIDs(authors []*Author) []int64 {
	ids := make([]int64, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}
	return ids
}

func bookTitles(books []*Book) []string {
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	return titles
}

func authorNames(authors []*Author) []string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return names
}
