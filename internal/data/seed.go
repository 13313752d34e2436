package data

// Seed is a complete starting dataset for the store. The store keeps its
// own private copy, so a Seed can be shared and reused freely; resetData
// always restores the seed the store was created with, identifiers
// included.
type Seed struct {
	Authors []*Author
	Books   []*Book
}

// DefaultSeed returns the built-in dataset: five well-known authors and
// five of their books. Book 5 starts out unavailable so the availability
// filter has something to find.
func DefaultSeed() Seed {
	return Seed{
		Authors: []*Author{
			{
				ID:        1,
				Name:      "J.K. Rowling",
				Biography: strPtr("British author best known for the Harry Potter series."),
				BirthYear: intPtr(1965),
			},
			{
				ID:        2,
				Name:      "J.R.R. Tolkien",
				Biography: strPtr("English writer and philologist, author of The Hobbit and The Lord of the Rings."),
				BirthYear: intPtr(1892),
			},
			{
				ID:        3,
				Name:      "George Orwell",
				Biography: strPtr("English novelist and essayist, known for his sharp social criticism."),
				BirthYear: intPtr(1903),
			},
			{
				ID:        4,
				Name:      "Agatha Christie",
				Biography: strPtr("English writer known for her sixty-six detective novels."),
				BirthYear: intPtr(1890),
			},
			{
				ID:        5,
				Name:      "Isaac Asimov",
				BirthYear: intPtr(1920),
			},
		},
		Books: []*Book{
			{
				ID:            1,
				Title:         "Harry Potter and the Philosopher's Stone",
				AuthorID:      1,
				Genre:         strPtr("FANTASY"),
				PublishedYear: intPtr(1997),
				Pages:         intPtr(223),
				ISBN:          strPtr("9780747532699"),
				IsAvailable:   true,
				Summary:       strPtr("A young wizard discovers his magical heritage on his eleventh birthday."),
			},
			{
				ID:            2,
				Title:         "The Hobbit",
				AuthorID:      2,
				Genre:         strPtr("FANTASY"),
				PublishedYear: intPtr(1937),
				Pages:         intPtr(310),
				ISBN:          strPtr("9780261103344"),
				IsAvailable:   true,
				Summary:       strPtr("Bilbo Baggins is swept into a quest to reclaim a dwarf kingdom from a dragon."),
			},
			{
				ID:            3,
				Title:         "1984",
				AuthorID:      3,
				Genre:         strPtr("SCIENCE_FICTION"),
				PublishedYear: intPtr(1949),
				Pages:         intPtr(328),
				ISBN:          strPtr("9780451524935"),
				IsAvailable:   true,
				Summary:       strPtr("A dystopian vision of total surveillance and the rewriting of truth."),
			},
			{
				ID:            4,
				Title:         "Murder on the Orient Express",
				AuthorID:      4,
				Genre:         strPtr("MYSTERY"),
				PublishedYear: intPtr(1934),
				Pages:         intPtr(256),
				ISBN:          strPtr("0007119313"),
				IsAvailable:   true,
				Summary:       strPtr("Hercule Poirot investigates a murder aboard a snowbound train."),
			},
			{
				ID:            5,
				Title:         "Foundation",
				AuthorID:      5,
				Genre:         strPtr("SCIENCE_FICTION"),
				PublishedYear: intPtr(1951),
				Pages:         intPtr(244),
				IsAvailable:   false,
				Summary:       strPtr("A mathematician foresees the fall of a galactic empire and plans for what comes after."),
			},
		},
	}
}

// clone returns deep copies of the seed collections. Every record and
// every optional field gets fresh memory, so the seed itself can never be
// mutated through a record the store handed out.
func (s Seed) clone() ([]*Author, []*Book) {
	authors := make([]*Author, 0, len(s.Authors))
	for _, a := range s.Authors {
		authors = append(authors, cloneAuthor(a))
	}
	books := make([]*Book, 0, len(s.Books))
	for _, b := range s.Books {
		books = append(books, cloneBook(b))
	}
	return authors, books
}

func cloneAuthor(a *Author) *Author {
	c := *a
	c.Biography = copyStr(a.Biography)
	c.BirthYear = copyInt(a.BirthYear)
	return &c
}

func cloneBook(b *Book) *Book {
	c := *b
	c.Genre = copyStr(b.Genre)
	c.PublishedYear = copyInt(b.PublishedYear)
	c.Pages = copyInt(b.Pages)
	c.ISBN = copyStr(b.ISBN)
	c.Summary = copyStr(b.Summary)
	return &c
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
