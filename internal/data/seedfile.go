package data

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/pagesmith/graphql-bookshelf/internal/validator"
)

// seedFile mirrors the YAML document shape for a custom seed dataset.
// Identifiers are explicit in the file because a seed fixes them, and
// isAvailable is a pointer so an omitted flag can default to true.
type seedFile struct {
	Authors []seedFileAuthor `yaml:"authors"`
	Books   []seedFileBook   `yaml:"books"`
}

type seedFileAuthor struct {
	ID        int64   `yaml:"id"`
	Name      string  `yaml:"name"`
	Biography *string `yaml:"biography"`
	BirthYear *int    `yaml:"birthYear"`
}

type seedFileBook struct {
	ID            int64   `yaml:"id"`
	Title         string  `yaml:"title"`
	AuthorID      int64   `yaml:"authorId"`
	Genre         *string `yaml:"genre"`
	PublishedYear *int    `yaml:"publishedYear"`
	Pages         *int    `yaml:"pages"`
	ISBN          *string `yaml:"isbn"`
	IsAvailable   *bool   `yaml:"isAvailable"`
	Summary       *string `yaml:"summary"`
}

// LoadSeedFile reads and validates a YAML seed dataset from path. The
// returned Seed is ready to hand to NewStore.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("reading seed file: %w", err)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		return Seed{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

// ParseSeed decodes and validates a YAML seed document. Unlike the
// mutation path, which stops at the first failed check, a seed file is
// checked exhaustively so a bad dataset can be fixed in one edit.
func ParseSeed(raw []byte) (Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Seed{}, fmt.Errorf("parsing yaml: %w", err)
	}

	v := validator.New()
	validateSeedAuthors(v, f.Authors)
	validateSeedBooks(v, f.Books, f.Authors)
	if !v.Valid() {
		return Seed{}, seedProblems(v.Errors)
	}

	seed := Seed{
		Authors: make([]*Author, 0, len(f.Authors)),
		Books:   make([]*Book, 0, len(f.Books)),
	}
	for _, a := range f.Authors {
		seed.Authors = append(seed.Authors, &Author{
			ID:        a.ID,
			Name:      strings.TrimSpace(a.Name),
			Biography: copyStr(a.Biography),
			BirthYear: copyInt(a.BirthYear),
		})
	}
	for _, b := range f.Books {
		available := true
		if b.IsAvailable != nil {
			available = *b.IsAvailable
		}
		seed.Books = append(seed.Books, &Book{
			ID:            b.ID,
			Title:         b.Title,
			AuthorID:      b.AuthorID,
			Genre:         copyStr(b.Genre),
			PublishedYear: copyInt(b.PublishedYear),
			Pages:         copyInt(b.Pages),
			ISBN:          copyStr(b.ISBN),
			IsAvailable:   available,
			Summary:       copyStr(b.Summary),
		})
	}
	return seed, nil
}

func validateSeedAuthors(v *validator.Validator, authors []seedFileAuthor) {
	ids := make([]int64, 0, len(authors))
	names := make([]string, 0, len(authors))

	for i, a := range authors {
		key := fmt.Sprintf("authors[%d]", i)
		v.Check(a.ID > 0, key+".id", "must be a positive integer")
		v.Check(validator.ValidAuthorName(a.Name), key+".name", "must be at least 2 characters long")
		if a.BirthYear != nil {
			v.Check(validator.ValidYear(*a.BirthYear), key+".birthYear", "must be between 1 and the current year")
		}
		ids = append(ids, a.ID)
		names = append(names, strings.TrimSpace(a.Name))
	}

	v.Check(uniqueIDs(ids), "authors.ids", "must be unique")
	v.Check(validator.UniqueFold(names), "authors.names", "must be unique, compared case-insensitively")
}

func validateSeedBooks(v *validator.Validator, books []seedFileBook, authors []seedFileAuthor) {
	known := make(map[int64]bool, len(authors))
	for _, a := range authors {
		known[a.ID] = true
	}

	ids := make([]int64, 0, len(books))
	titles := make([]string, 0, len(books))

	for i, b := range books {
		key := fmt.Sprintf("books[%d]", i)
		v.Check(b.ID > 0, key+".id", "must be a positive integer")
		v.Check(b.Title != "", key+".title", "must be provided")
		v.Check(known[b.AuthorID], key+".authorId", "must reference an author in this file")
		if b.Genre != nil {
			v.Check(validator.In(*b.Genre, Genres()...), key+".genre", "must be one of the schema genres")
		}
		if b.PublishedYear != nil {
			v.Check(validator.ValidYear(*b.PublishedYear), key+".publishedYear", "must be between 1 and the current year")
		}
		if b.Pages != nil {
			v.Check(validator.ValidPageCount(*b.Pages), key+".pages", "must be a positive number")
		}
		if b.ISBN != nil {
			v.Check(validator.ValidISBN(*b.ISBN), key+".isbn", "must contain 10 or 13 characters after removing hyphens and spaces")
		}
		ids = append(ids, b.ID)
		titles = append(titles, b.Title)
	}

	v.Check(uniqueIDs(ids), "books.ids", "must be unique")
	v.Check(validator.UniqueFold(titles), "books.titles", "must be unique, compared case-insensitively")
}

// seedProblems flattens the collected errors into one error value with a
// stable, sorted layout.
func seedProblems(problems map[string]string) error {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("invalid seed data:")
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %s", k, problems[k])
	}
	return errors.New(b.String())
}

func uniqueIDs(ids []int64) bool {
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}
