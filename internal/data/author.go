package data

// Author represents a single author record held in the in-memory store.
type Author struct {
	ID        int64   // Unique identifier assigned by the store
	Name      string  // Display name, unique case-insensitively, stored trimmed
	Biography *string // Optional short biography
	BirthYear *int    // Optional year of birth
}

// AddAuthorInput holds the fields a client must supply when adding an
// author. Only Name is required.
type AddAuthorInput struct {
	Name      string
	Biography *string
	BirthYear *int
}

// UpdateAuthorInput holds the fields a client may supply when partially
// updating an author. Nil means "leave the current value alone".
type UpdateAuthorInput struct {
	Name      *string
	Biography *string
	BirthYear *int
}
