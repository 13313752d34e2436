package data

import (
	"fmt"
	"strconv"
)

// ErrorCode classifies a failed store operation. The code travels to API
// clients inside the GraphQL error extensions, so the values are part of
// the public contract and must stay stable.
type ErrorCode string

const (
	CodeConflict           ErrorCode = "CONFLICT"
	CodeInvalidReference   ErrorCode = "INVALID_REFERENCE"
	CodeInvalidFormat      ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange         ErrorCode = "OUT_OF_RANGE"
	CodeInvalidValue       ErrorCode = "INVALID_VALUE"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeDependencyConflict ErrorCode = "DEPENDENCY_CONFLICT"
)

// Error describes why a store mutation was rejected. It records the
// machine-readable code alongside the offending field and value, so a
// client can tell which input to fix without parsing the message.
type Error struct {
	Code    ErrorCode // Stable category, e.g. CONFLICT
	Field   string    // Input field that failed, e.g. "isbn"
	Value   string    // Offending value as the client sent it
	Message string    // Human-readable explanation
}

// Error returns the human-readable message, satisfying the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Extensions returns the machine-readable portion of the error. The
// GraphQL engine detects this method and copies the map into the
// "extensions" object of the serialized error.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.Code),
	}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	if e.Value != "" {
		ext["value"] = e.Value
	}
	return ext
}

// errDuplicateTitle reports a book title collision on add.
func errDuplicateTitle(title string) *Error {
	return &Error{
		Code:    CodeConflict,
		Field:   "title",
		Value:   title,
		Message: fmt.Sprintf("a book titled %q already exists", title),
	}
}

// errDuplicateAuthorName reports an author name collision on add.
func errDuplicateAuthorName(name string) *Error {
	return &Error{
		Code:    CodeConflict,
		Field:   "name",
		Value:   name,
		Message: fmt.Sprintf("an author named %q already exists", name),
	}
}

// errUnknownAuthor reports an authorId that resolves to no author.
func errUnknownAuthor(id string) *Error {
	return &Error{
		Code:    CodeInvalidReference,
		Field:   "authorId",
		Value:   id,
		Message: fmt.Sprintf("no author with id %q exists", id),
	}
}

// errInvalidISBN reports an ISBN with the wrong shape.
func errInvalidISBN(isbn string) *Error {
	return &Error{
		Code:    CodeInvalidFormat,
		Field:   "isbn",
		Value:   isbn,
		Message: fmt.Sprintf("isbn %q must contain 10 or 13 characters after removing hyphens and spaces", isbn),
	}
}

// errYearOutOfRange reports a year outside 1..current; field names which
// input carried it (publishedYear or birthYear).
func errYearOutOfRange(field string, year int) *Error {
	return &Error{
		Code:    CodeOutOfRange,
		Field:   field,
		Value:   strconv.Itoa(year),
		Message: fmt.Sprintf("%s %d must be between 1 and the current year", field, year),
	}
}

// errInvalidPageCount reports a zero or negative page count.
func errInvalidPageCount(pages int) *Error {
	return &Error{
		Code:    CodeInvalidValue,
		Field:   "pages",
		Value:   strconv.Itoa(pages),
		Message: fmt.Sprintf("pages must be a positive number, got %d", pages),
	}
}

// errAuthorNameTooShort reports a trimmed author name under two characters.
func errAuthorNameTooShort(name string) *Error {
	return &Error{
		Code:    CodeInvalidValue,
		Field:   "name",
		Value:   name,
		Message: "author name must be at least 2 characters long",
	}
}

// errBookNotFound reports a book id that matches no record.
func errBookNotFound(id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Field:   "id",
		Value:   id,
		Message: fmt.Sprintf("no book with id %q exists", id),
	}
}

// errAuthorNotFound reports an author id that matches no record.
func errAuthorNotFound(id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Field:   "id",
		Value:   id,
		Message: fmt.Sprintf("no author with id %q exists", id),
	}
}

// errAuthorHasBooks rejects deleting an author that books still reference.
func errAuthorHasBooks(id string, count int) *Error {
	return &Error{
		Code:    CodeDependencyConflict,
		Field:   "id",
		Value:   id,
		Message: fmt.Sprintf("cannot delete author %q: %d book(s) still reference this author", id, count),
	}
}
