// cmd/api/routes_test.go
package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGraphQLEndpoint(t *testing.T) {
	app := newTestApplication(t)
	handler := app.routes()

	body := `{"query": "{ bookCount authorCount }"}`
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want %d", w.Code, http.StatusOK)
	}

	var payload struct {
		Data struct {
			BookCount   int `json:"bookCount"`
			AuthorCount int `json:"authorCount"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payload.Errors) > 0 {
		t.Fatalf("unexpected errors: %+v", payload.Errors)
	}
	if payload.Data.BookCount != 5 || payload.Data.AuthorCount != 5 {
		t.Fatalf("got %d books and %d authors, want 5 and 5", payload.Data.BookCount, payload.Data.AuthorCount)
	}
}

// TestGraphQLMutationPersistsAcrossRequests proves the store survives between
// requests: a mutation in one request is visible to a query in the next.
func TestGraphQLMutationPersistsAcrossRequests(t *testing.T) {
	app := newTestApplication(t)
	handler := app.routes()

	post := func(query string) *httptest.ResponseRecorder {
		t.Helper()
		payload, err := json.Marshal(map[string]string{"query": query})
		if err != nil {
			t.Fatalf("encoding request: %v", err)
		}
		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(payload)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}
		return w
	}

	res := post(`mutation { deleteBook(id: "5") }`)
	if got := res.Body.String(); !strings.Contains(got, `"deleteBook":true`) {
		t.Fatalf("delete response %s, want deleteBook true", got)
	}

	res = post(`{ bookCount }`)
	if got := res.Body.String(); !strings.Contains(got, `"bookCount":4`) {
		t.Fatalf("count response %s, want bookCount 4", got)
	}
}

func TestNotFoundRoute(t *testing.T) {
	app := newTestApplication(t)
	handler := app.routes()

	req := httptest.NewRequest(http.MethodGet, "/v1/nonexistent", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type %q, want application/json", ct)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.Error != "the requested resource could not be found" {
		t.Fatalf("error message %q", payload.Error)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApplication(t)
	handler := app.routes()

	req := httptest.NewRequest(http.MethodDelete, "/v1/healthcheck", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload.Error != "the DELETE method is not supported for this resource" {
		t.Fatalf("error message %q", payload.Error)
	}
}
