package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// Record is a user as stored by the fake endpoint.
type Record struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Hit is one request received by the fake endpoint.
type Hit struct {
	Method        string
	Path          string
	ContentType   string
	Authorization string
	Body          string
}

// Endpoint is an in-memory CRUD users endpoint with sequential ids. It
// answers every route with JSON, including 404s, the way the real service
// does.
type Endpoint struct {
	Server *httptest.Server

	mu     sync.Mutex
	users  []Record
	nextID int
	hits   []Hit
	// listFailure, when set, makes GET /users answer with a non-JSON body.
	listFailure string
}

// NewEndpoint starts a fake endpoint seeded with users. It is closed when
// the test ends.
func NewEndpoint(t *testing.T, seed ...Record) *Endpoint {
	t.Helper()

	e := &Endpoint{nextID: 1}
	for _, r := range seed {
		if r.ID == 0 {
			r.ID = e.nextID
		}
		if r.ID >= e.nextID {
			e.nextID = r.ID + 1
		}
		e.users = append(e.users, r)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", e.list)
	mux.HandleFunc("POST /users", e.create)
	mux.HandleFunc("GET /users/{id}", e.get)
	mux.HandleFunc("PUT /users/{id}", e.update)
	mux.HandleFunc("DELETE /users/{id}", e.remove)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})

	e.Server = httptest.NewServer(e.record(mux))
	t.Cleanup(e.Server.Close)
	return e
}

// URL is the base URL of the endpoint.
func (e *Endpoint) URL() string {
	return e.Server.URL
}

// Users returns the stored records in insertion order.
func (e *Endpoint) Users() []Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Record(nil), e.users...)
}

// Hits returns every request received so far.
func (e *Endpoint) Hits() []Hit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Hit(nil), e.hits...)
}

// HitCount returns how many requests were received.
func (e *Endpoint) HitCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.hits)
}

// FailList makes GET /users answer 500 with a plain-text body.
func (e *Endpoint) FailList(body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listFailure = body
}

func (e *Endpoint) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		e.mu.Lock()
		e.hits = append(e.hits, Hit{
			Method:        r.Method,
			Path:          r.URL.Path,
			ContentType:   r.Header.Get("Content-Type"),
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		e.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (e *Endpoint) list(w http.ResponseWriter, _ *http.Request) {
	e.mu.Lock()
	failure := e.listFailure
	users := append([]Record{}, e.users...)
	e.mu.Unlock()

	if failure != "" {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(failure))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (e *Endpoint) create(w http.ResponseWriter, r *http.Request) {
	var in Record
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}
	e.mu.Lock()
	in.ID = e.nextID
	e.nextID++
	e.users = append(e.users, in)
	e.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{"message": "User created", "user": in})
}

func (e *Endpoint) get(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i := e.indexOf(r.PathValue("id")); i >= 0 {
		writeJSON(w, http.StatusOK, map[string]any{"user": e.users[i]})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
}

func (e *Endpoint) update(w http.ResponseWriter, r *http.Request) {
	var in Record
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON"})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(r.PathValue("id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	}
	e.users[i].Username = in.Username
	e.users[i].Email = in.Email
	writeJSON(w, http.StatusOK, map[string]any{"message": "User updated", "user": e.users[i]})
}

func (e *Endpoint) remove(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.indexOf(r.PathValue("id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "User not found"})
		return
	}
	e.users = append(e.users[:i], e.users[i+1:]...)
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

func (e *Endpoint) indexOf(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	for i, u := range e.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
