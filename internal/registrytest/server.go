// Package registrytest provides an in-process fake of the NPPES NPI Registry
// for tests.
//
// The fake understands the same query parameters as the real endpoint,
// filters a fixed record set, honors limit and skip, and answers invalid
// queries with an Errors payload. It records every request so tests can
// assert how many calls were made and with which query.
//
//	srv := registrytest.NewServer(t)
//	client := npyi.NewClient(npyi.WithBaseURL(srv.BaseURL()))
//	resp, err := client.Search(ctx, npyi.SearchParams{"number": "1417367343"})
//	if srv.RequestCount() != 1 { ... }
package registrytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultLimit is the page size used when a query carries no limit.
	DefaultLimit = 10
	// MaxLimit is the largest page size the registry accepts.
	MaxLimit = 200
	// MaxSkip is the largest skip the registry accepts.
	MaxSkip = 1000
)

var supportedVersions = []string{"1.0", "2.0", "2.1"}

// Request is one request received by the fake.
type Request struct {
	Query  url.Values
	Header http.Header
}

// Server is a running fake registry. Its endpoint is [Server.BaseURL].
type Server struct {
	*httptest.Server

	records []Record

	mu       sync.Mutex
	requests []Request
	canned   *cannedResponse
}

type cannedResponse struct {
	status int
	body   string
}

// Option configures a [Server].
type Option func(*Server)

// WithRecords replaces the default record set.
func WithRecords(records []Record) Option {
	return func(s *Server) { s.records = records }
}

// WithResponse makes every request answer with the given status and body,
// bypassing the search logic. Useful for payload edge cases.
func WithResponse(status int, body string) Option {
	return func(s *Server) { s.canned = &cannedResponse{status: status, body: body} }
}

// NewServer starts a fake registry and closes it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{records: DefaultRecords()}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the registry endpoint, the equivalent of
// https://npiregistry.cms.hhs.gov/api/.
func (s *Server) BaseURL() string {
	return s.URL + "/api/"
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// RequestCount returns how many requests the fake has received.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastQuery returns the query of the most recent request, or nil.
func (s *Server) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1].Query
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/", s.handleSearch)
	return r
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	s.requests = append(s.requests, Request{Query: q, Header: r.Header.Clone()})
	canned := s.canned
	s.mu.Unlock()

	if canned != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(canned.status)
		w.Write([]byte(canned.body))
		return
	}

	if msg, field := checkQuery(q); msg != "" {
		writeErrors(w, msg, field)
		return
	}

	limit := DefaultLimit
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	skip, _ := strconv.Atoi(q.Get("skip"))

	var matched []Record
	for _, rec := range s.records {
		if rec.Matches(q) {
			matched = append(matched, rec)
		}
	}

	page := []map[string]any{}
	if skip < len(matched) {
		end := min(skip+limit, len(matched))
		for _, rec := range matched[skip:end] {
			page = append(page, rec.Payload())
		}
	}

	writeJSON(w, map[string]any{
		"result_count": len(page),
		"results":      page,
	})
}

// checkQuery mirrors the registry's own request validation. It returns the
// error description and field name, or empty strings if the query is valid.
func checkQuery(q url.Values) (string, string) {
	if !slices.Contains(supportedVersions, q.Get("version")) {
		return "Unsupported Version", "version"
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLimit {
			return "Field limit must be between 1 and 200", "limit"
		}
	}
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > MaxSkip {
			return "Field skip must be between 0 and 1000", "skip"
		}
	}
	if v := q.Get("use_first_name_alias"); v != "" && v != "True" && v != "False" {
		return "Field use_first_name_alias must be True or False", "use_first_name_alias"
	}
	for _, key := range criteriaKeys {
		if q.Get(key) != "" {
			return "", ""
		}
	}
	return "No valid search criteria", "generic"
}

func writeErrors(w http.ResponseWriter, description, field string) {
	writeJSON(w, map[string]any{
		"Errors": []map[string]string{
			{"description": description, "field": field, "number": "04"},
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
