package server

import (
	"net/http/httptest"
	"testing"

	"github.com/Leganyst/sitter-search/internal/search"
)

func TestParseSearchQuery_OK(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/sitters/search?lat=55.75&lng=37.61&start=2025-06-01&end=2025-06-03&page=2&pageSize=20&petSize=M&sort=rating&needs=senior,medication", nil)

	q, err := parseSearchQuery(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if q.Origin.Lat != 55.75 || q.Origin.Lng != 37.61 {
		t.Fatalf("wrong origin: %+v", q.Origin)
	}
	if q.Range.Days() != 3 {
		t.Fatalf("expected 3-day range, got %d", q.Range.Days())
	}
	if q.Page != 2 || q.PageSize != 20 {
		t.Fatalf("wrong paging: %d/%d", q.Page, q.PageSize)
	}
	if q.PetSize != search.PetSizeM || q.Sort != search.SortByRating {
		t.Fatalf("wrong filters: %s/%s", q.PetSize, q.Sort)
	}
	if len(q.Needs) != 2 || q.Needs[0] != "senior" || q.Needs[1] != "medication" {
		t.Fatalf("wrong needs: %v", q.Needs)
	}
}

func TestParseSearchQuery_RepeatedNeeds(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/sitters/search?lat=0&lng=0&start=2025-06-01&end=2025-06-01&needs=a&needs=b", nil)

	q, err := parseSearchQuery(r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(q.Needs) != 2 {
		t.Fatalf("expected 2 needs, got %v", q.Needs)
	}
}

func TestParseSearchQuery_BadInput(t *testing.T) {
	cases := map[string]string{
		"missing lat":    "/api/sitters/search?lng=37&start=2025-06-01&end=2025-06-02",
		"bad lng":        "/api/sitters/search?lat=55&lng=x&start=2025-06-01&end=2025-06-02",
		"bad start":      "/api/sitters/search?lat=55&lng=37&start=June&end=2025-06-02",
		"reversed dates": "/api/sitters/search?lat=55&lng=37&start=2025-06-05&end=2025-06-02",
		"bad page":       "/api/sitters/search?lat=55&lng=37&start=2025-06-01&end=2025-06-02&page=x",
	}

	for name, url := range cases {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := parseSearchQuery(r); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestHealthz(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()

	h.Healthz(w, httptest.NewRequest("GET", "/healthz", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected JSON content type, got %q", got)
	}
}
