package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alex-panda/knuthplass/breaker"
)

func TestHandleHealthzReturnsOK(t *testing.T) {
	a := NewAPI(nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestHandleSolveRejectsMalformedBody(t *testing.T) {
	a := NewAPI(nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSolveRejectsUnknownItemKind(t *testing.T) {
	a := NewAPI(nil, nil)
	body, _ := json.Marshal(SolveRequest{
		Items:       []ItemDTO{{Kind: "bogus", Width: 1}},
		LineLengths: []float64{100},
		Options:     breaker.DefaultOptions(),
	})
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleSolveReturnsBreaksForValidRequest(t *testing.T) {
	a := NewAPI(nil, nil)
	body, _ := json.Marshal(SolveRequest{
		Items: []ItemDTO{
			{Kind: "box", Width: 10},
			{Kind: "glue", Width: 5, Stretch: 3, Shrink: 2},
			{Kind: "box", Width: 10},
		},
		LineLengths: []float64{50},
		Options:     breaker.DefaultOptions(),
	})
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp SolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Breaks) == 0 {
		t.Fatalf("expected at least one break")
	}
	if resp.JobID == "" {
		t.Fatalf("expected a non-empty job ID")
	}
}

func TestHandleSolveReportsNoFeasibleBreak(t *testing.T) {
	a := NewAPI(nil, nil)
	opts := breaker.DefaultOptions()
	opts.Tolerance = 0
	body, _ := json.Marshal(SolveRequest{
		Items: []ItemDTO{
			{Kind: "box", Width: 1000},
		},
		LineLengths: []float64{10},
		Options:     opts,
	})
	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	a.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
}
