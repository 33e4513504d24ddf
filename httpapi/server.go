// Package httpapi exposes the line breaker over HTTP: a solve endpoint that
// accepts a raw item stream and line schedule and returns the chosen breaks,
// plus a health check for load balancers.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alex-panda/knuthplass/breaker"
	"github.com/alex-panda/knuthplass/store"
)

// Server timeout constants for the solve API.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

var (
	solveRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "knuthplass_solve_requests_total",
		Help: "Total number of /solve requests, partitioned by outcome.",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "knuthplass_solve_duration_seconds",
		Help:    "Time spent inside breaker.Solve for /solve requests.",
		Buckets: prometheus.DefBuckets,
	})
)

// API bundles the dependencies request handlers need.
type API struct {
	Cache  store.Cache
	Audit  *store.AuditLog
	Logger *log.Logger
}

// NewAPI returns an API with a default logger writing to stderr.
func NewAPI(cache store.Cache, audit *store.AuditLog) *API {
	return &API{Cache: cache, Audit: audit, Logger: log.Default()}
}

// Router builds the chi router for the solve API.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/healthz", a.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/solve", a.handleSolve)

	return r
}

// NewServer wraps Router in an *http.Server with conservative timeouts.
func NewServer(addr string, a *API) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      a.Router(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		a.Logger.Info("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (a *API) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SolveRequest is the JSON body accepted by POST /solve.
type SolveRequest struct {
	Items       []ItemDTO       `json:"items"`
	LineLengths []float64       `json:"line_lengths"`
	Options     breaker.Options `json:"options"`
}

// ItemDTO is the wire representation of a breaker.Item.
type ItemDTO struct {
	Kind    string  `json:"kind"`
	Width   float64 `json:"width"`
	Stretch float64 `json:"stretch,omitempty"`
	Shrink  float64 `json:"shrink,omitempty"`
	Penalty float64 `json:"penalty,omitempty"`
	Flagged bool    `json:"flagged,omitempty"`
}

// SolveResponse is the JSON body returned by a successful POST /solve.
type SolveResponse struct {
	JobID  string          `json:"job_id"`
	Breaks []breaker.Break `json:"breaks"`
	Cached bool            `json:"cached"`
}

func (a *API) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		solveRequests.WithLabelValues("bad_request").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items, err := dtosToItems(req.Items)
	if err != nil {
		solveRequests.WithLabelValues("bad_request").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	itemHash := store.HashItems(items, req.LineLengths, req.Options)
	if a.Cache != nil {
		if rec, hit, err := a.Cache.Get(r.Context(), itemHash); err == nil && hit {
			solveRequests.WithLabelValues("cache_hit").Inc()
			writeJSON(w, SolveResponse{JobID: rec.JobID.String(), Breaks: rec.Breaks, Cached: true})
			return
		}
	}

	p := breaker.NewParagraph()
	for _, it := range items {
		p.AppendItem(it)
	}
	if p.Len() == 0 || !p.Item(p.Len()-1).IsForcedBreak() {
		p.AppendEnd()
	}

	rec := store.NewRecord(items, req.LineLengths, req.Options)

	start := time.Now()
	breaks, err := breaker.Solve(p, req.LineLengths, req.Options)
	solveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		rec.Err = err.Error()
		solveRequests.WithLabelValues("solve_error").Inc()
		if a.Audit != nil {
			_ = a.Audit.Append(r.Context(), rec)
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	rec.Breaks = breaks
	solveRequests.WithLabelValues("ok").Inc()

	if a.Cache != nil {
		_ = a.Cache.Set(r.Context(), rec, time.Hour)
	}
	if a.Audit != nil {
		_ = a.Audit.Append(r.Context(), rec)
	}

	writeJSON(w, SolveResponse{JobID: rec.JobID.String(), Breaks: breaks})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
