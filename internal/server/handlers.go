package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/lostfound-tw/lostfound/internal/facet"
	"github.com/lostfound-tw/lostfound/internal/filter"
	"github.com/lostfound-tw/lostfound/internal/logger"
	"github.com/lostfound-tw/lostfound/internal/render"
	"github.com/lostfound-tw/lostfound/internal/store"
)

type healthResponse struct {
	Status    string     `json:"status"`
	Records   int        `json:"records"`
	FetchedAt *time.Time `json:"fetched_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// health handles GET /health. It always answers 200; the body carries the
// store's load status.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	status, err := s.store.State()
	snap := s.store.Snapshot()

	resp := healthResponse{
		Status:  status.String(),
		Records: len(snap.Records),
	}
	if !snap.FetchedAt.IsZero() {
		t := snap.FetchedAt
		resp.FetchedAt = &t
	}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// facets handles GET /api/facets.
func (s *Server) facets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, facet.Index(s.store.Records(), s.categories))
}

// locations handles GET /api/locations?campus=.
func (s *Server) locations(w http.ResponseWriter, r *http.Request) {
	campus := strings.TrimSpace(r.URL.Query().Get("campus"))
	if campus == "" {
		campus = facet.All
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"campus":    campus,
		"locations": s.categories.LocationsFor(campus),
	})
}

// items handles GET /api/items.
func (s *Server) items(w http.ResponseWriter, r *http.Request) {
	format, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil || format == render.FormatText {
		format = render.FormatJSON
	}

	if !s.available(w) {
		return
	}

	c, err := s.criteria(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error(), nil))
		return
	}

	snap := s.store.Snapshot()
	matched := s.engine.Evaluate(snap.Records, c)
	s.metrics.ObserveEvaluation(len(matched))

	result := render.NewResult(matched, c.String(), snap.FetchedAt)
	if format == render.FormatHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render.WriteItems(w, result, format); err != nil {
			s.log.Error("Rendering items failed", nil, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// available writes the loading or failure response unless the store is
// ready. Nothing is evaluated while a fetch is in flight.
func (s *Server) available(w http.ResponseWriter) bool {
	status, err := s.store.State()
	switch status {
	case store.StatusReady:
		return true
	case store.StatusFailed:
		writeJSON(w, http.StatusBadGateway, errorBody(render.FailureMessage, err))
	default:
		writeJSON(w, http.StatusServiceUnavailable, errorBody(render.LoadingMessage, nil))
	}
	return false
}

type badBoundError struct {
	param, value string
}

func (e *badBoundError) Error() string {
	return "invalid " + e.param + " date: " + e.value
}

func (s *Server) criteria(r *http.Request) (filter.Criteria, error) {
	q := r.URL.Query()
	c := filter.NewCriteria()

	if v := strings.TrimSpace(q.Get("period")); v != "" {
		c.Period = v
	}
	if v := strings.TrimSpace(q.Get("campus")); v != "" {
		c.Campus = v
	}
	if v := strings.TrimSpace(q.Get("location")); v != "" {
		c.Location = v
	}
	c.Keyword = q.Get("keyword")

	for _, b := range []struct {
		param string
		dst   **time.Time
	}{
		{"from", &c.StartDate},
		{"to", &c.EndDate},
	} {
		v := strings.TrimSpace(q.Get(b.param))
		if v == "" {
			continue
		}
		t := filter.ParseBound(v, s.location)
		if t == nil {
			return c, &badBoundError{param: b.param, value: v}
		}
		*b.dst = t
	}
	return c, nil
}

type refreshResponse struct {
	Status    string    `json:"status"`
	Records   int       `json:"records"`
	FetchedAt time.Time `json:"fetched_at"`
}

// refresh handles POST /api/refresh.
func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Refresh(r.Context(), s.load); err != nil {
		s.log.Error("Refresh failed", logger.Fields{"request_id": requestID(r)}, err)
		writeJSON(w, http.StatusBadGateway, errorBody(render.FailureMessage, err))
		return
	}

	snap := s.store.Snapshot()
	s.log.Info("Refreshed records", logger.Fields{"records": len(snap.Records)})
	writeJSON(w, http.StatusOK, refreshResponse{
		Status:    store.StatusReady.String(),
		Records:   len(snap.Records),
		FetchedAt: snap.FetchedAt,
	})
}
