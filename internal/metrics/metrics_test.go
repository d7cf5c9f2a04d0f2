package metrics

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lostfound-tw/lostfound/internal/sheet"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeOK},
		{"transport", fmt.Errorf("loading: %w", &sheet.TransportError{StatusCode: 404}), OutcomeTransport},
		{"malformed", fmt.Errorf("loading: %w", sheet.ErrMalformedResponse), OutcomeMalformed},
		{"other", errors.New("context canceled"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.err); got != tt.want {
				t.Errorf("Outcome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetrics_Observe(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFetch(120*time.Millisecond, nil)
	m.ObserveFetch(time.Second, &sheet.TransportError{StatusCode: 500})
	m.SetRecords(42)
	m.ObserveEvaluation(3)
	m.ObserveEvaluation(0)

	if got := testutil.ToFloat64(m.fetches.WithLabelValues(OutcomeOK)); got != 1 {
		t.Errorf("ok fetches = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.fetches.WithLabelValues(OutcomeTransport)); got != 1 {
		t.Errorf("transport fetches = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.records); got != 42 {
		t.Errorf("records = %v, want 42", got)
	}
	if got := testutil.ToFloat64(m.evaluations); got != 2 {
		t.Errorf("evaluations = %v, want 2", got)
	}
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	m.ObserveFetch(time.Second, nil)
	m.SetRecords(1)
	m.ObserveEvaluation(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New(nil)
	m.SetRecords(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "lostfound_store_records 7") {
		t.Errorf("exposition missing records gauge:\n%s", body)
	}
}
