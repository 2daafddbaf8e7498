package observability

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

// Metrics is the service's Prometheus registry. A nil *Metrics is valid and
// records nothing, so callers never need to check whether metrics are on.
type Metrics struct {
	apiRequests   *CounterVec
	apiLatency    *HistogramVec
	apiInflight   *GaugeVec
	importRuns    *CounterVec
	importRows    *CounterVec
	importLatency *HistogramVec
	dbPool        *GaugeVec
}

// NewMetrics returns nil when enabled is false.
func NewMetrics(enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	return &Metrics{
		apiRequests: NewCounterVec("commissioning_api_requests_total", "API requests by method/route/status.", []string{"method", "route", "status"}),
		apiLatency: NewHistogramVec(
			"commissioning_api_request_duration_seconds",
			"API request latency in seconds by method/route.",
			[]string{"method", "route"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight: NewGaugeVec("commissioning_api_inflight_requests", "In-flight API requests.", nil),
		importRuns:  NewCounterVec("commissioning_punch_import_runs_total", "Punch list imports by outcome.", []string{"outcome"}),
		importRows:  NewCounterVec("commissioning_punch_import_rows_total", "Punch list rows processed by result.", []string{"result"}),
		importLatency: NewHistogramVec(
			"commissioning_punch_import_duration_seconds",
			"Punch list import duration in seconds.",
			nil,
			[]float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		),
		dbPool: NewGaugeVec("commissioning_db_pool", "database/sql pool statistics.", []string{"stat"}),
	}
}

func (m *Metrics) ObserveAPI(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.Inc(method, route, strconv.Itoa(status))
	m.apiLatency.Observe(dur.Seconds(), method, route)
}

func (m *Metrics) InflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Add(1)
}

func (m *Metrics) InflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Add(-1)
}

// ObserveImport records one punch list import. inserted and skipped are
// ignored when err is non-nil.
func (m *Metrics) ObserveImport(inserted, skipped int, dur time.Duration, err error) {
	if m == nil {
		return
	}
	m.importLatency.Observe(dur.Seconds())
	if err != nil {
		m.importRuns.Inc("failed")
		return
	}
	m.importRuns.Inc("succeeded")
	m.importRows.Add(float64(inserted), "inserted")
	m.importRows.Add(float64(skipped), "skipped")
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests, m.apiLatency, m.apiInflight,
		m.importRuns, m.importRows, m.importLatency,
		m.dbPool,
	}
	for _, wr := range writers {
		if err := wr.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

// StartDBCollector samples pool statistics every interval until ctx ends.
func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB, interval time.Duration) {
	if m == nil || db == nil {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sampleDB(log, db)
			}
		}
	}()
}

func (m *Metrics) sampleDB(log *logger.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		if log != nil {
			log.Warn("metrics: db stats unavailable", "error", err)
		}
		return
	}
	stats := sqlDB.Stats()
	m.dbPool.Set(float64(stats.OpenConnections), "open_connections")
	m.dbPool.Set(float64(stats.InUse), "in_use")
	m.dbPool.Set(float64(stats.Idle), "idle")
	m.dbPool.Set(float64(stats.WaitCount), "wait_count")
	m.dbPool.Set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
	m.dbPool.Set(float64(stats.MaxOpenConnections), "max_open_connections")
}
