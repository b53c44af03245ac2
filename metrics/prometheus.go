package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pagesFetchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_sync_pages_fetched_total",
			Help: "Total number of card list pages fetched from WB.",
		},
	)
	cardsSeenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_sync_cards_seen_total",
			Help: "Total number of cards received from WB.",
		},
	)
	rowsAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_sync_rows_accepted_total",
			Help: "Total number of cards transformed into dimension rows.",
		},
	)
	cardsSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wb_sync_cards_skipped_total",
			Help: "Total number of cards skipped, by reason.",
		},
		[]string{"reason"},
	)
	batchesInsertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wb_sync_batches_inserted_total",
			Help: "Total number of insert batches written to the destination.",
		},
	)
	refreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wb_sync_refresh_duration_seconds",
			Help:    "Duration of a full refresh run.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
	refreshRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wb_sync_refresh_rows",
			Help: "Rows written by the last refresh run.",
		},
	)
)

func init() {
	prometheus.MustRegister(pagesFetchedTotal)
	prometheus.MustRegister(cardsSeenTotal)
	prometheus.MustRegister(rowsAcceptedTotal)
	prometheus.MustRegister(cardsSkippedTotal)
	prometheus.MustRegister(batchesInsertedTotal)
	prometheus.MustRegister(refreshDuration)
	prometheus.MustRegister(refreshRows)
}

// PublishRun выгружает счетчики одного прогона в prometheus.
func PublishRun(m *SyncMetrics, duration time.Duration) {
	pagesFetchedTotal.Add(float64(m.PagesFetched.Load()))
	cardsSeenTotal.Add(float64(m.CardsSeen.Load()))
	rowsAcceptedTotal.Add(float64(m.RowsAccepted.Load()))
	cardsSkippedTotal.WithLabelValues("missing_dimensions").Add(float64(m.SkippedMissingDimensions.Load()))
	cardsSkippedTotal.WithLabelValues("malformed_numeric").Add(float64(m.SkippedMalformedNumeric.Load()))
	batchesInsertedTotal.Add(float64(m.BatchesInserted.Load()))
	refreshDuration.Observe(duration.Seconds())
	refreshRows.Set(float64(m.RowsAccepted.Load()))
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
