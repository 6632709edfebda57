package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	recommendationsTotal   atomic.Uint64
	lowConfidenceTotal     atomic.Uint64
	emptyCatalogTotal      atomic.Uint64
	sharesCreatedTotal     atomic.Uint64
	analyticsDroppedTotal  atomic.Uint64
	analyticsRecordedTotal atomic.Uint64

	scoringDuration = newHistogram([]float64{1, 2, 5, 10, 25, 50, 100, 250, 500})
)

// IncRecommendationsGenerated increments the recommendations counter.
func IncRecommendationsGenerated() {
	recommendationsTotal.Add(1)
}

// IncLowConfidence increments the low-confidence result counter.
func IncLowConfidence() {
	lowConfidenceTotal.Add(1)
}

// IncEmptyCatalog increments the empty-catalog counter.
func IncEmptyCatalog() {
	emptyCatalogTotal.Add(1)
}

// IncSharesCreated increments the shares counter.
func IncSharesCreated() {
	sharesCreatedTotal.Add(1)
}

// IncAnalyticsDropped increments the dropped-analytics counter.
func IncAnalyticsDropped() {
	analyticsDroppedTotal.Add(1)
}

// IncAnalyticsRecorded increments the recorded-analytics counter.
func IncAnalyticsRecorded() {
	analyticsRecordedTotal.Add(1)
}

// ObserveScoringDurationMs records an engine run duration in milliseconds.
func ObserveScoringDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoringDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "recommendations_generated_total", "Total recommendations generated", recommendationsTotal.Load())
	writeCounter(&buf, "recommendations_low_confidence_total", "Total low-confidence recommendations", lowConfidenceTotal.Load())
	writeCounter(&buf, "recommendations_empty_catalog_total", "Total requests hitting an empty catalog", emptyCatalogTotal.Load())
	writeCounter(&buf, "shares_created_total", "Total share snapshots created", sharesCreatedTotal.Load())
	writeCounter(&buf, "analytics_recorded_total", "Total analytics events recorded", analyticsRecordedTotal.Load())
	writeCounter(&buf, "analytics_dropped_total", "Total analytics events dropped", analyticsDroppedTotal.Load())
	writeHistogram(&buf, "scoring_duration_ms", "Scoring engine duration in milliseconds", scoringDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
