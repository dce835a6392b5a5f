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
	resumesSavedTotal       atomic.Uint64
	resumesLoadedTotal      atomic.Uint64
	enhancementsTotal       atomic.Uint64
	extractionsTotal        atomic.Uint64
	extractionsFailedTotal  atomic.Uint64
	extractionsTimeoutTotal atomic.Uint64

	extractionDuration = newHistogram([]float64{10, 25, 50, 100, 250, 500, 1000, 5000, 30000})
)

// IncResumesSaved increments the saved counter.
func IncResumesSaved() {
	resumesSavedTotal.Add(1)
}

// AddResumesLoaded adds records loaded from storage into memory.
func AddResumesLoaded(n int) {
	if n > 0 {
		resumesLoadedTotal.Add(uint64(n))
	}
}

// IncEnhancements increments the enhancement counter.
func IncEnhancements() {
	enhancementsTotal.Add(1)
}

// IncExtractions increments the extraction counter.
func IncExtractions() {
	extractionsTotal.Add(1)
}

// IncExtractionsFailed increments the failed extraction counter.
func IncExtractionsFailed() {
	extractionsFailedTotal.Add(1)
}

// IncExtractionsTimedOut increments the timed-out extraction counter.
func IncExtractionsTimedOut() {
	extractionsTimeoutTotal.Add(1)
}

// ObserveExtractionDurationMs records an extraction duration in milliseconds.
func ObserveExtractionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	extractionDuration.Observe(value)
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
	writeCounter(&buf, "resumes_saved_total", "Total resumes saved", resumesSavedTotal.Load())
	writeCounter(&buf, "resumes_loaded_total", "Total resumes loaded from storage", resumesLoadedTotal.Load())
	writeCounter(&buf, "enhancements_total", "Total section enhancements served", enhancementsTotal.Load())
	writeCounter(&buf, "extractions_total", "Total PDF extractions attempted", extractionsTotal.Load())
	writeCounter(&buf, "extractions_failed_total", "Total PDF extractions failed", extractionsFailedTotal.Load())
	writeCounter(&buf, "extractions_timeout_total", "Total PDF extractions that hit the timeout", extractionsTimeoutTotal.Load())
	writeHistogram(&buf, "extraction_duration_ms", "PDF extraction duration in milliseconds", extractionDuration.Snapshot())
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

// Observe counts value in the first bucket whose bound it does not exceed.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
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
