package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"resume-editor/internal/shared/metrics"
	"resume-editor/internal/shared/telemetry"
)

var (
	// ErrInvalidInput reports an upload that is not a PDF.
	ErrInvalidInput = errors.New("only PDF files are supported")
	// ErrExtraction reports a PDF that could not be read.
	ErrExtraction = errors.New("pdf extraction failed")
)

// DefaultTimeout bounds a single extraction when none is configured.
const DefaultTimeout = 30 * time.Second

// ValidateFileName accepts names ending in .pdf, in any case.
func ValidateFileName(name string) error {
	if !strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".pdf") {
		return fmt.Errorf("%w: %q", ErrInvalidInput, name)
	}
	return nil
}

// Extractor pulls plain text out of PDF documents held in memory.
type Extractor struct {
	Timeout time.Duration

	parse func(data []byte) (string, int, error)
}

// NewExtractor constructs an Extractor. A non-positive timeout selects DefaultTimeout.
func NewExtractor(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{Timeout: timeout}
}

type result struct {
	text  string
	pages int
	err   error
}

// PDFText returns the text of every page in order, each followed by a newline.
// Pages without a content stream contribute only the newline.
func (e *Extractor) PDFText(ctx context.Context, data []byte) (string, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	metrics.IncExtractions()

	parse := e.parse
	if parse == nil {
		parse = pdfText
	}
	done := make(chan result, 1)
	go func() {
		text, pages, err := parse(data)
		done <- result{text: text, pages: pages, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			metrics.IncExtractionsTimedOut()
		}
		res.err = ctx.Err()
	case res = <-done:
	}

	elapsed := time.Since(start)
	metrics.ObserveExtractionDurationMs(float64(elapsed.Microseconds()) / 1000.0)
	if res.err != nil {
		metrics.IncExtractionsFailed()
		telemetry.Warn("extract.pdf.failed", map[string]any{
			"bytes": len(data),
			"error": res.err,
		})
		return "", fmt.Errorf("%w: %w", ErrExtraction, res.err)
	}

	telemetry.Info("extract.pdf.complete", map[string]any{
		"bytes":       len(data),
		"pages":       res.pages,
		"chars":       len(res.text),
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	})
	return res.text, nil
}

func pdfText(data []byte) (text string, pages int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, err
	}

	var buf strings.Builder
	fonts := make(map[string]*pdf.Font)
	pages = reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			buf.WriteString("\n")
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := page.Font(name)
				fonts[name] = &font
			}
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}
	return buf.String(), pages, nil
}
