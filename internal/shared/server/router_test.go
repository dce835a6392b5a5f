package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/extract"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/server/middleware"
)

func newTestRouter(now *time.Time) *gin.Engine {
	return NewRouter(RouterDeps{
		Config: config.Config{
			RateLimitRPS:        1,
			RateLimitBurst:      3,
			ParseRateLimitRPS:   1,
			ParseRateLimitBurst: 1,
		},
		EnhanceHandler: enhance.NewHandler(enhance.NewCanned(nil)),
		ExtractHandler: extract.NewHandler(extract.NewExtractor(time.Second), 0),
		RateLimiter:    middleware.NewRateLimiter(func() time.Time { return *now }),
	})
}

func TestUnknownRouteReturnsJSONDetail(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newTestRouter(&now)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body, got %q: %v", resp.Body.String(), err)
	}
	if body["detail"] != "Not Found" {
		t.Fatalf("unexpected detail %q", body["detail"])
	}
}

func TestParseResumeHasStricterRateLimit(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newTestRouter(&now)

	post := func(path string) int {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, path, nil))
		return resp.Code
	}

	if code := post("/parse-resume"); code != http.StatusBadRequest {
		t.Fatalf("first parse expected 400 for missing file, got %d", code)
	}
	if code := post("/parse-resume"); code != http.StatusTooManyRequests {
		t.Fatalf("second parse expected 429, got %d", code)
	}

	for i := 0; i < 3; i++ {
		if code := post("/ai-enhance"); code != http.StatusBadRequest {
			t.Fatalf("enhance request %d expected 400 for empty body, got %d", i+1, code)
		}
	}
	if code := post("/ai-enhance"); code != http.StatusTooManyRequests {
		t.Fatalf("enhance request 4 expected 429, got %d", code)
	}
}

func TestAddr(t *testing.T) {
	tests := map[string]string{"": ":8000", "9000": ":9000", ":7000": ":7000"}
	for in, want := range tests {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
