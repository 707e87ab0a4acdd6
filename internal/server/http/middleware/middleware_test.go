package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func maintenanceRouter(enabled bool) *gin.Engine {
	router := gin.New()
	router.Use(Maintenance(enabled))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/", ok)
	router.GET("/docs", ok)
	router.GET("/docs/openapi.json", ok)
	router.GET("/reports", ok)
	router.POST("/queue-report/", ok)
	return router
}

func TestMaintenanceShortCircuits(t *testing.T) {
	router := maintenanceRouter(true)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/reports"},
		{http.MethodPost, "/queue-report/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected status 503, got %d", w.Code)
			}
			if got := w.Header().Get(ServerModeHeader); got != "Maintenance Mode" {
				t.Fatalf("expected maintenance header, got %q", got)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["detail"] != "Server is under maintenance." {
				t.Fatalf("unexpected payload %v", body)
			}
		})
	}
}

func TestMaintenanceExemptsDocs(t *testing.T) {
	router := maintenanceRouter(true)

	for _, target := range []string{"/", "/docs", "/docs/openapi.json"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", target, w.Code)
		}
		if w.Header().Get(ServerModeHeader) != "" {
			t.Fatalf("%s: did not expect maintenance header", target)
		}
	}
}

func TestMaintenanceDisabled(t *testing.T) {
	router := maintenanceRouter(false)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get(ServerModeHeader) != "" {
		t.Fatal("did not expect maintenance header")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/reports", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := buf.String()
	for _, want := range []string{`"method":"GET"`, `"path":"/reports"`, `"status":200`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log line to contain %s, got %s", want, out)
		}
	}
}
