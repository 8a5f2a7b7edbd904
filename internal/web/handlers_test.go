package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0shamedia/metamorphosis-doctor/internal/probe"
)

// testServer builds a server over a canned report.
func testServer(t *testing.T) *Server {
	t.Helper()

	report := probe.NewReport([]probe.Result{
		{Name: "venv", Status: probe.StatusPass, Summary: "directory exists at /tmp/comfyui/.venv"},
		{Name: "onnx", Status: probe.StatusFail, Summary: "ERROR: Failed to import onnxruntime", Err: "ERROR: Failed to import onnxruntime"},
	})

	return NewServer(0, "127.0.0.1", func(ctx context.Context) *probe.Report {
		return report
	})
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, testServer(t), "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got '%s'", body["status"])
	}
}

func TestReportEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/report")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report probe.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(report.Results))
	}
	if report.Passed {
		t.Error("expected failing report")
	}
	if report.ID == "" {
		t.Error("expected report ID in response")
	}
}

func TestProbeEndpoint(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/probes/onnx")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var result probe.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if result.Name != "onnx" {
		t.Errorf("expected onnx result, got '%s'", result.Name)
	}
	if result.Status != probe.StatusFail {
		t.Errorf("expected fail status, got '%s'", result.Status)
	}
}

func TestProbeEndpoint_Unknown(t *testing.T) {
	rec := doRequest(t, testServer(t), "/api/v1/probes/warp-drive")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected error message in response")
	}
}
