package metrics

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestMetricsServer(t *testing.T) {
	srv := Start(8888)
	// Give it a tiny bit of time to start up
	time.Sleep(100 * time.Millisecond)

	defer srv.Stop(context.Background())

	// Record activity so the metric families are present in the output
	RecordAdapter("jobs", true, 1*time.Second)
	RecordAdapter("ads", false, 200*time.Millisecond)
	RecordSearch("ok")
	RecordCache(true)
	RecordCache(false)

	resp, err := http.Get("http://localhost:8888/metrics")
	if err != nil {
		t.Fatalf("failed to fetch metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	output := string(body)

	if !strings.Contains(output, `scout_adapter_results_total{found="true",source="jobs"}`) {
		t.Errorf("expected scout_adapter_results_total for jobs")
	}

	if !strings.Contains(output, "scout_adapter_duration_seconds_bucket") {
		t.Errorf("expected scout_adapter_duration_seconds metric")
	}

	if !strings.Contains(output, `scout_cache_events_total{event="hit"}`) {
		t.Errorf("expected scout_cache_events_total hit counter")
	}
}
