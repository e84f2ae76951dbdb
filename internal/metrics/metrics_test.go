package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector_ReturnsNonNil(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	if c == nil {
		t.Fatal("expected non-nil Collector")
	}
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)

	assert.Panics(t, func() { _ = NewCollector(reg) })
}

func TestRecordRPC_CountsByMethodAndCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRPC("/library.LibraryService/GetUserLibrary", "OK", 10*time.Millisecond)
	c.RecordRPC("/library.LibraryService/GetUserLibrary", "OK", 20*time.Millisecond)
	c.RecordRPC("/library.LibraryService/GetUserLibrary", "InvalidArgument", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.rpcTotal.WithLabelValues("/library.LibraryService/GetUserLibrary", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.rpcTotal.WithLabelValues("/library.LibraryService/GetUserLibrary", "InvalidArgument")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.rpcLatency, "playhub_library_rpc_duration_seconds"))
}

func TestRecordRepositoryCall_SplitsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRepositoryCall(OpUpsert, time.Millisecond, nil)
	c.RecordRepositoryCall(OpUpsert, time.Millisecond, errors.New("db down"))
	c.RecordRepositoryCall(OpCount, time.Millisecond, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.repoTotal.WithLabelValues(OpUpsert, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.repoTotal.WithLabelValues(OpUpsert, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.repoTotal.WithLabelValues(OpCount, "ok")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.repoLatency, "playhub_library_repository_duration_seconds"))
}

func TestNop_DiscardsEverything(t *testing.T) {
	m := Nop()
	assert.NotPanics(t, func() {
		m.RecordRPC("m", "OK", time.Second)
		m.RecordRepositoryCall(OpList, time.Second, errors.New("x"))
	})
}

func TestSetupMetricsRoute_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRepositoryCall(OpList, time.Millisecond, nil)

	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "playhub_library_repository_calls_total") {
		t.Error("response should contain playhub_library_repository_calls_total metric")
	}
}

func TestSetupMetricsRoute_UnknownPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := SetupMetricsRoute(reg)

	req := httptest.NewRequest(http.MethodGet, "/other", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
