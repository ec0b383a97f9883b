package delaunay

import (
	"context"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var (
	meterReaderOnce sync.Once
	meterReader     *sdkmetric.ManualReader
)

// installMeterReader routes the global meter provider to a manual reader.
// The global provider delegates only once per process, so it is shared.
func installMeterReader() *sdkmetric.ManualReader {
	meterReaderOnce.Do(func() {
		meterReader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(meterReader)))
	})
	return meterReader
}

func counterValue(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s is %T, want an int64 sum", name, m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestTriangulateCounters(t *testing.T) {
	reader := installMeterReader()
	runsBefore := counterValue(t, reader, "delaunay.runs")
	trianglesBefore := counterValue(t, reader, "delaunay.triangles")

	square := []Vertex{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	mustTriangulate(t, square, nil)
	mustTriangulate(t, []Vertex{{0, 0}, {1, 1}, {2, 2}}, nil)

	if got := counterValue(t, reader, "delaunay.runs") - runsBefore; got != 2 {
		t.Errorf("delaunay.runs grew by %d, want 2", got)
	}
	if got := counterValue(t, reader, "delaunay.triangles") - trianglesBefore; got != 2 {
		t.Errorf("delaunay.triangles grew by %d, want 2", got)
	}
}
