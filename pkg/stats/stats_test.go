package stats

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestDumpMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_donations_total",
		Help: "test counter",
	})
	reg.MustRegister(counter)
	counter.Add(3)

	dir := t.TempDir()
	require.NoError(t, DumpMetrics(reg, dir))
	require.NoError(t, DumpMetrics(reg, dir))

	buf, err := os.ReadFile(filepath.Join(dir, dumpFilename))
	require.NoError(t, err)

	content := string(buf)
	require.Equal(t, 2, strings.Count(content, "test_donations_total 3"))
	require.Equal(t, 2, strings.Count(content, "# dumped at"))
}

func TestEnableMemoryStatistics(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "test gauge",
	}))

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	EnableMemoryStatistics(ctx, 10*time.Millisecond, reg, dir)

	time.Sleep(30 * time.Millisecond)
	cancel()

	require.Eventually(t, func() bool {
		buf, err := os.ReadFile(filepath.Join(dir, dumpFilename))
		return err == nil && strings.Contains(string(buf), "test_gauge 0")
	}, time.Second, 10*time.Millisecond)
}
