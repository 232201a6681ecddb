package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/pkg/observability"
	"github.com/aretw0/riveting/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountStoreActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	st := store.New(0, store.WithName("counter"), store.WithLifecycleHooks(m.Hooks()))
	sub := st.Subscribe()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Subscribers.WithLabelValues("counter")))

	st.Update(func(d int) int { return d + 1 })
	st.Update(func(d int) int { return d + 1 })
	task := st.UpdateAsync(func(_ context.Context, d int) int { return d + 1 })
	require.NoError(t, task.Wait(context.Background()))

	dropped := st.UpdateAsync(func(ctx context.Context, d int) int {
		<-ctx.Done()
		return d
	})
	dropped.Cancel()
	require.NoError(t, dropped.Wait(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Mutations.WithLabelValues("counter", "sync")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mutations.WithLabelValues("counter", "async")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Emissions.WithLabelValues("counter")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DroppedTasks.WithLabelValues("counter", "canceled")))

	sub.Close()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Subscribers.WithLabelValues("counter")))
	st.Close()

	// Five metric families, all registered.
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)

	err = testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP riveting_tasks_dropped_total Async mutations that finished without committing.
# TYPE riveting_tasks_dropped_total counter
riveting_tasks_dropped_total{reason="canceled",store="counter"} 1
`), "riveting_tasks_dropped_total")
	assert.NoError(t, err)
}

func TestMetrics_NilRegistererSkipsRegistration(t *testing.T) {
	m := observability.NewMetrics(nil)
	reg := prometheus.NewRegistry()
	// Registering again must succeed since nothing was registered before.
	assert.NoError(t, reg.Register(m.Mutations))
}

func TestLogHooks_WritesDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug)

	st := store.New("a", store.WithName("letters"), store.WithLifecycleHooks(observability.LogHooks(logger)))
	st.Update(func(string) string { return "b" })
	st.Close()

	out := buf.String()
	assert.Contains(t, out, "mutation committed")
	assert.Contains(t, out, "store=letters")
	assert.Contains(t, out, "kind=sync")
}
