package cli_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/riveting/internal/adapters/memory"
	"github.com/aretw0/riveting/internal/cli"
	"github.com/aretw0/riveting/internal/config"
	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Catalog.Delay = 0
	return cfg
}

func TestNewCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		c, closeFn, err := cli.NewCatalog(ctx, config.CatalogConfig{Backend: config.BackendMemory})
		require.NoError(t, err)
		defer closeFn()

		names, err := c.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, memory.DefaultNames, names)
	})

	t.Run("redis seeds an empty list", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.CatalogConfig{
			Backend: config.BackendRedis,
			Redis:   config.RedisConfig{Addr: mr.Addr(), Key: "heroes"},
		}

		c, closeFn, err := cli.NewCatalog(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		names, err := c.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, memory.DefaultNames, names)
		stored, err := mr.List("heroes")
		require.NoError(t, err)
		assert.Equal(t, memory.DefaultNames, stored)
	})

	t.Run("redis keeps an existing list", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mr.RPush("riveting:catalog", "Storm", "Cyclops")
		cfg := config.CatalogConfig{
			Backend: config.BackendRedis,
			Redis:   config.RedisConfig{Addr: mr.Addr()},
		}

		c, closeFn, err := cli.NewCatalog(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		names, err := c.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Storm", "Cyclops"}, names)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, _, err := cli.NewCatalog(ctx, config.CatalogConfig{
			Backend: config.BackendRedis,
			Redis:   config.RedisConfig{Addr: addr},
		})
		assert.Error(t, err)
	})

	t.Run("loam", func(t *testing.T) {
		dir := testutils.WriteCatalogDir(t, map[string]string{
			"1.md": "---\nname: Thor\n---\n",
			"2.md": "---\nname: Hulk\n---\n",
		})

		c, closeFn, err := cli.NewCatalog(ctx, config.CatalogConfig{
			Backend: config.BackendLoam,
			Loam:    config.LoamConfig{Dir: dir},
		})
		require.NoError(t, err)
		defer closeFn()

		names, err := c.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Thor", "Hulk"}, names)
	})

	t.Run("unknown", func(t *testing.T) {
		_, closeFn, err := cli.NewCatalog(ctx, config.CatalogConfig{Backend: "postgres"})
		assert.ErrorIs(t, err, config.ErrInvalid)
		assert.NotNil(t, closeFn)
	})
}

func newApp(t *testing.T) *cli.App {
	t.Helper()
	app, err := cli.NewApp(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	require.Eventually(t, func() bool {
		return app.Feature.ViewState().Kind == search.ViewLoaded
	}, time.Second, 5*time.Millisecond)
	return app
}

func TestNewApp_LoadsCatalog(t *testing.T) {
	app := newApp(t)

	vs := app.Feature.ViewState()
	require.NotNil(t, vs.Display)
	names, ok := vs.Display.Results.Get()
	require.True(t, ok)
	assert.Equal(t, memory.DefaultNames, names)
}

func TestServe_ServesUntilCanceled(t *testing.T) {
	app := newApp(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cli.Serve(ctx, app, ln) }()

	base := "http://" + ln.Addr().String()
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(base + "/healthz")
		return err == nil
	}, time.Second, 10*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "riveting_mutations_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestRunSearch_PlainSession(t *testing.T) {
	app := newApp(t)

	out := &lockedBuffer{}
	err := cli.RunSearch(context.Background(), app, strings.NewReader("/help\n/quit\n"), out, false)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "/reload")
	}, time.Second, 5*time.Millisecond)
}

func TestSignalContext_CancelClearsSignal(t *testing.T) {
	sc := cli.NewSignalContext(context.Background())
	sc.Cancel()

	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
