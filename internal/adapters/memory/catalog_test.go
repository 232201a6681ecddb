package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/riveting/internal/adapters/memory"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCatalog_Contract(t *testing.T) {
	ports.RunCatalogContract(t, memory.New(nil), memory.DefaultNames)
}

func TestMemoryCatalog_DelayedContract(t *testing.T) {
	ports.RunCatalogContract(t, memory.New([]string{"a", "b"}, memory.WithDelay(5*time.Millisecond)), []string{"a", "b"})
}

func TestMemoryCatalog_DelayHonorsContext(t *testing.T) {
	c := memory.New(nil, memory.WithDelay(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.Names(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryCatalog_ReturnsCopies(t *testing.T) {
	c := memory.New([]string{"a"})
	names, err := c.Names(context.Background())
	require.NoError(t, err)
	names[0] = "mutated"

	again, err := c.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again)
}

func TestMemoryCatalog_Fail(t *testing.T) {
	boom := errors.New("boom")
	c := memory.New(nil, memory.WithError(boom))

	_, err := c.Names(context.Background())
	assert.ErrorIs(t, err, boom)

	c.Fail(nil)
	c.Set([]string{"x"})
	names, err := c.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names)
}
