package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogContract runs a suite of tests to verify that a Catalog
// implementation adheres to the defined interface contract. want is the
// content the catalog was seeded with, in order.
func RunCatalogContract(t *testing.T, catalog Catalog, want []string) {
	t.Helper()

	t.Run("Names", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		names, err := catalog.Names(ctx)
		require.NoError(t, err, "Names should not return error")
		assert.Equal(t, want, names)
	})

	t.Run("Names Is Stable", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		first, err := catalog.Names(ctx)
		require.NoError(t, err)
		second, err := catalog.Names(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Names Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := catalog.Names(ctx)
		assert.ErrorIs(t, err, context.Canceled, "a canceled context must surface as context.Canceled")
	})
}
