package loam_test

import (
	"context"
	"testing"

	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/riveting/internal/adapters/loam"
	"github.com/aretw0/riveting/internal/testutils"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loamlib "github.com/aretw0/loam"
)

func TestLoamCatalog_Contract(t *testing.T) {
	dir := testutils.WriteCatalogDir(t, map[string]string{
		"01-captain.md": "---\nname: Captain America\n---\nShield.",
		"02-iron.md":    "---\nname: Iron Man\n---\nSuit.",
		"03-widow.md":   "---\nname: Black Widow\n---\n",
	})

	c, err := loam.Open(dir)
	require.NoError(t, err)

	ports.RunCatalogContract(t, c, []string{"Captain America", "Iron Man", "Black Widow"})
}

func TestLoamCatalog_NameFallsBackToID(t *testing.T) {
	dir := testutils.WriteCatalogDir(t, map[string]string{
		"a-named.md": "---\nname: Thor\n---\n",
		"b-Hulk.md":  "---\ntitle: ignored\n---\nNo name here.",
	})

	c, err := loam.Open(dir)
	require.NoError(t, err)

	names, err := c.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Thor", "b-Hulk"}, names)
}

func TestLoamCatalog_SavedDocuments(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t, loamlib.WithVersioning(false))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, core.Document{ID: "02-hawkeye.md", Content: "---\nname: Hawkeye\n---\nArrows."}))
	require.NoError(t, repo.Save(ctx, core.Document{ID: "01-hulk.md", Content: "---\nname: Hulk\n---\nSmash."}))

	c := loam.New(loamlib.NewTypedRepository[loam.Entry](repo))
	names, err := c.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hulk", "Hawkeye"}, names)
}
