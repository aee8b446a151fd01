package corpus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngestor(store Store) *Ingestor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIngestor(store, logger, Options{Dir: "testdata"})
}

func makeRow(line int, cells map[string]string) Row {
	return Row{File: "test.tsv", Line: line, cells: cells}
}

/*
TestBuildRegistry_Partitions checks the three-way partition: canonical
rows persist, alias and anonymous rows stay load-time only.
*/
func TestBuildRegistry_Partitions(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Achilles", "being": "mortal", "number": "individual", "gender": "male"}),
		makeRow(3, map[string]string{"name": "Pyrrha", "same_as": "Achilles"}),
		makeRow(4, map[string]string{"name": "a Trojan herald", "anon": "x", "gender": "male"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	// Only the canonical character persists.
	require.Len(t, store.CharacterRecords, 1)
	assert.Equal(t, 1, ing.report.CreatedCount("characters"))

	resolution, ok := registry.Lookup("Achilles")
	require.True(t, ok)
	require.NotNil(t, resolution.Char)
	assert.Equal(t, "Achilles", resolution.Char.Name)
	assert.False(t, resolution.ViaAlias)

	resolution, ok = registry.Lookup("Pyrrha")
	require.True(t, ok)
	require.NotNil(t, resolution.Char)
	assert.Equal(t, "Achilles", resolution.Char.Name)
	assert.True(t, resolution.ViaAlias)

	resolution, ok = registry.Lookup("a Trojan herald")
	require.True(t, ok)
	assert.Nil(t, resolution.Char)
	require.NotNil(t, resolution.Template)
	assert.Equal(t, "male", resolution.Template.Gender)
}

/*
TestBuildRegistry_PermissiveDefaults verifies that unvalidated attribute
cells fall back instead of failing the row.
*/
func TestBuildRegistry_PermissiveDefaults(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Chryses", "being": "???", "number": "", "gender": "nope"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	resolution, ok := registry.Lookup("Chryses")
	require.True(t, ok)
	assert.Equal(t, "mortal", resolution.Char.Being)
	assert.Equal(t, "individual", resolution.Char.Number)
	assert.Equal(t, "unknown", resolution.Char.Gender)
}

func TestBuildRegistry_SelfReserved(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "self"}),
		makeRow(3, map[string]string{"name": "Self"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	_, ok := registry.Lookup("self")
	assert.False(t, ok)
	assert.Empty(t, store.CharacterRecords)
	assert.Equal(t, 2, ing.report.Skipped())
}

/*
TestBuildRegistry_DanglingAlias drops an alias whose same_as target never
loaded; lookups for it then fail, traceably, downstream.
*/
func TestBuildRegistry_DanglingAlias(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Pyrrha", "same_as": "Nobody"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	_, ok := registry.Lookup("Pyrrha")
	assert.False(t, ok)
}

func TestBuildRegistry_CollisionLastWriterWins(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Iris", "gender": "female"}),
		makeRow(3, map[string]string{"name": "Iris", "gender": "unknown"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	resolution, ok := registry.Lookup("Iris")
	require.True(t, ok)
	assert.Equal(t, "unknown", resolution.Char.Gender)
}

/*
TestBuildRegistry_AliasTransitivity checks that resolving an alias and
resolving its target directly yield the same character record.
*/
func TestBuildRegistry_AliasTransitivity(t *testing.T) {
	store := NewMemStore()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Athena", "being": "divine", "gender": "female"}),
		makeRow(3, map[string]string{"name": "Mentor", "same_as": "Athena"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	direct, ok := registry.Lookup("Athena")
	require.True(t, ok)
	viaAlias, ok := registry.Lookup("Mentor")
	require.True(t, ok)

	assert.Same(t, direct.Char, viaAlias.Char)
}
