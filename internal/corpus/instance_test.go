package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestResolver(t *testing.T, store *MemStore, seeds map[string]*InstanceSeed) *Resolver {
	t.Helper()
	ing := newTestIngestor(store)

	rows := []Row{
		makeRow(2, map[string]string{"name": "Achilles", "being": "mortal", "number": "individual", "gender": "male"}),
		makeRow(3, map[string]string{"name": "Pyrrha", "same_as": "Achilles"}),
		makeRow(4, map[string]string{"name": "a Trojan herald", "anon": "x", "gender": "male", "tag_messenger": "x"}),
	}

	registry, err := ing.buildRegistry(context.Background(), rows)
	require.NoError(t, err)

	return NewResolver(registry, store, seeds)
}

/*
TestResolver_AliasKeepsDisplayName resolves a pseudonym: the instance
keeps "Pyrrha" as its display name while pointing at the Achilles
character.
*/
func TestResolver_AliasKeepsDisplayName(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	inst, err := resolver.Resolve("Pyrrha", "Homer Iliad")
	require.NoError(t, err)

	assert.Equal(t, "Pyrrha", inst.Name)
	require.NotNil(t, inst.CharID)

	achilles := store.CharacterRecords[*inst.CharID]
	require.NotNil(t, achilles)
	assert.Equal(t, "Achilles", achilles.Name)

	require.NotNil(t, inst.Disguise)
	assert.Equal(t, "Pyrrha", *inst.Disguise)
}

func TestResolver_CopiesCanonicalAttributes(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	inst, err := resolver.Resolve("Achilles", "Homer Iliad")
	require.NoError(t, err)

	assert.Equal(t, "mortal", inst.Being)
	assert.Equal(t, "individual", inst.Number)
	assert.Equal(t, "male", inst.Gender)
	assert.False(t, inst.Anon)
}

func TestResolver_AnonTemplate(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	inst, err := resolver.Resolve("a Trojan herald", "Homer Iliad")
	require.NoError(t, err)

	assert.True(t, inst.Anon)
	assert.Nil(t, inst.CharID)
	assert.Equal(t, "male", inst.Gender)
	assert.Equal(t, []string{"messenger"}, inst.Labels)
}

func TestResolver_UnknownName(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	_, err := resolver.Resolve("Nobody", "Homer Iliad")
	require.Error(t, err)

	var resolutionErr *ResolutionError
	require.ErrorAs(t, err, &resolutionErr)
	assert.Equal(t, "character", resolutionErr.Kind)
	assert.Equal(t, "Nobody", resolutionErr.Ref)
}

/*
TestResolver_PersistIdempotent persists the same (name, context) pair
twice and expects one stored instance with a stable id.
*/
func TestResolver_PersistIdempotent(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	first, err := resolver.Resolve("a Trojan herald", "Homer Iliad")
	require.NoError(t, err)
	persisted, created, err := resolver.Persist(context.Background(), first)
	require.NoError(t, err)
	assert.True(t, created)

	second, err := resolver.Resolve("a Trojan herald", "Homer Iliad")
	require.NoError(t, err)
	repersisted, created, err := resolver.Persist(context.Background(), second)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, persisted.ID, repersisted.ID)
	assert.Len(t, store.InstanceRecords, 1)
}

func TestResolver_ContextsAreDistinct(t *testing.T) {
	store := NewMemStore()
	resolver := buildTestResolver(t, store, nil)

	iliad, err := resolver.Resolve("Achilles", "Homer Iliad")
	require.NoError(t, err)
	_, _, err = resolver.Persist(context.Background(), iliad)
	require.NoError(t, err)

	odyssey, err := resolver.Resolve("Achilles", "Homer Odyssey")
	require.NoError(t, err)
	_, _, err = resolver.Persist(context.Background(), odyssey)
	require.NoError(t, err)

	assert.Len(t, store.InstanceRecords, 2)
}

/*
TestResolver_SeedOverrides overlays instance-file attributes onto a
resolved instance: a disguise and a gender override.
*/
func TestResolver_SeedOverrides(t *testing.T) {
	store := NewMemStore()
	seeds := map[string]*InstanceSeed{
		"Beggar": {Name: "Beggar", CharName: "Achilles", Gender: "unknown", Disguise: "an old beggar", Anon: true},
	}
	resolver := buildTestResolver(t, store, seeds)

	inst, err := resolver.Resolve("Beggar", "Homer Odyssey")
	require.NoError(t, err)

	require.NotNil(t, inst.CharID)
	assert.Equal(t, "unknown", inst.Gender)
	assert.True(t, inst.Anon)
	require.NotNil(t, inst.Disguise)
	assert.Equal(t, "an old beggar", *inst.Disguise)
}
