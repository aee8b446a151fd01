package corpus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oratiodb/oratio/internal/core/speech"
)

/*
TestSequencer_FirstAppearanceOrder numbers clusters in the order they
were first observed, ignoring repeats.
*/
func TestSequencer_FirstAppearanceOrder(t *testing.T) {
	sequencer := NewSequencer()

	sequencer.Observe(5)
	sequencer.Observe(2)
	sequencer.Observe(5)
	sequencer.Observe(9)
	sequencer.Observe(2)

	ordinal, ok := sequencer.Ordinal(5)
	require.True(t, ok)
	assert.Equal(t, 0, ordinal)

	ordinal, ok = sequencer.Ordinal(2)
	require.True(t, ok)
	assert.Equal(t, 1, ordinal)

	ordinal, ok = sequencer.Ordinal(9)
	require.True(t, ok)
	assert.Equal(t, 2, ordinal)

	_, ok = sequencer.Ordinal(7)
	assert.False(t, ok)
}

func TestSequencer_Assign(t *testing.T) {
	store := NewMemStore()
	for _, id := range []int{5, 2, 9} {
		_, err := store.GetOrCreateCluster(context.Background(), &speech.Cluster{ID: id, Level: 1})
		require.NoError(t, err)
	}

	sequencer := NewSequencer()
	sequencer.Observe(5)
	sequencer.Observe(2)
	sequencer.Observe(9)

	require.NoError(t, sequencer.Assign(context.Background(), store))

	require.NotNil(t, store.ClusterRecords[5].Seq)
	assert.Equal(t, 0, *store.ClusterRecords[5].Seq)
	assert.Equal(t, 1, *store.ClusterRecords[2].Seq)
	assert.Equal(t, 2, *store.ClusterRecords[9].Seq)
}
