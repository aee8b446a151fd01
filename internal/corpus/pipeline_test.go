package corpus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oratiodb/oratio/internal/core/speech"
)

func writeTSV(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// corpusFixture writes a small but complete corpus: two authors, a work
// with a dangling author reference, a character roster with an alias and
// an anonymous template, and two speeches files.
func corpusFixture(t *testing.T, dir string) {
	t.Helper()

	writeTSV(t, dir, "authors.tsv",
		"id\tname\twd\turn",
		"1\tHomer\tQ6691\turn:cts:greekLit:tlg0012",
		"2\tVergil\tQ1398\t",
	)
	writeTSV(t, dir, "works.tsv",
		"id\tauthor\ttitle\tlang\twd\turn",
		"1\t1\tIliad\tgreek\t\t",
		"2\t9999\tGhost Epic\tgreek\t\t",
		"3\t1\tOdyssey\tgreek\t\t",
	)
	writeTSV(t, dir, "characters.tsv",
		"name\tbeing\tnumber\tgender\tanon\tsame_as\tnotes",
		"Achilles\tmortal\tindividual\tmale\t\t\t",
		"Hector\tmortal\tindividual\tmale\t\t\t",
		"Pyrrha\t\t\t\t\tAchilles\t",
		"a Trojan herald\tmortal\tindividual\tmale\tx\t\t",
	)
	writeTSV(t, dir, "speeches_001.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type",
		"1\t5\t1\tdialogue\t1\t1\t1\t10\tPyrrha\tHector\t\t\t1\tlam;req?",
		"1\t7\t1\tsoliloquy\t1\t20\t1\t30\tHector\tself\t\t\t1\t",
		"1\t8\t1\tdialogue\t1\t40\t1\t45\tAchilles\tHector\t\t\tabc\t",
		"1\t5\t2\tdialogue\t1\t11\t1\t19\tAchilles and Hector\ta Trojan herald\t\tunspecified\t1\t",
	)
	writeTSV(t, dir, "speeches_002.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type",
		"3\t2\t1\tmonologue\t11\t90\t11\t99\tAchilles\tHector\t\t\t1\t",
	)
}

func speechByCluster(store *MemStore, clusterID, part int) *speech.Speech {
	for _, sp := range store.SpeechRecords {
		if sp.ClusterID == clusterID && sp.Part == part {
			return sp
		}
	}
	return nil
}

/*
TestIngestor_Run_EndToEnd drives the whole pipeline over a fixture
directory against the in-memory store.
*/
func TestIngestor_Run_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	report, err := ing.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.CreatedCount("authors"))
	assert.Equal(t, 2, report.CreatedCount("works"), "the dangling-author work is skipped")
	assert.Equal(t, 2, report.CreatedCount("characters"), "alias and anonymous rows do not persist")
	assert.Equal(t, 4, report.CreatedCount("speeches"))
	assert.Equal(t, 3, report.CreatedCount("clusters"))
	assert.Equal(t, 2, report.CreatedCount("tags"))

	// One work row and one speech row were rejected.
	require.Equal(t, 2, report.Skipped())
}

func TestIngestor_Run_AliasSpeaker(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	// The disguised speaker keeps its display name but points at the
	// canonical character.
	inst, ok := store.InstanceByName("Pyrrha", "Homer Iliad")
	require.True(t, ok)
	require.NotNil(t, inst.CharID)
	assert.Equal(t, "Achilles", store.CharacterRecords[*inst.CharID].Name)
}

func TestIngestor_Run_SelfAddressee(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	soliloquy := speechByCluster(store, 7, 1)
	require.NotNil(t, soliloquy)

	speakers := store.RolesFor(soliloquy.ID, speech.RoleSpeaker)
	addressees := store.RolesFor(soliloquy.ID, speech.RoleAddressee)
	require.Len(t, speakers, 1)
	require.Len(t, addressees, 1)
	assert.Equal(t, speakers[0], addressees[0])
}

func TestIngestor_Run_RejectedRowLeavesNoCluster(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	report, err := ing.Run(context.Background())
	require.NoError(t, err)

	// The row with embedded_level "abc" was the only member of cluster 8:
	// no speech, no orphaned cluster.
	assert.Nil(t, speechByCluster(store, 8, 1))
	_, exists := store.ClusterRecords[8]
	assert.False(t, exists)

	var found bool
	for _, skip := range report.Skips() {
		for _, reason := range skip.Reasons {
			if strings.Contains(reason, "embedded_level") {
				found = true
			}
		}
	}
	assert.True(t, found, "diagnostic names the failing field")
}

func TestIngestor_Run_ClusterSequenceFirstAppearance(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	// Clusters appear in source order 5, 7, 2 (cluster 8's only row was
	// rejected). Cluster 5's second speech at a later line does not move
	// its ordinal.
	require.NotNil(t, store.ClusterRecords[5].Seq)
	assert.Equal(t, 0, *store.ClusterRecords[5].Seq)
	assert.Equal(t, 1, *store.ClusterRecords[7].Seq)
	assert.Equal(t, 2, *store.ClusterRecords[2].Seq)
}

func TestIngestor_Run_MultiSpeakerSplit(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	sp := speechByCluster(store, 5, 2)
	require.NotNil(t, sp)
	assert.Len(t, store.RolesFor(sp.ID, speech.RoleSpeaker), 2)
	// "unspecified" bystanders record nothing.
	assert.Empty(t, store.RolesFor(sp.ID, speech.RoleBystander))
}

func TestIngestor_Run_Tags(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	sp := speechByCluster(store, 5, 1)
	require.NotNil(t, sp)

	tags := store.TagsFor(sp.ID)
	require.Len(t, tags, 2)
	assert.Equal(t, "lam", tags[0].Type)
	assert.False(t, tags[0].Doubt)
	assert.Equal(t, "req", tags[1].Type)
	assert.True(t, tags[1].Doubt)
}

func TestIngestor_Run_MissingRequiredFile(t *testing.T) {
	dir := t.TempDir()
	writeTSV(t, dir, "authors.tsv", "id\tname", "1\tHomer")

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.ErrorIs(t, err, ErrMissingInput)
}

func TestIngestor_DuplicateClusterPart(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_003.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type",
		"1\t5\t1\tdialogue\t2\t1\t2\t5\tHector\tAchilles\t\t\t1\t",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	report, err := ing.Run(context.Background())
	require.NoError(t, err)

	// Part 1 of cluster 5 is already taken by speeches_001.
	var found bool
	for _, skip := range report.Skips() {
		for _, reason := range skip.Reasons {
			if strings.Contains(reason, "cluster_part") {
				found = true
			}
		}
	}
	assert.True(t, found)
	assert.Nil(t, speechByCluster(store, 5, 1).Notes) // part 1 still the original
}

func TestIngestor_UnknownSpeakerRejectsRow(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_004.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type",
		"1\t50\t1\tdialogue\t3\t1\t3\t5\tNobody\tAchilles\t\t\t1\t",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	_, exists := store.ClusterRecords[50]
	assert.False(t, exists)
}

func TestIngestor_AlternateReadingSkipped(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_006.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type\talt",
		"1\t70\t1\tdialogue\t4\t1\t4\t5\tHector\tAchilles\t\t\t1\t\tx",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	assert.Nil(t, speechByCluster(store, 70, 1))
	_, exists := store.ClusterRecords[70]
	assert.False(t, exists)
}

func TestIngestor_PartialLineFlags(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_007.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type\ta\tb",
		"1\t80\t1\tdialogue\t5\t1\t5\t5\tHector\tAchilles\t\t\t1\t\tyes\tb",
		"1\t81\t1\tdialogue\t5\t6\t5\t9\tAchilles\tHector\t\t\t1\t\tmaybe?\t",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	marked := speechByCluster(store, 80, 1)
	require.NotNil(t, marked)
	assert.True(t, marked.PartialA, `"yes" affirms the a column`)
	assert.True(t, marked.PartialB, `repeating the column letter affirms the b column`)

	unmarked := speechByCluster(store, 81, 1)
	require.NotNil(t, unmarked)
	assert.False(t, unmarked.PartialA, "a hedged marker does not affirm")
	assert.False(t, unmarked.PartialB)
}

func TestIngestor_ExplicitSeqColumn(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_008.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type\tseq",
		"1\t90\t1\tdialogue\t6\t1\t6\t5\tHector\tAchilles\t\t\t1\t\t40",
		"1\t91\t1\tdialogue\t6\t6\t6\t9\tAchilles\tHector\t\t\t1\t\t",
		"1\t92\t1\tdialogue\t6\t10\t6\t12\tHector\tAchilles\t\t\t1\t\txyz",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	report, err := ing.Run(context.Background())
	require.NoError(t, err)

	pinned := speechByCluster(store, 90, 1)
	require.NotNil(t, pinned)
	assert.Equal(t, 40, pinned.Seq)

	// An unpinned row continues from the pinned value.
	follower := speechByCluster(store, 91, 1)
	require.NotNil(t, follower)
	assert.Equal(t, 41, follower.Seq)

	// A malformed seq rejects the row.
	assert.Nil(t, speechByCluster(store, 92, 1))
	_, exists := store.ClusterRecords[92]
	assert.False(t, exists)

	var found bool
	for _, skip := range report.Skips() {
		for _, reason := range skip.Reasons {
			if strings.Contains(reason, "seq") {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestIngestor_AbsentAddressee(t *testing.T) {
	dir := t.TempDir()
	corpusFixture(t, dir)
	writeTSV(t, dir, "speeches_005.tsv",
		"work_id\tcluster_id\tcluster_part\ttype\tfrom_book\tfrom_line\tto_book\tto_line\tspeaker\taddressee\tabsent_addressee\tbystanders\tembedded_level\tshort_type",
		"3\t60\t1\tmonologue\t12\t1\t12\t9\tHector\t\tPyrrha\t\t1\t",
	)

	store := NewMemStore()
	ing := newTestIngestor(store)
	ing.opts.Dir = dir

	_, err := ing.Run(context.Background())
	require.NoError(t, err)

	sp := speechByCluster(store, 60, 1)
	require.NotNil(t, sp)

	addressees := store.RolesFor(sp.ID, speech.RoleAddressee)
	require.Len(t, addressees, 1)

	// First use in this context wins, so the absent flag sticks.
	inst, ok := store.InstanceByName("Pyrrha", "Homer Odyssey")
	require.True(t, ok)
	assert.True(t, inst.Absent)
}
