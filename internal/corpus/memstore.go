package corpus

import (
	"context"
	"strconv"
	"time"

	"github.com/oratiodb/oratio/internal/core/author"
	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/core/speech"
	"github.com/oratiodb/oratio/internal/core/work"
	"github.com/oratiodb/oratio/pkg/namekey"
)

type roleLink struct {
	Role       speech.Role
	SpeechID   int
	InstanceID int
}

// MemStore keeps the whole catalog in memory. It backs unit tests and
// --dry-run invocations, where validating the corpus matters but nothing
// should touch PostgreSQL. The pipeline is single-threaded, so no
// locking.
type MemStore struct {
	AuthorRecords    map[int]*author.Author
	WorkRecords      map[int]*work.Work
	CharacterRecords map[int]*character.Character
	InstanceRecords  []*character.Instance
	ClusterRecords   map[int]*speech.Cluster
	SpeechRecords    []*speech.Speech
	TagRecords       []*speech.Tag
	RoleLinks        []roleLink

	instanceByKey  map[string]*character.Instance
	nextInstanceID int
	nextSpeechID   int
	nextTagID      int
}

func NewMemStore() *MemStore {
	return &MemStore{
		AuthorRecords:    make(map[int]*author.Author),
		WorkRecords:      make(map[int]*work.Work),
		CharacterRecords: make(map[int]*character.Character),
		ClusterRecords:   make(map[int]*speech.Cluster),
		instanceByKey:    make(map[string]*character.Instance),
		nextInstanceID:   1,
		nextSpeechID:     1,
		nextTagID:        1,
	}
}

func instanceKey(name, narrativeContext string) string {
	return namekey.From(name) + "\x00" + narrativeContext
}

func (store *MemStore) CreateAuthor(_ context.Context, a *author.Author) error {
	a.CreatedAt = time.Now()
	store.AuthorRecords[a.ID] = a
	return nil
}

func (store *MemStore) CreateWork(_ context.Context, w *work.Work) error {
	w.CreatedAt = time.Now()
	store.WorkRecords[w.ID] = w
	return nil
}

func (store *MemStore) CreateCharacter(_ context.Context, c *character.Character) error {
	c.CreatedAt = time.Now()
	store.CharacterRecords[c.ID] = c
	return nil
}

func (store *MemStore) GetOrCreateInstance(_ context.Context, inst *character.Instance) (bool, error) {
	key := instanceKey(inst.Name, inst.Context)
	if existing, ok := store.instanceByKey[key]; ok {
		*inst = *existing
		return false, nil
	}

	inst.ID = store.nextInstanceID
	store.nextInstanceID++
	inst.CreatedAt = time.Now()

	stored := *inst
	store.instanceByKey[key] = &stored
	store.InstanceRecords = append(store.InstanceRecords, &stored)
	return true, nil
}

func (store *MemStore) GetOrCreateCluster(_ context.Context, c *speech.Cluster) (bool, error) {
	if existing, ok := store.ClusterRecords[c.ID]; ok {
		*c = *existing
		return false, nil
	}

	c.CreatedAt = time.Now()
	stored := *c
	store.ClusterRecords[c.ID] = &stored
	return true, nil
}

func (store *MemStore) CreateSpeech(_ context.Context, s *speech.Speech) error {
	s.ID = store.nextSpeechID
	store.nextSpeechID++
	s.CreatedAt = time.Now()
	store.SpeechRecords = append(store.SpeechRecords, s)
	return nil
}

func (store *MemStore) AttachRole(_ context.Context, role speech.Role, speechID, instanceID int) error {
	for _, link := range store.RoleLinks {
		if link.Role == role && link.SpeechID == speechID && link.InstanceID == instanceID {
			return nil
		}
	}
	store.RoleLinks = append(store.RoleLinks, roleLink{Role: role, SpeechID: speechID, InstanceID: instanceID})
	return nil
}

func (store *MemStore) CreateTag(_ context.Context, t *speech.Tag) error {
	t.ID = store.nextTagID
	store.nextTagID++
	t.CreatedAt = time.Now()
	store.TagRecords = append(store.TagRecords, t)
	return nil
}

func (store *MemStore) SetClusterSeq(_ context.Context, id, seq int) error {
	cluster, ok := store.ClusterRecords[id]
	if !ok {
		return &ResolutionError{Kind: "cluster", Ref: strconv.Itoa(id)}
	}
	cluster.Seq = &seq
	return nil
}

// RolesFor returns the instance ids linked to a speech under one role,
// in attachment order.
func (store *MemStore) RolesFor(speechID int, role speech.Role) []int {
	var ids []int
	for _, link := range store.RoleLinks {
		if link.SpeechID == speechID && link.Role == role {
			ids = append(ids, link.InstanceID)
		}
	}
	return ids
}

// TagsFor returns the tags attached to a speech in creation order.
func (store *MemStore) TagsFor(speechID int) []*speech.Tag {
	var tags []*speech.Tag
	for _, tag := range store.TagRecords {
		if tag.SpeechID == speechID {
			tags = append(tags, tag)
		}
	}
	return tags
}

// InstanceByName looks an instance up by display name and context.
func (store *MemStore) InstanceByName(name, narrativeContext string) (*character.Instance, bool) {
	inst, ok := store.instanceByKey[instanceKey(name, narrativeContext)]
	return inst, ok
}
