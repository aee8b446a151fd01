package corpus

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oratiodb/oratio/internal/core/author"
	"github.com/oratiodb/oratio/internal/core/character"
	"github.com/oratiodb/oratio/internal/core/speech"
	"github.com/oratiodb/oratio/internal/core/work"
)

// Store is the persistence surface the pipeline writes through. The
// PostgreSQL implementation composes the catalog repositories; the
// in-memory one backs tests and dry runs.
type Store interface {
	CreateAuthor(context context.Context, a *author.Author) error
	CreateWork(context context.Context, w *work.Work) error
	CreateCharacter(context context.Context, c *character.Character) error

	GetOrCreateInstance(context context.Context, inst *character.Instance) (bool, error)
	GetOrCreateCluster(context context.Context, c *speech.Cluster) (bool, error)
	CreateSpeech(context context.Context, s *speech.Speech) error
	AttachRole(context context.Context, role speech.Role, speechID, instanceID int) error
	CreateTag(context context.Context, t *speech.Tag) error
	SetClusterSeq(context context.Context, id, seq int) error
}

// PostgresStore delegates every write to the corresponding catalog
// repository.
type PostgresStore struct {
	authors    *author.PostgresRepository
	works      *work.PostgresRepository
	characters *character.PostgresRepository
	speeches   *speech.PostgresRepository
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		authors:    author.NewPostgresRepository(db),
		works:      work.NewPostgresRepository(db),
		characters: character.NewPostgresRepository(db),
		speeches:   speech.NewPostgresRepository(db),
	}
}

func (store *PostgresStore) CreateAuthor(context context.Context, a *author.Author) error {
	return store.authors.CreateAuthor(context, a)
}

func (store *PostgresStore) CreateWork(context context.Context, w *work.Work) error {
	return store.works.CreateWork(context, w)
}

func (store *PostgresStore) CreateCharacter(context context.Context, c *character.Character) error {
	return store.characters.CreateCharacter(context, c)
}

func (store *PostgresStore) GetOrCreateInstance(context context.Context, inst *character.Instance) (bool, error) {
	return store.characters.GetOrCreateInstance(context, inst)
}

func (store *PostgresStore) GetOrCreateCluster(context context.Context, c *speech.Cluster) (bool, error) {
	return store.speeches.GetOrCreateCluster(context, c)
}

func (store *PostgresStore) CreateSpeech(context context.Context, s *speech.Speech) error {
	return store.speeches.CreateSpeech(context, s)
}

func (store *PostgresStore) AttachRole(context context.Context, role speech.Role, speechID, instanceID int) error {
	return store.speeches.AttachRole(context, role, speechID, instanceID)
}

func (store *PostgresStore) CreateTag(context context.Context, t *speech.Tag) error {
	return store.speeches.CreateTag(context, t)
}

func (store *PostgresStore) SetClusterSeq(context context.Context, id, seq int) error {
	return store.speeches.SetClusterSeq(context, id, seq)
}
