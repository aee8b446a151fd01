package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oratiodb/oratio/internal/platform/database/schema"
	"github.com/oratiodb/oratio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Summarize(context context.Context) (*Summary, error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s)
	`,
		schema.RefAuthor.Table,
		schema.RefWork.Table,
		schema.RefCharacter.Table,
		schema.RefCharacterInstance.Table,
		schema.RefSpeech.Table,
		schema.RefSpeechCluster.Table,
		schema.RefSpeechTag.Table,
	)

	summary := &Summary{}
	err := repository.db.QueryRow(context, query).Scan(
		&summary.Authors, &summary.Works, &summary.Characters, &summary.Instances,
		&summary.Speeches, &summary.Clusters, &summary.Tags,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "summarize_stats")
	}
	return summary, nil
}
