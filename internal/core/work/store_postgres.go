package work

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

// selectColumns is the column list for read queries, joined against
// epic.author for the citation name.
func selectColumns() string {
	w := schema.RefWork
	return fmt.Sprintf("w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, a.%s",
		w.ID, w.AuthorID, w.Title, w.Lang, w.WD, w.URN, w.CreatedAt, schema.RefAuthor.Name)
}

func (repository *PostgresRepository) ListWorks(context context.Context, f Filter, limit, offset int) ([]*Work, int, error) {
	base := fmt.Sprintf(`FROM %s w JOIN %s a ON a.%s = w.%s WHERE 1=1`,
		schema.RefWork.Table, schema.RefAuthor.Table, schema.RefAuthor.ID, schema.RefWork.AuthorID)

	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		base += fmt.Sprintf(" AND w.%s ILIKE $%d", schema.RefWork.Title, len(args))
	}
	if f.Lang != "" {
		args = append(args, f.Lang)
		base += fmt.Sprintf(" AND w.%s = $%d", schema.RefWork.Lang, len(args))
	}
	if f.AuthorID != 0 {
		args = append(args, f.AuthorID)
		base += fmt.Sprintf(" AND w.%s = $%d", schema.RefWork.AuthorID, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_works")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY a.%s, w.%s LIMIT $%d OFFSET $%d",
		selectColumns(), base, schema.RefAuthor.Name, schema.RefWork.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_works")
	}
	defer rows.Close()

	var works []*Work
	for rows.Next() {
		w := &Work{}
		if err := rows.Scan(&w.ID, &w.AuthorID, &w.Title, &w.Lang, &w.WD, &w.URN, &w.CreatedAt, &w.AuthorName); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_work")
		}
		works = append(works, w)
	}

	return works, total, nil
}

func (repository *PostgresRepository) GetWork(context context.Context, id int) (*Work, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s w JOIN %s a ON a.%s = w.%s WHERE w.%s = $1`,
		selectColumns(), schema.RefWork.Table, schema.RefAuthor.Table,
		schema.RefAuthor.ID, schema.RefWork.AuthorID, schema.RefWork.ID)

	w := &Work{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&w.ID, &w.AuthorID, &w.Title, &w.Lang, &w.WD, &w.URN, &w.CreatedAt, &w.AuthorName,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_work")
	}
	return w, nil
}

func (repository *PostgresRepository) CreateWork(context context.Context, w *Work) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		schema.RefWork.Table, schema.RefWork.ID, schema.RefWork.AuthorID,
		schema.RefWork.Title, schema.RefWork.Lang, schema.RefWork.WD,
		schema.RefWork.URN, schema.RefWork.CreatedAt,
		schema.RefWork.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, w.ID, w.AuthorID, w.Title, w.Lang, w.WD, w.URN).Scan(&w.CreatedAt)
	return dberr.Wrap(err, "create_work")
}
