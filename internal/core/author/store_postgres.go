package author

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

func (repository *PostgresRepository) ListAuthors(context context.Context, f Filter, limit, offset int) ([]*Author, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.RefAuthor.ID, schema.RefAuthor.Name, schema.RefAuthor.WD,
		schema.RefAuthor.URN, schema.RefAuthor.CreatedAt,
		schema.RefAuthor.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.RefAuthor.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` WHERE name ILIKE $1`
		countQuery += ` WHERE name ILIKE $1`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", schema.RefAuthor.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_authors")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.WD, &a.URN, &a.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, total, nil
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefAuthor.ID, schema.RefAuthor.Name, schema.RefAuthor.WD,
		schema.RefAuthor.URN, schema.RefAuthor.CreatedAt,
		schema.RefAuthor.Table, schema.RefAuthor.ID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.WD, &a.URN, &a.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}
	return a, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.RefAuthor.Table, schema.RefAuthor.ID, schema.RefAuthor.Name,
		schema.RefAuthor.WD, schema.RefAuthor.URN, schema.RefAuthor.CreatedAt,
		schema.RefAuthor.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Name, a.WD, a.URN).Scan(&a.CreatedAt)
	return dberr.Wrap(err, "create_author")
}
