package character

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

func characterColumns() string {
	c := schema.RefCharacter
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		c.ID, c.Name, c.Being, c.Number, c.Gender, c.WD, c.Manto, c.TT, c.Notes, c.CreatedAt)
}

func scanCharacter(row interface{ Scan(...any) error }) (*Character, error) {
	c := &Character{}
	err := row.Scan(&c.ID, &c.Name, &c.Being, &c.Number, &c.Gender, &c.WD, &c.Manto, &c.TT, &c.Notes, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (repository *PostgresRepository) ListCharacters(context context.Context, f Filter, limit, offset int) ([]*Character, int, error) {
	base := fmt.Sprintf(`FROM %s WHERE 1=1`, schema.RefCharacter.Table)

	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		base += fmt.Sprintf(" AND %s ILIKE $%d", schema.RefCharacter.Name, len(args))
	}
	if f.Being != "" {
		args = append(args, f.Being)
		base += fmt.Sprintf(" AND %s = $%d", schema.RefCharacter.Being, len(args))
	}
	if f.Number != "" {
		args = append(args, f.Number)
		base += fmt.Sprintf(" AND %s = $%d", schema.RefCharacter.Number, len(args))
	}
	if f.Gender != "" {
		args = append(args, f.Gender)
		base += fmt.Sprintf(" AND %s = $%d", schema.RefCharacter.Gender, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_characters")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
		characterColumns(), base, schema.RefCharacter.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_characters")
	}
	defer rows.Close()

	var characters []*Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_character")
		}
		characters = append(characters, c)
	}

	return characters, total, nil
}

func (repository *PostgresRepository) GetCharacter(context context.Context, id int) (*Character, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		characterColumns(), schema.RefCharacter.Table, schema.RefCharacter.ID)

	c, err := scanCharacter(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_character")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCharacter(context context.Context, c *Character) error {
	s := schema.RefCharacter
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s
	`,
		s.Table, s.ID, s.Name, s.Being, s.Number, s.Gender, s.WD, s.Manto, s.TT, s.Notes, s.CreatedAt,
		s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID, c.Name, c.Being, c.Number, c.Gender, c.WD, c.Manto, c.TT, c.Notes,
	).Scan(&c.CreatedAt)
	return dberr.Wrap(err, "create_character")
}

func instanceColumns() string {
	i := schema.RefCharacterInstance
	return fmt.Sprintf("i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, i.%s, c.%s",
		i.ID, i.CharID, i.Name, i.Context, i.Being, i.Number, i.Gender,
		i.Anon, i.Absent, i.Disguise, i.Labels, i.Notes, i.CreatedAt, schema.RefCharacter.Name)
}

func scanInstance(row interface{ Scan(...any) error }) (*Instance, error) {
	inst := &Instance{}
	var charName *string
	err := row.Scan(
		&inst.ID, &inst.CharID, &inst.Name, &inst.Context, &inst.Being, &inst.Number, &inst.Gender,
		&inst.Anon, &inst.Absent, &inst.Disguise, &inst.Labels, &inst.Notes, &inst.CreatedAt, &charName,
	)
	if err != nil {
		return nil, err
	}
	if charName != nil {
		inst.CharName = *charName
	}
	return inst, nil
}

// instanceFrom is the shared FROM clause; the character join is LEFT so
// anonymous instances without a canonical character still list.
func instanceFrom() string {
	return fmt.Sprintf("FROM %s i LEFT JOIN %s c ON c.%s = i.%s",
		schema.RefCharacterInstance.Table, schema.RefCharacter.Table,
		schema.RefCharacter.ID, schema.RefCharacterInstance.CharID)
}

func (repository *PostgresRepository) ListInstances(context context.Context, f InstanceFilter, limit, offset int) ([]*Instance, int, error) {
	base := instanceFrom() + " WHERE 1=1"

	args := []any{}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		base += fmt.Sprintf(" AND i.%s ILIKE $%d", schema.RefCharacterInstance.Name, len(args))
	}
	if f.Context != "" {
		args = append(args, f.Context)
		base += fmt.Sprintf(" AND i.%s = $%d", schema.RefCharacterInstance.Context, len(args))
	}
	if f.CharID != 0 {
		args = append(args, f.CharID)
		base += fmt.Sprintf(" AND i.%s = $%d", schema.RefCharacterInstance.CharID, len(args))
	}
	if f.Anon != nil {
		args = append(args, *f.Anon)
		base += fmt.Sprintf(" AND i.%s = $%d", schema.RefCharacterInstance.Anon, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_instances")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY i.%s, i.%s LIMIT $%d OFFSET $%d",
		instanceColumns(), base, schema.RefCharacterInstance.Context,
		schema.RefCharacterInstance.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_instances")
	}
	defer rows.Close()

	var instances []*Instance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_instance")
		}
		instances = append(instances, inst)
	}

	return instances, total, nil
}

func (repository *PostgresRepository) GetInstance(context context.Context, id int) (*Instance, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE i.%s = $1",
		instanceColumns(), instanceFrom(), schema.RefCharacterInstance.ID)

	inst, err := scanInstance(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_instance")
	}
	return inst, nil
}

func (repository *PostgresRepository) GetOrCreateInstance(context context.Context, inst *Instance) (bool, error) {
	s := schema.RefCharacterInstance

	// Insert-then-select: ON CONFLICT DO NOTHING makes the insert a no-op
	// when the (name, context) pair already exists, and the follow-up
	// select resolves the surviving row either way.
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (%s, %s) DO NOTHING
		RETURNING %s, %s
	`,
		s.Table, s.CharID, s.Name, s.Context, s.Being, s.Number, s.Gender,
		s.Anon, s.Absent, s.Disguise, s.Labels, s.Notes, s.CreatedAt,
		s.Name, s.Context,
		s.ID, s.CreatedAt,
	)

	err := repository.db.QueryRow(context, insert,
		inst.CharID, inst.Name, inst.Context, inst.Being, inst.Number, inst.Gender,
		inst.Anon, inst.Absent, inst.Disguise, inst.Labels, inst.Notes,
	).Scan(&inst.ID, &inst.CreatedAt)
	if err == nil {
		return true, nil
	}

	existing, getErr := repository.getByNameContext(context, inst.Name, inst.Context)
	if getErr != nil {
		return false, dberr.Wrap(err, "get_or_create_instance")
	}
	*inst = *existing
	return false, nil
}

func (repository *PostgresRepository) getByNameContext(context context.Context, name, narrativeContext string) (*Instance, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE i.%s = $1 AND i.%s = $2",
		instanceColumns(), instanceFrom(),
		schema.RefCharacterInstance.Name, schema.RefCharacterInstance.Context)

	inst, err := scanInstance(repository.db.QueryRow(context, query, name, narrativeContext))
	if err != nil {
		return nil, dberr.Wrap(err, "get_instance_by_name")
	}
	return inst, nil
}
