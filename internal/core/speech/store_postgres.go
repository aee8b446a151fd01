package speech

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oratiodb/oratio/internal/platform/apperr"
	"github.com/oratiodb/oratio/internal/platform/database/schema"
	"github.com/oratiodb/oratio/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func roleTable(role Role) schema.RefSpeechRoleTable {
	switch role {
	case RoleAddressee:
		return schema.RefSpeechAddressee
	case RoleBystander:
		return schema.RefSpeechBystander
	default:
		return schema.RefSpeechSpeaker
	}
}

func speechColumns() string {
	s := schema.RefSpeech
	return fmt.Sprintf("s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s",
		s.ID, s.ClusterID, s.WorkID, s.Type, s.Seq, s.Part, s.FirstLine, s.LastLine,
		s.Level, s.PartialA, s.PartialB, s.SpeakerNotes, s.AddresseeNotes, s.Notes, s.CreatedAt)
}

func scanSpeech(row interface{ Scan(...any) error }) (*Speech, error) {
	s := &Speech{}
	err := row.Scan(
		&s.ID, &s.ClusterID, &s.WorkID, &s.Type, &s.Seq, &s.Part, &s.FirstLine, &s.LastLine,
		&s.Level, &s.PartialA, &s.PartialB, &s.SpeakerNotes, &s.AddresseeNotes, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) ListSpeeches(context context.Context, f Filter, limit, offset int) ([]*Speech, int, error) {
	s := schema.RefSpeech
	base := fmt.Sprintf("FROM %s s WHERE 1=1", s.Table)

	args := []any{}

	if f.WorkID != 0 {
		args = append(args, f.WorkID)
		base += fmt.Sprintf(" AND s.%s = $%d", s.WorkID, len(args))
	}
	if f.ClusterID != 0 {
		args = append(args, f.ClusterID)
		base += fmt.Sprintf(" AND s.%s = $%d", s.ClusterID, len(args))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		base += fmt.Sprintf(" AND s.%s = $%d", s.Type, len(args))
	}
	if f.SpeakerID != 0 {
		args = append(args, f.SpeakerID)
		r := schema.RefSpeechSpeaker
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s r WHERE r.%s = s.%s AND r.%s = $%d)",
			r.Table, r.SpeechID, s.ID, r.InstanceID, len(args))
	}
	if f.AddresseeID != 0 {
		args = append(args, f.AddresseeID)
		r := schema.RefSpeechAddressee
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s r WHERE r.%s = s.%s AND r.%s = $%d)",
			r.Table, r.SpeechID, s.ID, r.InstanceID, len(args))
	}
	if f.TagType != "" {
		args = append(args, f.TagType)
		t := schema.RefSpeechTag
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s t WHERE t.%s = s.%s AND t.%s = $%d)",
			t.Table, t.SpeechID, s.ID, t.Type, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_speeches")
	}

	query := fmt.Sprintf("SELECT %s %s ORDER BY s.%s LIMIT $%d OFFSET $%d",
		speechColumns(), base, s.Seq, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_speeches")
	}
	defer rows.Close()

	var speeches []*Speech
	for rows.Next() {
		sp, err := scanSpeech(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_speech")
		}
		speeches = append(speeches, sp)
	}

	if err := repository.loadAssociations(context, speeches); err != nil {
		return nil, 0, err
	}

	return speeches, total, nil
}

func (repository *PostgresRepository) GetSpeech(context context.Context, id int) (*Speech, error) {
	query := fmt.Sprintf("SELECT %s FROM %s s WHERE s.%s = $1",
		speechColumns(), schema.RefSpeech.Table, schema.RefSpeech.ID)

	sp, err := scanSpeech(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_speech")
	}

	if err := repository.loadAssociations(context, []*Speech{sp}); err != nil {
		return nil, err
	}
	return sp, nil
}

// loadAssociations fills roles and tags for a page of speeches with one
// query per role table plus one for tags.
func (repository *PostgresRepository) loadAssociations(context context.Context, speeches []*Speech) error {
	if len(speeches) == 0 {
		return nil
	}

	ids := make([]int, len(speeches))
	byID := make(map[int]*Speech, len(speeches))
	for i, sp := range speeches {
		ids[i] = sp.ID
		byID[sp.ID] = sp
	}

	assign := map[Role]func(*Speech, RoleRef){
		RoleSpeaker:   func(sp *Speech, ref RoleRef) { sp.Speakers = append(sp.Speakers, ref) },
		RoleAddressee: func(sp *Speech, ref RoleRef) { sp.Addressees = append(sp.Addressees, ref) },
		RoleBystander: func(sp *Speech, ref RoleRef) { sp.Bystanders = append(sp.Bystanders, ref) },
	}

	for _, role := range []Role{RoleSpeaker, RoleAddressee, RoleBystander} {
		r := roleTable(role)
		inst := schema.RefCharacterInstance
		query := fmt.Sprintf(`
			SELECT r.%s, r.%s, i.%s
			FROM %s r JOIN %s i ON i.%s = r.%s
			WHERE r.%s = ANY($1)
			ORDER BY r.%s, i.%s
		`,
			r.SpeechID, r.InstanceID, inst.Name,
			r.Table, inst.Table, inst.ID, r.InstanceID,
			r.SpeechID,
			r.SpeechID, inst.Name,
		)

		rows, err := repository.db.Query(context, query, ids)
		if err != nil {
			return dberr.Wrap(err, "load_speech_roles")
		}

		for rows.Next() {
			var speechID int
			var ref RoleRef
			if err := rows.Scan(&speechID, &ref.InstanceID, &ref.Name); err != nil {
				rows.Close()
				return dberr.Wrap(err, "scan_speech_role")
			}
			if sp, ok := byID[speechID]; ok {
				assign[role](sp, ref)
			}
		}
		rows.Close()
	}

	t := schema.RefSpeechTag
	tagQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s
	`,
		t.ID, t.SpeechID, t.Type, t.Doubt, t.Notes, t.CreatedAt,
		t.Table,
		t.SpeechID,
		t.SpeechID, t.ID,
	)

	rows, err := repository.db.Query(context, tagQuery, ids)
	if err != nil {
		return dberr.Wrap(err, "load_speech_tags")
	}
	defer rows.Close()

	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.SpeechID, &tag.Type, &tag.Doubt, &tag.Notes, &tag.CreatedAt); err != nil {
			return dberr.Wrap(err, "scan_speech_tag")
		}
		if sp, ok := byID[tag.SpeechID]; ok {
			sp.Tags = append(sp.Tags, tag)
		}
	}

	return nil
}

func (repository *PostgresRepository) ListClusters(context context.Context, limit, offset int) ([]*Cluster, int, error) {
	c := schema.RefSpeechCluster

	var total int
	if err := repository.db.QueryRow(context, fmt.Sprintf("SELECT count(*) FROM %s", c.Table)).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_clusters")
	}

	// NULLS LAST keeps unsequenced clusters out of the way.
	query := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s ORDER BY %s NULLS LAST, %s LIMIT $1 OFFSET $2",
		c.ID, c.Seq, c.Level, c.CreatedAt, c.Table, c.Seq, c.ID)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_clusters")
	}
	defer rows.Close()

	var clusters []*Cluster
	for rows.Next() {
		cluster := &Cluster{}
		if err := rows.Scan(&cluster.ID, &cluster.Seq, &cluster.Level, &cluster.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_cluster")
		}
		clusters = append(clusters, cluster)
	}

	return clusters, total, nil
}

func (repository *PostgresRepository) GetCluster(context context.Context, id int) (*Cluster, error) {
	c := schema.RefSpeechCluster
	query := fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = $1",
		c.ID, c.Seq, c.Level, c.CreatedAt, c.Table, c.ID)

	cluster := &Cluster{}
	err := repository.db.QueryRow(context, query, id).Scan(&cluster.ID, &cluster.Seq, &cluster.Level, &cluster.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_cluster")
	}
	return cluster, nil
}

func (repository *PostgresRepository) CreateSpeech(context context.Context, sp *Speech) error {
	s := schema.RefSpeech
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING %s, %s
	`,
		s.Table, s.ClusterID, s.WorkID, s.Type, s.Seq, s.Part, s.FirstLine, s.LastLine,
		s.Level, s.PartialA, s.PartialB, s.SpeakerNotes, s.AddresseeNotes, s.Notes, s.CreatedAt,
		s.ID, s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		sp.ClusterID, sp.WorkID, sp.Type, sp.Seq, sp.Part, sp.FirstLine, sp.LastLine,
		sp.Level, sp.PartialA, sp.PartialB, sp.SpeakerNotes, sp.AddresseeNotes, sp.Notes,
	).Scan(&sp.ID, &sp.CreatedAt)
	return dberr.Wrap(err, "create_speech")
}

func (repository *PostgresRepository) GetOrCreateCluster(context context.Context, cluster *Cluster) (bool, error) {
	c := schema.RefSpeechCluster
	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (%s) DO NOTHING
		RETURNING %s
	`,
		c.Table, c.ID, c.Seq, c.Level, c.CreatedAt,
		c.ID,
		c.CreatedAt,
	)

	err := repository.db.QueryRow(context, insert, cluster.ID, cluster.Seq, cluster.Level).Scan(&cluster.CreatedAt)
	if err == nil {
		return true, nil
	}

	existing, getErr := repository.GetCluster(context, cluster.ID)
	if getErr != nil {
		return false, dberr.Wrap(err, "get_or_create_cluster")
	}
	*cluster = *existing
	return false, nil
}

func (repository *PostgresRepository) SetClusterSeq(context context.Context, id, seq int) error {
	c := schema.RefSpeechCluster
	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2", c.Table, c.Seq, c.ID)

	tag, err := repository.db.Exec(context, query, seq, id)
	if err != nil {
		return dberr.Wrap(err, "set_cluster_seq")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Cluster")
	}
	return nil
}

func (repository *PostgresRepository) AttachRole(context context.Context, role Role, speechID, instanceID int) error {
	r := roleTable(role)
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, r.Table, r.SpeechID, r.InstanceID)

	_, err := repository.db.Exec(context, query, speechID, instanceID)
	return dberr.Wrap(err, "attach_speech_role")
}

func (repository *PostgresRepository) CreateTag(context context.Context, t *Tag) error {
	s := schema.RefSpeechTag
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		s.Table, s.SpeechID, s.Type, s.Doubt, s.Notes, s.CreatedAt,
		s.ID, s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, t.SpeechID, t.Type, t.Doubt, t.Notes).Scan(&t.ID, &t.CreatedAt)
	return dberr.Wrap(err, "create_speech_tag")
}
