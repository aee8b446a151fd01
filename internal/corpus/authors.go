package corpus

import (
	"context"
	"log/slog"

	"github.com/oratiodb/oratio/internal/core/author"
)

// loadAuthors creates one Author per row, keeping the source file's
// integer id as the persistent identifier so the speech files' integer
// cross-references stay valid.
func (ing *Ingestor) loadAuthors(ctx context.Context, rows []Row) (map[int]*author.Author, error) {
	authors := make(map[int]*author.Author, len(rows))

	nameSpec := FieldSpec{Name: "name"}

	for _, row := range rows {
		errs := &RowErrors{}

		id, fieldErr := IntField("id", row.Get("id"))
		errs.AddField(fieldErr)

		name, fieldErr := nameSpec.Validate(row.Get("name"))
		errs.AddField(fieldErr)

		if errs.HasErrors() {
			ing.logger.Warn("author_row_skipped", slog.Int("line", row.Line), slog.String("reasons", errs.Error()))
			ing.report.AddSkip(row, errs.Reasons()...)
			continue
		}

		a := &author.Author{
			ID:   id,
			Name: name,
			WD:   row.Get("wd"),
			URN:  row.Get("urn"),
		}

		if err := ing.store.CreateAuthor(ctx, a); err != nil {
			ing.report.AddSkip(row, "author not stored: "+err.Error())
			continue
		}

		authors[a.ID] = a
		ing.report.Created("authors")
	}

	return authors, nil
}
