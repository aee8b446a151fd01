package corpus

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/oratiodb/oratio/internal/core/author"
	"github.com/oratiodb/oratio/internal/core/work"
	"github.com/oratiodb/oratio/internal/corpus/vocab"
)

// loadWorks creates one Work per row. A row referencing an author id the
// author load never produced is skipped with a diagnostic; one bad work
// never aborts the batch.
func (ing *Ingestor) loadWorks(ctx context.Context, rows []Row, authors map[int]*author.Author) (map[int]*work.Work, error) {
	works := make(map[int]*work.Work, len(rows))

	titleSpec := FieldSpec{Name: "title"}
	langSpec := FieldSpec{Name: "lang", Allowed: vocab.Language}

	for _, row := range rows {
		errs := &RowErrors{}

		id, fieldErr := IntField("id", row.Get("id"))
		errs.AddField(fieldErr)

		authorID, authorErr := IntField("author", row.Get("author"))
		errs.AddField(authorErr)

		title, fieldErr := titleSpec.Validate(row.Get("title"))
		errs.AddField(fieldErr)

		lang, fieldErr := langSpec.Validate(row.Get("lang"))
		errs.AddField(fieldErr)

		var owner *author.Author
		if authorErr == nil {
			var ok bool
			if owner, ok = authors[authorID]; !ok {
				errs.Add(&ResolutionError{Kind: "author", Ref: strconv.Itoa(authorID)})
			}
		}

		if errs.HasErrors() {
			ing.logger.Warn("work_row_skipped", slog.Int("line", row.Line), slog.String("reasons", errs.Error()))
			ing.report.AddSkip(row, errs.Reasons()...)
			continue
		}

		w := &work.Work{
			ID:         id,
			AuthorID:   owner.ID,
			Title:      title,
			Lang:       lang,
			WD:         row.Get("wd"),
			URN:        row.Get("urn"),
			AuthorName: owner.Name,
		}

		if err := ing.store.CreateWork(ctx, w); err != nil {
			ing.report.AddSkip(row, "work not stored: "+err.Error())
			continue
		}

		works[w.ID] = w
		ing.report.Created("works")
	}

	return works, nil
}
