package corpus

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Skip records one rejected or skipped source row with every reason
// found on it.
type Skip struct {
	File    string
	Line    int
	Row     string
	Reasons []string
}

// Report aggregates the outcome of one ingestion run: per-entity create
// counts plus a diagnostic entry for every row that was not loaded.
type Report struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration

	created map[string]int
	skips   []Skip
}

func NewReport() *Report {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Report{
		RunID:     id,
		StartedAt: time.Now(),
		created:   make(map[string]int),
	}
}

func (r *Report) Created(entity string) {
	r.created[entity]++
}

func (r *Report) CreatedCount(entity string) int {
	return r.created[entity]
}

func (r *Report) AddSkip(row Row, reasons ...string) {
	r.skips = append(r.skips, Skip{
		File:    row.File,
		Line:    row.Line,
		Row:     row.String(),
		Reasons: reasons,
	})
}

func (r *Report) Skips() []Skip { return r.skips }

func (r *Report) Skipped() int { return len(r.skips) }

// Render produces the end-of-run summary: a count table followed by one
// line per skipped row. Skips are listed after the counts so the operator
// sees the headline numbers first.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "ingestion run %s finished in %s\n\n", r.RunID, r.Duration.Round(time.Millisecond))

	summary := table.NewWriter()
	summary.AppendHeader(table.Row{"Entity", "Created"})

	entities := make([]string, 0, len(r.created))
	for entity := range r.created {
		entities = append(entities, entity)
	}
	sort.Strings(entities)
	for _, entity := range entities {
		summary.AppendRow(table.Row{entity, r.created[entity]})
	}
	summary.AppendFooter(table.Row{"rows skipped", len(r.skips)})
	b.WriteString(summary.Render())
	b.WriteString("\n")

	if len(r.skips) > 0 {
		b.WriteString("\nskipped rows:\n")
		details := table.NewWriter()
		details.AppendHeader(table.Row{"File", "Line", "Row", "Reasons"})
		for _, skip := range r.skips {
			details.AppendRow(table.Row{skip.File, skip.Line, skip.Row, strings.Join(skip.Reasons, "; ")})
		}
		b.WriteString(details.Render())
		b.WriteString("\n")
	}

	return b.String()
}
