package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"
)

// DefaultSeparator splits multi-name role cells. Some corpus revisions
// use ";" instead; --separator overrides.
const DefaultSeparator = " and "

// Options configures one ingestion run.
type Options struct {
	Dir         string
	Separator   string
	LenientTags bool // map unknown short tags to "und" instead of rejecting the row
}

// Ingestor drives the pipeline over one input directory: authors, works,
// the character registry, optional instance seeds, the speeches files in
// filename order, then the cluster sequence post-pass. An Ingestor is
// single-use; all registry and cache state is scoped to the run.
type Ingestor struct {
	store  Store
	logger *slog.Logger
	opts   Options

	report    *Report
	resolver  *Resolver
	sequencer *Sequencer

	partsSeen map[int]map[int]bool
	nextSeq   int
}

func NewIngestor(store Store, logger *slog.Logger, opts Options) *Ingestor {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	return &Ingestor{
		store:     store,
		logger:    logger,
		opts:      opts,
		report:    NewReport(),
		sequencer: NewSequencer(),
		partsSeen: make(map[int]map[int]bool),
		nextSeq:   1,
	}
}

// Run executes the whole pipeline and returns the run report. Only
// configuration problems return an error; row-level failures are in the
// report.
func (ing *Ingestor) Run(ctx context.Context) (*Report, error) {
	ing.logger.Info("ingestion_started",
		slog.String("run_id", ing.report.RunID.String()),
		slog.String("dir", ing.opts.Dir))

	authorRows, err := ing.requiredFile("authors")
	if err != nil {
		return nil, err
	}
	workRows, err := ing.requiredFile("works")
	if err != nil {
		return nil, err
	}
	characterRows, err := ing.requiredFile("characters")
	if err != nil {
		return nil, err
	}
	instanceRows, err := ing.optionalFile("instances")
	if err != nil {
		return nil, err
	}
	speechFiles, err := ing.speechFiles()
	if err != nil {
		return nil, err
	}

	authors, err := ing.loadAuthors(ctx, authorRows)
	if err != nil {
		return nil, err
	}
	works, err := ing.loadWorks(ctx, workRows, authors)
	if err != nil {
		return nil, err
	}

	registry, err := ing.buildRegistry(ctx, characterRows)
	if err != nil {
		return nil, err
	}
	seeds := ing.loadInstanceSeeds(instanceRows)
	ing.resolver = NewResolver(registry, ing.store, seeds)

	for _, path := range speechFiles {
		rows, err := ReadTSV(path)
		if err != nil {
			return nil, err
		}
		ing.ingestSpeeches(ctx, rows, works)
	}

	if err := ing.sequencer.Assign(ctx, ing.store); err != nil {
		return nil, fmt.Errorf("assign cluster sequence: %w", err)
	}

	ing.report.Duration = time.Since(ing.report.StartedAt)
	ing.logger.Info("ingestion_finished",
		slog.String("run_id", ing.report.RunID.String()),
		slog.Int("speeches", ing.report.CreatedCount("speeches")),
		slog.Int("skipped", ing.report.Skipped()))

	return ing.report, nil
}

// requiredFile reads the single source file matching <name>*; its
// absence is fatal.
func (ing *Ingestor) requiredFile(name string) ([]Row, error) {
	path, err := ing.findFile(name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %s in %s", ErrMissingInput, name, ing.opts.Dir)
	}
	return ReadTSV(path)
}

// optionalFile reads <name>* when present; earlier corpus revisions do
// not ship an instances file.
func (ing *Ingestor) optionalFile(name string) ([]Row, error) {
	path, err := ing.findFile(name)
	if err != nil || path == "" {
		return nil, err
	}
	return ReadTSV(path)
}

func (ing *Ingestor) findFile(name string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(ing.opts.Dir, name+"*"))
	if err != nil {
		return "", err
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}

// speechFiles returns every speeches* file sorted by filename; the sort
// order defines corpus order and therefore cluster sequencing.
func (ing *Ingestor) speechFiles() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(ing.opts.Dir, "speeches*"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: speeches in %s", ErrMissingInput, ing.opts.Dir)
	}
	sort.Strings(matches)
	return matches, nil
}

func (ing *Ingestor) partSeen(clusterID, part int) bool {
	return ing.partsSeen[clusterID][part]
}

func (ing *Ingestor) markPart(clusterID, part int) {
	if ing.partsSeen[clusterID] == nil {
		ing.partsSeen[clusterID] = make(map[int]bool)
	}
	ing.partsSeen[clusterID][part] = true
}
