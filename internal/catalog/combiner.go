package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/crawlkit/catalogpress/internal/table"
)

// Config holds combiner configuration. Paths are already resolved; defaults
// live at the call site.
type Config struct {
	// InputDir is the directory of raw per-product CSV extracts.
	InputDir string
	// OutputFile is the path of the combined catalog CSV.
	OutputFile string
	// ExcludeFiles are exact filenames in InputDir that are never catalog
	// data (the crawler's audit table).
	ExcludeFiles []string
	// ExcludePrefixes exclude in-progress/checkpoint files by name prefix.
	ExcludePrefixes []string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// FileResult records the outcome of one input file.
type FileResult struct {
	Name        string
	Rows        int
	SkippedRows int
	Err         error
}

// ColumnStat is the non-null breakdown of one output column.
type ColumnStat struct {
	Name    string
	NonNull int
	Percent float64
}

// Result summarizes one combine run.
type Result struct {
	RunID      string
	InputDir   string
	OutputFile string

	Files        []FileResult
	ImageColumns []string

	DedupKey          string // empty when no dedup key column existed
	RowsBeforeDedup   int
	DuplicatesRemoved int

	PrunedColumns []string

	FinalRows    int
	FinalColumns int
	ColumnStats  []ColumnStat // sorted by non-null count, descending

	Elapsed time.Duration
}

// Combiner orchestrates the full batch: discovery, image-field detection,
// per-file transform, concatenation, dedup, empty-column pruning, emission.
// Phases run strictly in order; the in-memory combined table is owned by the
// combiner for the duration of a run and there is no cross-run state.
type Combiner struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Combiner.
func New(cfg Config) *Combiner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Combiner{cfg: cfg, logger: logger}
}

// Run executes the pipeline. A missing input directory or an empty selection
// is a soft stop: it is logged and Run returns (nil, nil). Per-file failures
// are logged and skipped. Only output errors are returned; a run without a
// written artifact is not complete.
func (c *Combiner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := c.logger.With("run_id", runID)

	logger.Info("combine started", "input_dir", c.cfg.InputDir, "output_file", c.cfg.OutputFile)

	files, err := c.Discover()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	logger.Info("discovered input files", "count", len(files))

	imageCols, err := c.detectImageColumns(files[0])
	if err != nil {
		return nil, err
	}
	logger.Info("detected image columns", "count", len(imageCols))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:        runID,
		InputDir:     c.cfg.InputDir,
		OutputFile:   c.cfg.OutputFile,
		ImageColumns: imageCols,
	}

	// One malformed crawl batch must not abort the whole catalog build, so
	// per-file failures are isolated here.
	var tables []*table.Table
	for _, path := range files {
		name := filepath.Base(path)
		t, skipped, err := TransformFile(path, imageCols)
		if err != nil {
			logger.Warn("skipping unreadable file", "file", name, "error", err)
			res.Files = append(res.Files, FileResult{Name: name, Err: err})
			continue
		}
		logger.Info("processed file", "file", name, "rows", len(t.Rows), "skipped_rows", skipped)
		res.Files = append(res.Files, FileResult{Name: name, Rows: len(t.Rows), SkippedRows: skipped})
		tables = append(tables, t)
	}
	if len(tables) == 0 {
		logger.Warn("no data processed", "input_dir", c.cfg.InputDir)
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	combined := table.Concat(tables...)
	res.RowsBeforeDedup = len(combined.Rows)
	logger.Info("combined tables", "rows", res.RowsBeforeDedup)

	switch {
	case combined.HasColumn(VariantKeyColumn):
		res.DedupKey = VariantKeyColumn
		res.DuplicatesRemoved = combined.DedupPartition(VariantKeyColumn)
	case combined.HasColumn(FallbackKeyColumn):
		res.DedupKey = FallbackKeyColumn
		res.DuplicatesRemoved = combined.DedupFirst(FallbackKeyColumn)
	}
	if res.DedupKey != "" {
		logger.Info("deduplicated", "key", res.DedupKey, "removed", res.DuplicatesRemoved)
	}

	res.PrunedColumns = combined.PruneEmptyColumns()
	if len(res.PrunedColumns) > 0 {
		logger.Info("pruned empty columns", "count", len(res.PrunedColumns))
	}

	if err := combined.WriteCSV(c.cfg.OutputFile); err != nil {
		return nil, err
	}

	res.FinalRows = len(combined.Rows)
	res.FinalColumns = len(combined.Columns)
	res.ColumnStats = columnStats(combined)
	res.Elapsed = time.Since(start)

	logger.Info("combine complete",
		"rows", res.FinalRows,
		"columns", res.FinalColumns,
		"output_file", c.cfg.OutputFile,
		"elapsed", res.Elapsed.Round(time.Millisecond))

	return res, nil
}

// Discover lists the input files the pipeline would process: files in the
// input directory with a .csv extension, minus the configured exclusions,
// sorted lexicographically for a deterministic processing order. A missing
// directory yields an empty selection, logged but not an error.
func (c *Combiner) Discover() ([]string, error) {
	entries, err := os.ReadDir(c.cfg.InputDir)
	if os.IsNotExist(err) {
		c.logger.Warn("input directory not found", "input_dir", c.cfg.InputDir)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".csv") {
			continue
		}
		if lo.Contains(c.cfg.ExcludeFiles, name) {
			continue
		}
		if lo.SomeBy(c.cfg.ExcludePrefixes, func(p string) bool { return strings.HasPrefix(name, p) }) {
			continue
		}
		files = append(files, filepath.Join(c.cfg.InputDir, name))
	}
	if len(files) == 0 {
		c.logger.Warn("no csv files found", "input_dir", c.cfg.InputDir)
		return nil, nil
	}

	sort.Strings(files)
	return files, nil
}

// detectImageColumns probes the header of the lexicographically-first input
// file for the candidate image fields present in this batch's schema. The
// resulting list is shared by every file transform so all_images ordering is
// consistent across files that differ in which image columns they carry.
func (c *Combiner) detectImageColumns(path string) ([]string, error) {
	header, err := table.ReadHeader(path)
	if err != nil {
		return nil, err
	}
	return lo.Filter(ImageColumns, func(col string, _ int) bool {
		return lo.Contains(header, col)
	}), nil
}

// columnStats computes the per-column non-null breakdown, sorted by count
// descending with name as the deterministic tie-break.
func columnStats(t *table.Table) []ColumnStat {
	counts := t.NonNullCounts()
	stats := lo.Map(t.Columns, func(col string, _ int) ColumnStat {
		s := ColumnStat{Name: col, NonNull: counts[col]}
		if len(t.Rows) > 0 {
			s.Percent = float64(s.NonNull) / float64(len(t.Rows)) * 100
		}
		return s
	})
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].NonNull != stats[j].NonNull {
			return stats[i].NonNull > stats[j].NonNull
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}
