// Package importer drives the pipeline: it scans raw records from a stream,
// parses them through the layout registry, buffers rows per destination table
// and flushes batches to a storage handler. One bad record never aborts a
// run, and a failed flush forfeits only its own batch; already committed
// batches stay durable.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jvsql/internal/datasource"
	"jvsql/internal/jvdata"
	"jvsql/internal/metrics"
	"jvsql/internal/schema"
	"jvsql/internal/storage"
)

// DefaultBatchSize is the per-table flush threshold when Options leaves
// BatchSize zero.
const DefaultBatchSize = 1000

// Options tunes a run.
type Options struct {
	// BatchSize is the per-table row count that triggers a flush.
	BatchSize int

	// Workers is the parse parallelism. Zero or one parses sequentially.
	Workers int

	// Job labels metrics emitted during the run.
	Job string

	// Logger receives per-record rejection warnings and per-batch progress.
	// Nil means no logging.
	Logger *zap.Logger
}

// Importer imports one or more record streams into a storage handler.
type Importer struct {
	reg     *jvdata.Registry
	cat     *schema.Catalog
	handler storage.Handler
	opts    Options
	log     *zap.Logger

	ensured map[string]bool
	buffers map[string]*tableBuffer
}

// tableBuffer accumulates decoded rows for one destination table between
// flushes.
type tableBuffer struct {
	table  schema.Table
	keyIdx []int
	rows   [][]any
}

// New builds an importer. The catalog must have been generated from the same
// registry so parser output and table shape agree.
func New(reg *jvdata.Registry, cat *schema.Catalog, h storage.Handler, opts Options) *Importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Job == "" {
		opts.Job = "jvsql"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{
		reg:     reg,
		cat:     cat,
		handler: h,
		opts:    opts,
		log:     log,
		ensured: map[string]bool{},
		buffers: map[string]*tableBuffer{},
	}
}

// parsed is the outcome of decoding one raw record.
type parsed struct {
	tag string
	n   int // raw length, for rejection logs
	row []any
	err error
}

// Run imports every record in r and returns the run's stats. Record-level
// failures are counted and logged, then skipped. A storage failure rolls its
// batch back, counts the batch's rows as failed and continues; only setup
// failures (table creation, stream read) abort the run. Stats are valid
// either way.
func (im *Importer) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats

	rs := datasource.NewRecordScanner(r)
	chunk := make([][]byte, 0, im.opts.BatchSize)
	for {
		chunk = chunk[:0]
		for len(chunk) < im.opts.BatchSize && rs.Scan() {
			chunk = append(chunk, bytes.Clone(rs.Record()))
		}
		if len(chunk) == 0 {
			break
		}
		results, err := im.parseChunk(ctx, chunk)
		if err != nil {
			im.discard(ctx)
			return stats, err
		}
		for _, p := range results {
			if p.err != nil {
				im.reject(&stats, p)
				continue
			}
			if err := im.buffer(ctx, &stats, p); err != nil {
				im.discard(ctx)
				return stats, err
			}
		}
	}
	if err := rs.Err(); err != nil {
		im.discard(ctx)
		return stats, fmt.Errorf("importer: read: %w", err)
	}

	// Drain what the thresholds left behind.
	for tag, buf := range im.buffers {
		if len(buf.rows) > 0 {
			im.flush(ctx, &stats, buf)
		}
		delete(im.buffers, tag)
	}

	metrics.RecordRow(im.opts.Job, "imported", stats.Imported)
	metrics.RecordRow(im.opts.Job, "failed", stats.Failed)
	return stats, nil
}

// parseChunk decodes a chunk of raw records, fanning out across workers while
// keeping result order aligned with input order.
func (im *Importer) parseChunk(ctx context.Context, chunk [][]byte) ([]parsed, error) {
	results := make([]parsed, len(chunk))
	workers := im.opts.Workers
	if workers > len(chunk) {
		workers = len(chunk)
	}
	if workers <= 1 {
		for i, raw := range chunk {
			results[i] = im.parseOne(raw)
		}
		return results, nil
	}

	var next int64
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(atomic.AddInt64(&next, 1)) - 1
				if i >= len(chunk) {
					return nil
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				results[i] = im.parseOne(chunk[i])
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("importer: parse: %w", err)
	}
	return results, nil
}

// parseOne decodes a single raw record into an ordered row.
func (im *Importer) parseOne(raw []byte) parsed {
	p := parsed{n: len(raw)}
	if len(raw) < 2 {
		p.err = &jvdata.RecordLengthError{Tag: "", Want: 2, Got: len(raw)}
		return p
	}
	p.tag = string(raw[:2])
	parser, err := im.reg.Resolve(p.tag)
	if err != nil {
		p.err = err
		return p
	}
	rec, err := parser.Parse(raw)
	if err != nil {
		p.err = err
		return p
	}
	fields := parser.Fields()
	p.row = make([]any, len(fields))
	for i, f := range fields {
		p.row[i] = rec[f.Name]
	}
	return p
}

// reject accounts and logs one failed record.
func (im *Importer) reject(stats *Stats, p parsed) {
	stats.Failed++
	kind := "bad_decode"
	var (
		ue *jvdata.UnknownRecordTypeError
		le *jvdata.RecordLengthError
	)
	switch {
	case errors.As(p.err, &ue):
		stats.UnknownType++
		kind = "unknown_type"
	case errors.As(p.err, &le):
		stats.BadLength++
		kind = "bad_length"
	default:
		stats.BadDecode++
	}
	metrics.RecordRow(im.opts.Job, kind, 1)
	im.log.Warn("record rejected",
		zap.String("tag", p.tag),
		zap.Int("length", p.n),
		zap.String("kind", kind),
		zap.Error(p.err))
}

// buffer appends a parsed row to its table buffer, creating the destination
// table on first contact, and flushes when the buffer reaches the batch size.
func (im *Importer) buffer(ctx context.Context, stats *Stats, p parsed) error {
	buf, ok := im.buffers[p.tag]
	if !ok {
		tbl, ok := im.cat.Table(p.tag)
		if !ok {
			return fmt.Errorf("importer: no table for record type %s", p.tag)
		}
		buf = &tableBuffer{table: tbl, keyIdx: keyIndexes(tbl)}
		im.buffers[p.tag] = buf
	}
	if !im.ensured[p.tag] {
		if err := im.handler.EnsureTable(ctx, buf.table); err != nil {
			return fmt.Errorf("importer: %w", err)
		}
		im.ensured[p.tag] = true
	}
	buf.rows = append(buf.rows, p.row)
	stats.countImported(p.tag)
	if len(buf.rows) >= im.opts.BatchSize {
		im.flush(ctx, stats, buf)
	}
	return nil
}

// flush writes one table buffer as a single committed batch. Keyed tables
// de-duplicate on the key first and upsert; keyless tables insert as-is.
//
// A database failure is contained to the batch: the open transaction is
// rolled back, the batch's rows move from Imported to Failed, and the run
// continues with the next batch. Prior commits stay durable.
func (im *Importer) flush(ctx context.Context, stats *Stats, buf *tableBuffer) {
	rows := buf.rows
	buf.rows = buf.rows[:0]
	buffered := int64(len(rows))

	deduped := int64(0)
	var err error
	if buf.table.HasKey() {
		rows = dedupeKeepLast(rows, buf.keyIdx)
		deduped = buffered - int64(len(rows))
		_, err = im.handler.Upsert(ctx, buf.table, rows)
	} else {
		_, err = im.handler.InsertMany(ctx, buf.table, rows)
	}
	if err == nil {
		err = im.handler.Commit(ctx)
	}
	if err != nil {
		if rbErr := im.handler.Rollback(ctx); rbErr != nil {
			im.log.Warn("rollback after failed batch", zap.Error(rbErr))
		}
		stats.Imported -= buffered
		stats.Failed += buffered
		stats.BatchesFailed++
		if stats.ByType != nil {
			stats.ByType[buf.table.Tag] -= buffered
		}
		metrics.RecordRow(im.opts.Job, "batch_failed", buffered)
		im.log.Error("batch failed",
			zap.String("table", buf.table.Name),
			zap.Int64("rows", buffered),
			zap.Error(err))
		return
	}
	if deduped > 0 {
		stats.Deduped += deduped
		metrics.RecordRow(im.opts.Job, "deduped", deduped)
	}
	stats.Batches++
	metrics.RecordBatches(im.opts.Job, 1)
	im.log.Info("batch committed",
		zap.String("table", buf.table.Name),
		zap.Int("rows", len(rows)))
}

// discard rolls back whatever the handler has accumulated after a fatal
// error.
func (im *Importer) discard(ctx context.Context) {
	if err := im.handler.Rollback(ctx); err != nil {
		im.log.Warn("rollback failed", zap.Error(err))
	}
}

func keyIndexes(tbl schema.Table) []int {
	if !tbl.HasKey() {
		return nil
	}
	pos := make(map[string]int, len(tbl.Columns))
	for i, c := range tbl.Columns {
		pos[c.Name] = i
	}
	idx := make([]int, len(tbl.Keys))
	for i, k := range tbl.Keys {
		idx[i] = pos[k]
	}
	return idx
}

// dedupeKeepLast removes rows whose key repeats within the batch, keeping the
// last occurrence; the feed emits corrections as later records with the same
// key, and a multi-row statement must not touch one key twice.
func dedupeKeepLast(rows [][]any, keyIdx []int) [][]any {
	if len(rows) < 2 {
		return rows
	}
	last := make(map[uint64]int, len(rows))
	var h bytes.Buffer
	hashes := make([]uint64, len(rows))
	for i, row := range rows {
		h.Reset()
		for _, k := range keyIdx {
			fmt.Fprintf(&h, "%v\x1f", row[k])
		}
		sum := xxh3.Hash(h.Bytes())
		hashes[i] = sum
		last[sum] = i
	}
	if len(last) == len(rows) {
		return rows
	}
	out := rows[:0]
	for i, row := range rows {
		if last[hashes[i]] == i {
			out = append(out, row)
		}
	}
	return out
}

// DefaultWorkers returns the parse parallelism for callers that do not pin
// one: one worker per available CPU.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }
