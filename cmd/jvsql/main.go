package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jvsql/internal/config"
	"jvsql/internal/datasource"
	"jvsql/internal/datasource/file"
	"jvsql/internal/datasource/httpds"
	"jvsql/internal/importer"
	"jvsql/internal/jvdata"
	"jvsql/internal/metrics"
	"jvsql/internal/metrics/datadog"
	"jvsql/internal/metrics/prompush"
	"jvsql/internal/schema"
	"jvsql/internal/storage"

	// register all backends with the storage factory.
	// the job file specifies which to use but we build in support for all of them.
	_ "jvsql/internal/storage/all"
)

// main is the entry point for the jvsql binary. It loads the job file,
// optionally initializes a metrics backend, and runs the streaming import.
func main() {
	var (
		cfgPath  string
		validate bool
		devLog   bool
	)

	flag.StringVar(&cfgPath, "config", "configs/jobs/sample.json", "job file path")
	flag.BoolVar(&validate, "validate", false, "validate the job file and exit")
	flag.BoolVar(&devLog, "dev", false, "use human-readable development logging")
	flag.Parse()

	// Env files feed ${NAME} expansion in DSNs; missing is fine.
	_ = godotenv.Load()

	logger, err := newLogger(devLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	p, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load job file", zap.Error(err))
	}

	issues := config.ValidatePipeline(p)
	for _, iss := range issues {
		if iss.Severity == config.SeverityError {
			logger.Error("job file", zap.String("path", iss.Path), zap.String("issue", iss.Message))
		} else {
			logger.Warn("job file", zap.String("path", iss.Path), zap.String("issue", iss.Message))
		}
	}
	if len(config.Errors(issues)) > 0 {
		logger.Fatal("job file is invalid", zap.String("config", cfgPath))
	}
	if validate {
		logger.Info("job file is valid", zap.String("config", cfgPath))
		return
	}

	if err := run(context.Background(), p, logger); err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run wires the configured source, storage and importer together and executes
// a single import pass.
func run(ctx context.Context, p config.Pipeline, logger *zap.Logger) error {
	job := p.Job
	if job == "" {
		job = "jvsql"
	}

	if b := newMetricsBackend(p.Metrics, job, logger); b != nil {
		metrics.SetBackend(b)
		defer func() {
			if err := metrics.Flush(); err != nil {
				logger.Warn("metrics flush", zap.Error(err))
			}
		}()
	}

	reg := jvdata.NewRegistry()
	cat, err := schema.NewCatalog(reg)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	sources, err := newSources(p.Source)
	if err != nil {
		return err
	}

	handler, err := storage.Open(ctx, storage.Config{Kind: p.Storage.Kind, DSN: p.Storage.DSN})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer handler.Close()

	workers := p.Runtime.Workers
	if workers <= 0 {
		workers = importer.DefaultWorkers()
	}
	imp := importer.New(reg, cat, handler, importer.Options{
		BatchSize: p.Runtime.BatchSize,
		Workers:   workers,
		Job:       job,
		Logger:    logger,
	})

	start := time.Now()
	var stats importer.Stats
	for _, src := range sources {
		s, runErr := importOne(ctx, imp, src)
		stats.Add(s)
		if runErr != nil {
			err = runErr
			break
		}
	}
	metrics.RecordStep(job, "import", err, time.Since(start))

	logger.Info("run finished",
		zap.String("job", job),
		zap.Int64("imported", stats.Imported),
		zap.Int64("failed", stats.Failed),
		zap.Int64("unknown_type", stats.UnknownType),
		zap.Int64("bad_length", stats.BadLength),
		zap.Int64("bad_decode", stats.BadDecode),
		zap.Int64("deduped", stats.Deduped),
		zap.Int64("batches", stats.Batches),
		zap.Int64("batches_failed", stats.BatchesFailed),
		zap.Duration("elapsed", time.Since(start).Truncate(time.Millisecond)),
	)
	for tag, n := range stats.ByType {
		logger.Debug("record type", zap.String("tag", tag), zap.Int64("imported", n))
	}
	return err
}

// newMetricsBackend builds the backend the job file selects, or nil when
// metrics are disabled. A backend init failure disables metrics rather than
// failing the run.
func newMetricsBackend(m config.Metrics, job string, logger *zap.Logger) metrics.Backend {
	switch m.Kind {
	case "pushgateway":
		b, err := prompush.NewBackend(job, m.PushgatewayURL)
		if err != nil {
			logger.Warn("metrics backend init failed; metrics disabled", zap.Error(err))
			return nil
		}
		return b
	case "datadog":
		b, err := datadog.NewBackend(datadog.Config{Addr: m.StatsdAddr})
		if err != nil {
			logger.Warn("metrics backend init failed; metrics disabled", zap.Error(err))
			return nil
		}
		return b
	default:
		return nil
	}
}

// importOne streams a single source through the importer.
func importOne(ctx context.Context, imp *importer.Importer, src datasource.Source) (importer.Stats, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return importer.Stats{}, fmt.Errorf("open source: %w", err)
	}
	defer rc.Close()
	return imp.Run(ctx, rc)
}

// newSources builds the datasources selected by the job file. A file source
// with a manifest yields one source per listed dump. Validation has already
// run, so unknown kinds here mean the two lists drifted apart.
func newSources(s config.Source) ([]datasource.Source, error) {
	switch s.Kind {
	case "file":
		if s.File.Manifest != "" {
			paths, err := file.ReadManifest(s.File.Manifest)
			if err != nil {
				return nil, err
			}
			sources := make([]datasource.Source, 0, len(paths))
			for _, p := range paths {
				sources = append(sources, file.NewLocal(p))
			}
			return sources, nil
		}
		return []datasource.Source{file.NewLocal(s.File.Path)}, nil
	case "http":
		client := httpds.NewClient(httpds.Config{
			Timeout: time.Duration(s.HTTP.TimeoutSeconds) * time.Second,
		})
		return []datasource.Source{httpds.NewRemote(client, s.HTTP.URL)}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", s.Kind)
	}
}
