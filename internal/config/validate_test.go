package config

import (
	"strings"
	"testing"
)

func validPipeline() Pipeline {
	return Pipeline{
		Job:     "nightly",
		Source:  Source{Kind: "file", File: SourceFile{Path: "data/records.dat"}},
		Storage: Storage{Kind: "sqlite", DSN: "file:jvdata.db"},
		Runtime: RuntimeConfig{BatchSize: 1000, Workers: 2},
	}
}

func hasIssue(issues []Issue, sev IssueSeverity, path string) bool {
	for _, i := range issues {
		if i.Severity == sev && i.Path == path {
			return true
		}
	}
	return false
}

func TestValidatePipeline_Valid(t *testing.T) {
	t.Parallel()

	if issues := Errors(ValidatePipeline(validPipeline())); len(issues) != 0 {
		t.Fatalf("valid pipeline produced errors: %v", issues)
	}
}

func TestValidatePipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Pipeline)
		wantSev  IssueSeverity
		wantPath string
	}{
		{
			name:     "missing_source_kind",
			mutate:   func(p *Pipeline) { p.Source.Kind = "" },
			wantSev:  SeverityError,
			wantPath: "source.kind",
		},
		{
			name:     "unknown_source_kind",
			mutate:   func(p *Pipeline) { p.Source.Kind = "ftp" },
			wantSev:  SeverityError,
			wantPath: "source.kind",
		},
		{
			name:     "file_source_without_path",
			mutate:   func(p *Pipeline) { p.Source.File.Path = "  " },
			wantSev:  SeverityError,
			wantPath: "source.file",
		},
		{
			name: "file_source_with_path_and_manifest",
			mutate: func(p *Pipeline) {
				p.Source.File.Manifest = "data/dumps.txt"
			},
			wantSev:  SeverityError,
			wantPath: "source.file",
		},
		{
			name: "http_source_without_url",
			mutate: func(p *Pipeline) {
				p.Source = Source{Kind: "http"}
			},
			wantSev:  SeverityError,
			wantPath: "source.http.url",
		},
		{
			name:     "unknown_storage_kind",
			mutate:   func(p *Pipeline) { p.Storage.Kind = "oracle" },
			wantSev:  SeverityError,
			wantPath: "storage.kind",
		},
		{
			name:     "missing_dsn",
			mutate:   func(p *Pipeline) { p.Storage.DSN = "" },
			wantSev:  SeverityError,
			wantPath: "storage.dsn",
		},
		{
			name:     "negative_batch_size",
			mutate:   func(p *Pipeline) { p.Runtime.BatchSize = -1 },
			wantSev:  SeverityError,
			wantPath: "runtime.batch_size",
		},
		{
			name:     "negative_workers",
			mutate:   func(p *Pipeline) { p.Runtime.Workers = -4 },
			wantSev:  SeverityError,
			wantPath: "runtime.workers",
		},
		{
			name:     "empty_job_is_warning",
			mutate:   func(p *Pipeline) { p.Job = "" },
			wantSev:  SeverityWarning,
			wantPath: "job",
		},
		{
			name:     "huge_batch_is_warning",
			mutate:   func(p *Pipeline) { p.Runtime.BatchSize = 500000 },
			wantSev:  SeverityWarning,
			wantPath: "runtime.batch_size",
		},
		{
			name:     "unknown_metrics_kind",
			mutate:   func(p *Pipeline) { p.Metrics.Kind = "statsite" },
			wantSev:  SeverityError,
			wantPath: "metrics.kind",
		},
		{
			name:     "pushgateway_without_url",
			mutate:   func(p *Pipeline) { p.Metrics.Kind = "pushgateway" },
			wantSev:  SeverityError,
			wantPath: "metrics.pushgateway_url",
		},
		{
			name:     "datadog_without_addr",
			mutate:   func(p *Pipeline) { p.Metrics.Kind = "datadog" },
			wantSev:  SeverityError,
			wantPath: "metrics.statsd_addr",
		},
		{
			name:     "endpoint_without_kind_is_warning",
			mutate:   func(p *Pipeline) { p.Metrics.PushgatewayURL = "http://pushgateway:9091" },
			wantSev:  SeverityWarning,
			wantPath: "metrics.kind",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := validPipeline()
			tc.mutate(&p)
			issues := ValidatePipeline(p)
			if !hasIssue(issues, tc.wantSev, tc.wantPath) {
				t.Fatalf("issues = %v, want %s at %s", issues, tc.wantSev, tc.wantPath)
			}
		})
	}
}

func TestValidatePipeline_ManifestOnly(t *testing.T) {
	t.Parallel()

	p := validPipeline()
	p.Source.File = SourceFile{Manifest: "data/dumps.txt"}
	if issues := Errors(ValidatePipeline(p)); len(issues) != 0 {
		t.Fatalf("manifest-only file source produced errors: %v", issues)
	}
}

// DuckDB defaults to an in-memory database, so an empty DSN is legal there.
func TestValidatePipeline_DuckDBEmptyDSN(t *testing.T) {
	t.Parallel()

	p := validPipeline()
	p.Storage = Storage{Kind: "duckdb"}
	if issues := Errors(ValidatePipeline(p)); len(issues) != 0 {
		t.Fatalf("duckdb with empty DSN produced errors: %v", issues)
	}
}

func TestIssue_Error(t *testing.T) {
	t.Parallel()

	i := Issue{Severity: SeverityError, Path: "storage.kind", Message: "boom"}
	if !strings.Contains(i.Error(), "storage.kind") {
		t.Fatalf("Error() = %q", i.Error())
	}
}
