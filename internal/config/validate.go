// This file adds a lightweight linter for Pipeline values. It performs static
// checks over a decoded Pipeline and returns a list of issues that callers
// can surface in the CLI or in tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a finding worth surfacing that does not
	// block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into the
// config (e.g. "storage.kind").
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error where one is expected.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// knownStorageKinds mirrors the backends wired in storage/all. Validation
// stays decoupled from the storage registry so it can run without opening
// drivers.
var knownStorageKinds = map[string]bool{
	"sqlite":   true,
	"postgres": true,
	"duckdb":   true,
	"mysql":    true,
}

// ValidatePipeline statically validates a Pipeline. It does not mutate the
// pipeline; callers decide whether warnings are fatal.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue
	add := func(sev IssueSeverity, path, msg string) {
		issues = append(issues, Issue{Severity: sev, Path: path, Message: msg})
	}

	if strings.TrimSpace(p.Job) == "" {
		add(SeverityWarning, "job", "job name is empty; logs and metrics will carry the default label")
	}

	switch p.Source.Kind {
	case "file":
		path := strings.TrimSpace(p.Source.File.Path) != ""
		manifest := strings.TrimSpace(p.Source.File.Manifest) != ""
		if !path && !manifest {
			add(SeverityError, "source.file", "file source requires a path or a manifest")
		}
		if path && manifest {
			add(SeverityError, "source.file", "path and manifest are mutually exclusive")
		}
	case "http":
		if strings.TrimSpace(p.Source.HTTP.URL) == "" {
			add(SeverityError, "source.http.url", "http source requires a url")
		}
		if p.Source.HTTP.TimeoutSeconds < 0 {
			add(SeverityError, "source.http.timeout_seconds", "timeout must not be negative")
		}
	case "":
		add(SeverityError, "source.kind", "source kind is required")
	default:
		add(SeverityError, "source.kind", fmt.Sprintf("unknown source kind %q", p.Source.Kind))
	}

	if p.Storage.Kind == "" {
		add(SeverityError, "storage.kind", "storage kind is required")
	} else if !knownStorageKinds[p.Storage.Kind] {
		add(SeverityError, "storage.kind", fmt.Sprintf("unknown storage kind %q", p.Storage.Kind))
	}
	// DuckDB treats an empty DSN as in-memory; every other backend needs one.
	if strings.TrimSpace(p.Storage.DSN) == "" && p.Storage.Kind != "duckdb" {
		add(SeverityError, "storage.dsn", "storage dsn is required")
	}

	if p.Runtime.BatchSize < 0 {
		add(SeverityError, "runtime.batch_size", "batch size must not be negative")
	}
	if p.Runtime.Workers < 0 {
		add(SeverityError, "runtime.workers", "workers must not be negative")
	}
	if p.Runtime.BatchSize > 100000 {
		add(SeverityWarning, "runtime.batch_size", "very large batches hold long transactions open")
	}

	switch p.Metrics.Kind {
	case "":
		if p.Metrics.PushgatewayURL != "" || p.Metrics.StatsdAddr != "" {
			add(SeverityWarning, "metrics.kind", "metrics endpoint set but kind is empty; metrics are disabled")
		}
	case "pushgateway":
		if strings.TrimSpace(p.Metrics.PushgatewayURL) == "" {
			add(SeverityError, "metrics.pushgateway_url", "pushgateway backend requires a url")
		}
	case "datadog":
		if strings.TrimSpace(p.Metrics.StatsdAddr) == "" {
			add(SeverityError, "metrics.statsd_addr", "datadog backend requires a statsd address")
		}
	default:
		add(SeverityError, "metrics.kind", fmt.Sprintf("unknown metrics kind %q", p.Metrics.Kind))
	}

	return issues
}

// Errors filters issues down to the blocking ones.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}
