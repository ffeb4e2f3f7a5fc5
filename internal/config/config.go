// Package config defines the JSON-serializable configuration model for the
// import pipeline. It is intentionally small and explicit so a job file can
// be loaded from disk and passed through the program without glue code.
//
// Example:
//
//	{
//	  "job":     "nightly",
//	  "source":  { "kind": "file", "file": { "path": "data/JV-20240101.dat" } },
//	  "storage": { "kind": "sqlite", "dsn": "file:jvdata.db" },
//	  "runtime": { "batch_size": 1000, "workers": 4 },
//	  "metrics": { "kind": "pushgateway", "pushgateway_url": "http://pushgateway:9091" }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is the top-level object decoded from a job file.
type Pipeline struct {
	// Job names the run; it labels logs and metrics.
	Job string `json:"job"`

	// Source describes where the record stream comes from.
	Source Source `json:"source"`

	// Storage selects the destination database.
	Storage Storage `json:"storage"`

	// Runtime controls batching and parse concurrency.
	Runtime RuntimeConfig `json:"runtime"`

	// Metrics optionally enables pushing run metrics.
	Metrics Metrics `json:"metrics"`
}

// Source identifies the record stream. Kind selects the implementation.
type Source struct {
	// Kind is "file" or "http".
	Kind string `json:"kind"`

	// File carries options for the "file" source kind.
	File SourceFile `json:"file"`

	// HTTP carries options for the "http" source kind.
	HTTP SourceHTTP `json:"http"`
}

// SourceFile holds configuration for the "file" source kind. Exactly one of
// Path and Manifest must be set.
type SourceFile struct {
	// Path is the local filesystem path to the record dump.
	Path string `json:"path"`

	// Manifest is a newline-separated list of dump paths, imported in order.
	Manifest string `json:"manifest"`
}

// SourceHTTP holds configuration for the "http" source kind.
type SourceHTTP struct {
	// URL is fetched with a GET; the body is the record stream.
	URL string `json:"url"`

	// TimeoutSeconds bounds the whole request. Zero means no timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// Storage selects the destination database.
type Storage struct {
	// Kind is a registered backend: "sqlite", "postgres", "duckdb", "mysql".
	Kind string `json:"kind"`

	// DSN is passed to the backend's driver unmodified. Values of the form
	// ${NAME} are expanded from the environment at load time, so job files
	// can stay free of credentials.
	DSN string `json:"dsn"`
}

// RuntimeConfig controls batching and concurrency.
type RuntimeConfig struct {
	// BatchSize is the per-table flush threshold. Zero means the importer
	// default.
	BatchSize int `json:"batch_size"`

	// Workers is the parse parallelism. Zero means one worker per CPU.
	Workers int `json:"workers"`
}

// Metrics configures the optional metrics backend.
type Metrics struct {
	// Kind selects the backend: "pushgateway" or "datadog". Empty disables
	// metrics.
	Kind string `json:"kind"`

	// PushgatewayURL is the Pushgateway base URL for the "pushgateway" kind.
	PushgatewayURL string `json:"pushgateway_url"`

	// StatsdAddr is the DogStatsD address for the "datadog" kind.
	StatsdAddr string `json:"statsd_addr"`
}

// Load reads and decodes a job file. Unknown fields are rejected so typos in
// job files fail loudly instead of silently configuring nothing.
func Load(path string) (Pipeline, error) {
	var p Pipeline
	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: decode %s: %w", path, err)
	}
	p.Storage.DSN = os.Expand(p.Storage.DSN, func(name string) string {
		return os.Getenv(name)
	})
	return p, nil
}
