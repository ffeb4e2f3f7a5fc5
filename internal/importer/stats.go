package importer

// Stats summarizes one import run. A record is counted exactly once: either
// under Imported or under Failed plus one of the failure kinds.
type Stats struct {
	// Imported is the number of records parsed and accepted for import.
	// Rows collapsed by intra-batch de-duplication stay counted here.
	Imported int64

	// Failed is the number of records rejected before storage plus records
	// lost when their batch failed to commit.
	Failed int64

	// ByType counts imported records per record-type tag.
	ByType map[string]int64

	// UnknownType counts records whose tag has no registered layout.
	UnknownType int64

	// BadLength counts records whose length does not match their layout.
	BadLength int64

	// BadDecode counts records with an undecodable numeric field.
	BadDecode int64

	// Deduped counts records dropped by intra-batch key de-duplication.
	// They are a subset of Imported's input, not failures.
	Deduped int64

	// Batches counts committed write batches.
	Batches int64

	// BatchesFailed counts batches rolled back on a database failure. Their
	// rows are included in Failed.
	BatchesFailed int64
}

// Add folds another run's stats into s, for multi-dump jobs.
func (s *Stats) Add(o Stats) {
	s.Imported += o.Imported
	s.Failed += o.Failed
	s.UnknownType += o.UnknownType
	s.BadLength += o.BadLength
	s.BadDecode += o.BadDecode
	s.Deduped += o.Deduped
	s.Batches += o.Batches
	s.BatchesFailed += o.BatchesFailed
	for tag, n := range o.ByType {
		if s.ByType == nil {
			s.ByType = make(map[string]int64)
		}
		s.ByType[tag] += n
	}
}

func (s *Stats) countImported(tag string) {
	s.Imported++
	if s.ByType == nil {
		s.ByType = make(map[string]int64)
	}
	s.ByType[tag]++
}
