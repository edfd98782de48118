package sheetdb

// Query narrows a listing to records matching every filter, then applies
// optional offset/limit slicing.
type Query struct {
	// Filters are field/value pairs compared by exact string equality.
	Filters map[string]string
	// Limit caps the result size when positive.
	Limit int
	// Offset skips that many matching records from the start.
	Offset int
}

// Matches reports whether a record satisfies every filter. Comparison is
// case-sensitive exact string equality; no partial or type-aware matching.
func (q Query) Matches(rec Record) bool {
	for key, want := range q.Filters {
		if rec[key] != want {
			return false
		}
	}
	return true
}

// Apply filters and slices the given records. Slicing beyond the available
// records yields a short or empty result, never an error.
func (q Query) Apply(records []Record) []Record {
	matched := records
	if len(q.Filters) > 0 {
		matched = make([]Record, 0, len(records))
		for _, rec := range records {
			if q.Matches(rec) {
				matched = append(matched, rec)
			}
		}
	}

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			return []Record{}
		}
		matched = matched[q.Offset:]
	}
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched
}
