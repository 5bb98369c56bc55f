package usagestats

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func tempSink(t *testing.T) *SQLiteSink {
	t.Helper()
	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, "usage.db"))
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sink, err := NewSQLiteSink(db)
	if err != nil {
		t.Fatalf("NewSQLiteSink: %v", err)
	}
	return sink
}

func counterValue(t *testing.T, sink *SQLiteSink, name string) int64 {
	t.Helper()
	var v int64
	err := sink.db.QueryRow(`SELECT value FROM usage_counters WHERE name = ?`, name).Scan(&v)
	if err != nil {
		t.Fatalf("query counter %s: %v", name, err)
	}
	return v
}

func TestIncrementCountAccumulates(t *testing.T) {
	sink := tempSink(t)
	sink.IncrementCount("CommitSegmentValue")
	sink.IncrementCount("CommitSegmentValue")
	sink.IncrementCount("CommitSegmentValue")

	if got := counterValue(t, sink, "CommitSegmentValue"); got != 3 {
		t.Fatalf("expected counter 3, got %d", got)
	}
}

func TestIncrementCountByAddsDelta(t *testing.T) {
	sink := tempSink(t)
	sink.IncrementCountBy("SubmittedTotalLength", 5)
	sink.IncrementCountBy("SubmittedTotalLength", 7)

	if got := counterValue(t, sink, "SubmittedTotalLength"); got != 12 {
		t.Fatalf("expected counter 12, got %d", got)
	}
}

func TestUpdateTimingAppendsRows(t *testing.T) {
	sink := tempSink(t)
	sink.UpdateTiming("ConvertLatency", 1000)
	sink.UpdateTiming("ConvertLatency", 2000)

	var count int
	if err := sink.db.QueryRow(`SELECT COUNT(*) FROM usage_timings WHERE name = ?`, "ConvertLatency").Scan(&count); err != nil {
		t.Fatalf("query timings: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 timing rows, got %d", count)
	}
}
