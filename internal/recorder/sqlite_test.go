package recorder

import (
	"path/filepath"
	"testing"

	"SpotBoard/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	snap := &model.PriceSnapshot{
		Gold:   model.MetalQuote{Metal: "Gold", Bid: "4,015.50", Ask: "4,016.20", Date: "Oct 10, 2025", Time: "02:30 PM"},
		Silver: model.MetalQuote{Metal: "Silver", Bid: "49.10", Ask: "49.35", Date: "Oct 10, 2025", Time: "02:30 PM"},
	}
	if err := r.RecordSnapshot(snap); err != nil {
		t.Fatalf("record snapshot: %v", err)
	}
	if err := r.RecordBoardEvent(&BoardEvent{Kind: EventMetals, Message: "GOLD", Status: model.StatusSuccess}); err != nil {
		t.Fatalf("record board event: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM price_snapshots").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 snapshot row, got %d", count)
	}

	var bid string
	if err := r.db.QueryRow("SELECT gold_bid FROM price_snapshots").Scan(&bid); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if bid != "4,015.50" {
		t.Errorf("expected formatted bid preserved, got %q", bid)
	}

	if err := r.db.QueryRow("SELECT COUNT(*) FROM board_events").Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 event row, got %d", count)
	}
}

func TestSQLiteRecorder_NilInputs(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	if err := r.RecordSnapshot(nil); err != nil {
		t.Errorf("nil snapshot must be a no-op, got %v", err)
	}
	if err := r.RecordBoardEvent(nil); err != nil {
		t.Errorf("nil event must be a no-op, got %v", err)
	}
}
