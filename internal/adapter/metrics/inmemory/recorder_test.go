package inmemory

import (
	"testing"

	"bountyverse/internal/domain/bounty"
)

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordGenerated("Hollys_LowRep")
	r.RecordGenerated("Hollys_LowRep")
	r.RecordGenerated("Hollys_HighRep")
	r.RecordAccepted()
	r.RecordResolved(bounty.OutcomeSucceeded)
	r.RecordResolved(bounty.OutcomeFailed)
	r.RecordExpired()

	got := r.Snapshot()
	if got.Generated != 3 || got.Accepted != 1 || got.Resolved != 2 || got.Expired != 1 {
		t.Fatalf("unexpected counters %+v", got)
	}
	if got.ByTemplate["Hollys_LowRep"] != 2 || got.ByTemplate["Hollys_HighRep"] != 1 {
		t.Fatalf("unexpected per-template counts %v", got.ByTemplate)
	}
	if got.ByOutcome["succeeded"] != 1 || got.ByOutcome["failed"] != 1 {
		t.Fatalf("unexpected per-outcome counts %v", got.ByOutcome)
	}
}

func TestRecorder_SnapshotIsACopy(t *testing.T) {
	r := NewRecorder()
	r.RecordGenerated("tpl")

	snap := r.Snapshot()
	snap.ByTemplate["tpl"] = 99

	if r.Snapshot().ByTemplate["tpl"] != 1 {
		t.Fatalf("mutating a snapshot leaked into the recorder")
	}
}
