package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"bountyverse/internal/app/ports"
	"bountyverse/internal/domain/bounty"
	"bountyverse/internal/domain/economy"
	"bountyverse/internal/domain/gameclock"

	"github.com/google/go-cmp/cmp"
)

func sampleState() ports.SaveState {
	return ports.SaveState{
		Board: ports.BoardState{
			Available: []bounty.Contract{{
				ID:             "c1",
				DisplayName:    "Hollys: $100",
				Compensation:   100,
				ExpirationTime: "2031-05-01T12:00:00Z",
				Outcome:        bounty.OutcomePending,
				TargetIDs: map[bounty.SlotKey][]bounty.EnemyTypeID{
					bounty.SlotTargets: {"henchman_light"},
				},
				Constraints: []bounty.ConstraintRow{
					{ConstraintID: "EliminateAllTargets", PenaltyIfFail: 50},
				},
			}},
		},
		Bank: economy.Snapshot{
			Balance:      250,
			Transactions: []economy.Transaction{{Amount: 250, Description: "payout"}},
		},
		Clock: gameclock.Config{CurrentTime: "2031-05-01T12:00:00Z", Multiplier: 24},
	}
}

func TestLoad_MissingSlot(t *testing.T) {
	repo := NewSaveStateRepo(NewStore())
	if _, err := repo.Load(context.Background(), "nope"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewSaveStateRepo(NewStore())
	want := sampleState()

	if err := repo.Save(context.Background(), "slot-1", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ReturnsIndependentCopy(t *testing.T) {
	repo := NewSaveStateRepo(NewStore())
	if err := repo.Save(context.Background(), "slot-1", sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}

	first, err := repo.Load(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	first.Board.Available[0].Compensation = 9999
	first.Bank.Transactions[0].Amount = -1

	second, err := repo.Load(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if second.Board.Available[0].Compensation != 100 {
		t.Fatalf("mutating a loaded copy leaked into the store")
	}
	if second.Bank.Transactions[0].Amount != 250 {
		t.Fatalf("mutating loaded bank state leaked into the store")
	}
}

func TestTxManager_SerializesCallbacks(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)

	done := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = tx.RunInTx(context.Background(), func(context.Context) error {
			close(started)
			time.Sleep(20 * time.Millisecond)
			return nil
		})
		close(done)
	}()

	<-started
	calledAfterFirst := false
	_ = tx.RunInTx(context.Background(), func(context.Context) error {
		select {
		case <-done:
			calledAfterFirst = true
		default:
		}
		return nil
	})
	if !calledAfterFirst {
		t.Fatalf("second transaction ran before the first finished")
	}
}
