package savegame

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"bountyverse/internal/adapter/repo/memory"
	"bountyverse/internal/app/board"
	"bountyverse/internal/app/catalog"
	"bountyverse/internal/app/constraint"
	"bountyverse/internal/app/ports"
	"bountyverse/internal/app/session"
	"bountyverse/internal/domain/bounty"
	"bountyverse/internal/domain/economy"
	"bountyverse/internal/domain/faction"
	"bountyverse/internal/domain/gameclock"
)

type noSquads struct{}

func (noSquads) RosterForContract(context.Context, string) (bounty.SquadRoster, bool) {
	return bounty.SquadRoster{}, false
}

func newBoard() (*board.Board, *economy.Bank) {
	bank := economy.NewBank()
	stance := faction.NewStance()
	stance.RegisterDefaults()
	cat := catalog.New()
	cat.RegisterDefaults()

	b := board.New(board.Config{
		Catalog:  cat,
		Registry: constraint.NewRegistry(),
		Clock:    gameclock.New(time.Date(2031, 5, 1, 12, 0, 0, 0, time.UTC), 24),
		Sessions: session.NewLog(),
		Bank:     bank,
		Stance:   stance,
		Squads:   noSquads{},
		Rand:     rand.New(rand.NewSource(1)),
	})
	return b, bank
}

func TestSaveLoad_RoundTripThroughMemoryStore(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewSaveStateRepo(store)
	tx := memory.NewTxManager(store)

	b, bank := newBoard()
	b.Tick(time.Date(2031, 5, 1, 12, 0, 0, 0, time.UTC))
	bank.Credit(300, "payout")

	uc := UseCase{Repo: repo, Tx: tx, Slot: "slot-1", Board: b}
	if err := uc.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh, freshBank := newBoard()
	loaded, err := UseCase{Repo: repo, Tx: tx, Slot: "slot-1", Board: fresh}.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded {
		t.Fatalf("expected the slot to load")
	}
	if got, want := len(fresh.Available()), len(b.Available()); got != want {
		t.Fatalf("restored available %d, want %d", got, want)
	}
	if freshBank.Balance() != 300 {
		t.Fatalf("restored balance %d, want 300", freshBank.Balance())
	}
}

func TestLoad_MissingSlotIsNotAnError(t *testing.T) {
	store := memory.NewStore()
	b, _ := newBoard()

	uc := UseCase{
		Repo:  memory.NewSaveStateRepo(store),
		Tx:    memory.NewTxManager(store),
		Slot:  "empty",
		Board: b,
	}
	loaded, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded {
		t.Fatalf("missing slot reported as loaded")
	}
}

func TestSaveLoad_RejectEmptySlot(t *testing.T) {
	b, _ := newBoard()
	uc := UseCase{Board: b}

	if err := uc.Save(context.Background()); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("save: %v, want ErrInvalidSlot", err)
	}
	if _, err := uc.Load(context.Background()); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("load: %v, want ErrInvalidSlot", err)
	}
}

func TestLoad_PropagatesRepoErrors(t *testing.T) {
	b, _ := newBoard()
	wantErr := errors.New("disk gone")
	uc := UseCase{
		Repo:  failingRepo{err: wantErr},
		Tx:    passTx{},
		Slot:  "slot-1",
		Board: b,
	}
	if _, err := uc.Load(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("load: %v, want %v", err, wantErr)
	}
}

type failingRepo struct{ err error }

func (r failingRepo) Load(context.Context, string) (ports.SaveState, error) {
	return ports.SaveState{}, r.err
}

func (r failingRepo) Save(context.Context, string, ports.SaveState) error {
	return r.err
}

type passTx struct{}

func (passTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
