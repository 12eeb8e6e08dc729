// Package savegame moves the whole game state between the live board and a
// named save slot.
package savegame

import (
	"context"
	"errors"

	"bountyverse/internal/app/board"
	"bountyverse/internal/app/ports"
)

var ErrInvalidSlot = errors.New("invalid save slot")

type UseCase struct {
	Repo  ports.SaveStateRepository
	Tx    ports.TxManager
	Slot  string
	Board *board.Board
}

// Save snapshots everything into the slot inside one transaction.
func (u UseCase) Save(ctx context.Context) error {
	if u.Slot == "" {
		return ErrInvalidSlot
	}
	state := u.Board.Snapshot()
	return u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		return u.Repo.Save(ctx, u.Slot, state)
	})
}

// Load restores a previously saved slot into the live board. A missing slot
// is not an error; the caller keeps its freshly seeded state and the first
// Save creates the slot.
func (u UseCase) Load(ctx context.Context) (bool, error) {
	if u.Slot == "" {
		return false, ErrInvalidSlot
	}
	var state ports.SaveState
	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		state, err = u.Repo.Load(ctx, u.Slot)
		return err
	})
	if errors.Is(err, ports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := u.Board.Restore(state); err != nil {
		return false, err
	}
	return true, nil
}
