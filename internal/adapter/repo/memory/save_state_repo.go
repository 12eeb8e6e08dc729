package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"bountyverse/internal/app/ports"
)

type SaveStateRepo struct {
	store *Store
}

func NewSaveStateRepo(store *Store) SaveStateRepo {
	return SaveStateRepo{store: store}
}

func (r SaveStateRepo) Load(_ context.Context, slot string) (ports.SaveState, error) {
	state, ok := r.store.slots[slot]
	if !ok {
		return ports.SaveState{}, ports.ErrNotFound
	}
	// Round-trip through JSON so the caller gets its own copy, same as the
	// database backend would hand back.
	payload, err := json.Marshal(state)
	if err != nil {
		return ports.SaveState{}, fmt.Errorf("encode save slot %q: %w", slot, err)
	}
	var out ports.SaveState
	if err := json.Unmarshal(payload, &out); err != nil {
		return ports.SaveState{}, fmt.Errorf("decode save slot %q: %w", slot, err)
	}
	return out, nil
}

func (r SaveStateRepo) Save(_ context.Context, slot string, state ports.SaveState) error {
	r.store.slots[slot] = state
	return nil
}
