package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bountyverse/internal/adapter/repo/gorm/model"
	"bountyverse/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaveStateRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSaveStateRepo(db *gorm.DB) SaveStateRepo {
	return SaveStateRepo{db: db, now: time.Now}
}

func (r SaveStateRepo) Load(ctx context.Context, slot string) (ports.SaveState, error) {
	var m model.SaveSlot
	if err := getDBFromCtx(ctx, r.db).Where("slot = ?", slot).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveState{}, ports.ErrNotFound
		}
		return ports.SaveState{}, err
	}
	var state ports.SaveState
	if err := json.Unmarshal(m.Payload, &state); err != nil {
		return ports.SaveState{}, fmt.Errorf("decode save slot %q: %w", slot, err)
	}
	return state, nil
}

func (r SaveStateRepo) Save(ctx context.Context, slot string, state ports.SaveState) error {
	state.SavedAt = r.now()
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode save slot %q: %w", slot, err)
	}
	m := model.SaveSlot{Slot: slot, Payload: payload, SavedAt: state.SavedAt}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "saved_at"}),
		}).
		Create(&m).Error
}
